package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/httpresp"
	"github.com/BruksfildServices01/home-listing/internal/middleware"
	ucHome "github.com/BruksfildServices01/home-listing/internal/usecase/home"
	ucInquiry "github.com/BruksfildServices01/home-listing/internal/usecase/inquiry"
)

type InquiryHandler struct {
	inquire    *ucInquiry.Inquire
	messages   *ucInquiry.ListMessages
	getRealtor *ucHome.GetRealtor
}

func NewInquiryHandler(
	inquire *ucInquiry.Inquire,
	messages *ucInquiry.ListMessages,
	getRealtor *ucHome.GetRealtor,
) *InquiryHandler {
	return &InquiryHandler{
		inquire:    inquire,
		messages:   messages,
		getRealtor: getRealtor,
	}
}

func (h *InquiryHandler) Inquire(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req InquireRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.inquire.Execute(c.Request.Context(), middleware.UserID(c), id, req.Message)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, msg)
}

// Messages lists the inquiries on a home to the realtor who owns it.
func (h *InquiryHandler) Messages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	realtor, err := h.getRealtor.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if realtor.ID != middleware.UserID(c) {
		httperr.Respond(c, httperr.Forbidden("not_home_owner", "You are not the realtor of this home"))
		return
	}

	msgs, err := h.messages.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, msgs)
}
