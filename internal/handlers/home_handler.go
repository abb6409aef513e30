package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/httpresp"
	"github.com/BruksfildServices01/home-listing/internal/middleware"
	"github.com/BruksfildServices01/home-listing/internal/models"
	ucHome "github.com/BruksfildServices01/home-listing/internal/usecase/home"
	"github.com/BruksfildServices01/home-listing/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type HomeHandler struct {
	getHomes   *ucHome.GetHomes
	getHome    *ucHome.GetHome
	createHome *ucHome.CreateHome
	updateHome *ucHome.UpdateHome
	deleteHome *ucHome.DeleteHome
	getRealtor *ucHome.GetRealtor
}

func NewHomeHandler(
	getHomes *ucHome.GetHomes,
	getHome *ucHome.GetHome,
	createHome *ucHome.CreateHome,
	updateHome *ucHome.UpdateHome,
	deleteHome *ucHome.DeleteHome,
	getRealtor *ucHome.GetRealtor,
) *HomeHandler {
	return &HomeHandler{
		getHomes:   getHomes,
		getHome:    getHome,
		createHome: createHome,
		updateHome: updateHome,
		deleteHome: deleteHome,
		getRealtor: getRealtor,
	}
}

// ======================================================
// QUERIES
// ======================================================

func (h *HomeHandler) List(c *gin.Context) {
	filter, err := parseHomeFilter(c)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	homes, err := h.getHomes.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, homes)
}

func (h *HomeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	home, err := h.getHome.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, home)
}

// ======================================================
// MUTATIONS
// ======================================================

func (h *HomeHandler) Create(c *gin.Context) {
	var req CreateHomeRequest
	if !bindJSON(c, &req) {
		return
	}

	urls := make([]string, 0, len(req.Images))
	for _, img := range req.Images {
		urls = append(urls, img.URL)
	}

	home, err := h.createHome.Execute(c.Request.Context(), ucHome.CreateHomeInput{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		LandSize:          req.LandSize,
		PropertyType:      models.PropertyType(req.PropertyType),
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		ImageURLs:         urls,
	}, middleware.UserID(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, home)
}

func (h *HomeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateHomeRequest
	if !bindJSON(c, &req) {
		return
	}

	if !h.ensureOwner(c, id) {
		return
	}

	home, err := h.updateHome.Execute(c.Request.Context(), middleware.UserID(c), id, req.Changes())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, home)
}

func (h *HomeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if !h.ensureOwner(c, id) {
		return
	}

	if err := h.deleteHome.Execute(c.Request.Context(), middleware.UserID(c), id); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

// ======================================================
// HELPERS
// ======================================================

// ensureOwner writes not_found for a missing home and forbidden when the
// caller is not the realtor who listed it.
func (h *HomeHandler) ensureOwner(c *gin.Context, homeID uint) bool {
	realtor, err := h.getRealtor.Execute(c.Request.Context(), homeID)
	if err != nil {
		httperr.Respond(c, err)
		return false
	}

	if realtor.ID != middleware.UserID(c) {
		httperr.Respond(c, httperr.Forbidden("not_home_owner", "You are not the realtor of this home"))
		return false
	}
	return true
}

func parseHomeFilter(c *gin.Context) (domain.Filter, error) {
	var f domain.Filter

	f.City = strings.TrimSpace(c.Query("city"))

	var err error
	if f.MinPrice, err = optionalPrice(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optionalPrice(c, "maxPrice"); err != nil {
		return f, err
	}

	if raw := c.Query("propertyType"); raw != "" {
		pt, err := validators.ParsePropertyType(raw)
		if err != nil {
			return f, err
		}
		f.PropertyType = pt
	}

	return f, nil
}

func optionalPrice(c *gin.Context, key string) (*float64, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil, httperr.BadInput("invalid_query", fmt.Sprintf("%s must be a non-negative number", key))
	}
	return &v, nil
}
