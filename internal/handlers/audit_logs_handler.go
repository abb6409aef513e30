package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/httpresp"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// List accepts action, entity, userId, from and to (YYYY-MM-DD, inclusive)
// plus page and limit.
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.ListFilter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(audit.DefaultPageSize)))
	f.Normalize()

	if raw := c.Query("userId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_query", "userId must be a number")
			return
		}
		uid := uint(id)
		f.UserID = &uid
	}

	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_query", "from must be YYYY-MM-DD")
			return
		}
		f.From = &from
	}

	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_query", "to must be YYYY-MM-DD")
			return
		}
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Page(c, logs, f.Page, f.Limit, total)
}
