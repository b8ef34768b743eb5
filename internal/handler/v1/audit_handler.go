package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/sehaty/sehaty/internal/service"
)

// AuditHandler exposes the compliance view: who accessed one patient's
// record. Read-only; entries are written by the other handlers as a side
// effect of serving requests.
type AuditHandler struct {
	svc *service.AuditService
}

func NewAuditHandler(svc *service.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

func (h *AuditHandler) ListAccessLogs(c *gin.Context) {
	limit := parseQueryInt(c, "limit", 50)

	logs, err := h.svc.RecentAccess(c.Request.Context(), c.Param("national_id"), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, logs)
}
