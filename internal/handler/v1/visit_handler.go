package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/sehaty/sehaty/internal/domain/visit"
	"github.com/sehaty/sehaty/internal/service"
)

type VisitHandler struct {
	svc *service.VisitService
}

func NewVisitHandler(svc *service.VisitService) *VisitHandler {
	return &VisitHandler{svc: svc}
}

func listArgs(c *gin.Context) (visit.SortOrder, int) {
	return visit.SortOrder(c.Query("order")), parseQueryInt(c, "limit", 0)
}

func (h *VisitHandler) AddVisit(c *gin.Context) {
	var rec visit.Visit
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddVisit(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *VisitHandler) ListVisits(c *gin.Context) {
	order, limit := listArgs(c)
	visits, err := h.svc.ListVisits(c.Request.Context(), c.Param("national_id"), order, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, visits)
}

func (h *VisitHandler) AddLabResult(c *gin.Context) {
	var rec visit.LabResult
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddLabResult(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *VisitHandler) ListLabResults(c *gin.Context) {
	order, limit := listArgs(c)
	results, err := h.svc.ListLabResults(c.Request.Context(), c.Param("national_id"), order, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, results)
}

func (h *VisitHandler) AddImagingResult(c *gin.Context) {
	var rec visit.ImagingResult
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddImagingResult(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *VisitHandler) ListImagingResults(c *gin.Context) {
	order, limit := listArgs(c)
	results, err := h.svc.ListImagingResults(c.Request.Context(), c.Param("national_id"), order, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, results)
}
