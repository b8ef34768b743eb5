package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/service"
)

// HistoryHandler exposes create and delete endpoints for every clinical
// history entity. The owning patient always comes from the URL, never from
// the body.
type HistoryHandler struct {
	svc *service.HistoryService
}

func NewHistoryHandler(svc *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func (h *HistoryHandler) AddAllergy(c *gin.Context) {
	var rec history.Allergy
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddAllergy(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddChronicDisease(c *gin.Context) {
	var rec history.ChronicDisease
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddChronicDisease(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddMedication(c *gin.Context) {
	var rec history.CurrentMedication
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddMedication(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddSurgery(c *gin.Context) {
	var rec history.Surgery
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddSurgery(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddHospitalization(c *gin.Context) {
	var rec history.Hospitalization
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddHospitalization(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddVaccination(c *gin.Context) {
	var rec history.Vaccination
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddVaccination(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddFamilyHistory(c *gin.Context) {
	var rec history.FamilyHistory
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddFamilyHistory(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddDisability(c *gin.Context) {
	var rec history.Disability
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddDisability(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddEmergencyDirective(c *gin.Context) {
	var rec history.EmergencyDirective
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddEmergencyDirective(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddLifestyle(c *gin.Context) {
	var rec history.Lifestyle
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddLifestyle(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

func (h *HistoryHandler) AddInsurance(c *gin.Context) {
	var rec history.Insurance
	if !bindJSON(c, &rec) {
		return
	}
	rec.PatientNationalID = c.Param("national_id")
	if err := h.svc.AddInsurance(c.Request.Context(), &rec, auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, rec)
}

// DeleteEntry returns a handler bound to one entity kind, so the route table
// reads as a plain list.
func (h *HistoryHandler) DeleteEntry(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseUUID(c, "id")
		if !ok {
			return
		}
		audit := auditFrom(c)
		audit.PatientNationalID = c.Param("national_id")
		if err := h.svc.RemoveEntry(c.Request.Context(), kind, id, audit); err != nil {
			respondServiceError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
