package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sehaty/sehaty/internal/domain/patient"
	"github.com/sehaty/sehaty/internal/service"
)

type PatientHandler struct {
	svc *service.PatientService
}

func NewPatientHandler(svc *service.PatientService) *PatientHandler {
	return &PatientHandler{svc: svc}
}

type createPatientRequest struct {
	NationalID       string  `json:"national_id" binding:"required"`
	FullName         string  `json:"full_name" binding:"required"`
	DateOfBirth      string  `json:"date_of_birth" binding:"required"`
	Gender           string  `json:"gender" binding:"required"`
	BloodType        string  `json:"blood_type"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
	City             *string `json:"city"`
	Governorate      *string `json:"governorate"`
	EmergencyContact *string `json:"emergency_contact"`
}

type updatePatientRequest struct {
	FullName         *string `json:"full_name"`
	Gender           *string `json:"gender"`
	BloodType        *string `json:"blood_type"`
	Phone            *string `json:"phone"`
	Email            *string `json:"email"`
	Address          *string `json:"address"`
	City             *string `json:"city"`
	Governorate      *string `json:"governorate"`
	EmergencyContact *string `json:"emergency_contact"`
}

const dateOnlyLayout = "2006-01-02"

func (h *PatientHandler) Create(c *gin.Context) {
	var req createPatientRequest
	if !bindJSON(c, &req) {
		return
	}

	dob, err := time.Parse(dateOnlyLayout, req.DateOfBirth)
	if err != nil {
		respondError(c, http.StatusBadRequest, "date_of_birth must be YYYY-MM-DD")
		return
	}

	cmd := &patient.CreatePatientCommand{
		NationalID:       req.NationalID,
		FullName:         req.FullName,
		DateOfBirth:      dob,
		Gender:           patient.Gender(req.Gender),
		BloodType:        patient.BloodType(req.BloodType),
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		City:             req.City,
		Governorate:      req.Governorate,
		EmergencyContact: req.EmergencyContact,
	}

	p, err := h.svc.CreatePatient(c.Request.Context(), cmd, auditFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondCreated(c, p)
}

func (h *PatientHandler) Get(c *gin.Context) {
	p, err := h.svc.GetPatient(c.Request.Context(), c.Param("national_id"), auditFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PatientHandler) Update(c *gin.Context) {
	var req updatePatientRequest
	if !bindJSON(c, &req) {
		return
	}

	cmd := &patient.UpdatePatientCommand{
		FullName:         req.FullName,
		Phone:            req.Phone,
		Email:            req.Email,
		Address:          req.Address,
		City:             req.City,
		Governorate:      req.Governorate,
		EmergencyContact: req.EmergencyContact,
	}
	if req.Gender != nil {
		g := patient.Gender(*req.Gender)
		cmd.Gender = &g
	}
	if req.BloodType != nil {
		b := patient.BloodType(*req.BloodType)
		cmd.BloodType = &b
	}

	p, err := h.svc.UpdatePatient(c.Request.Context(), c.Param("national_id"), cmd, auditFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, p)
}

func (h *PatientHandler) Deactivate(c *gin.Context) {
	if err := h.svc.DeactivatePatient(c.Request.Context(), c.Param("national_id"), auditFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PatientHandler) List(c *gin.Context) {
	q := &patient.ListPatientsQuery{
		Search:    c.Query("search"),
		Page:      parseQueryInt(c, "page", 1),
		PageSize:  parseQueryInt(c, "page_size", 20),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	page, err := h.svc.ListPatients(c.Request.Context(), q)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": page.Patients,
		"pagination": gin.H{
			"page":        page.Page,
			"page_size":   page.PageSize,
			"total_count": page.TotalCount,
			"total_pages": page.TotalPages,
		},
	})
}
