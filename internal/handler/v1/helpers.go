package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/domain/patient"
	"github.com/sehaty/sehaty/internal/domain/visit"
	"github.com/sehaty/sehaty/internal/service"
	"github.com/sehaty/sehaty/internal/snapshot"
)

type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type ValidationErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, APIResponse[any]{Data: data})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, APIResponse[any]{Data: data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondServiceError maps domain errors onto HTTP statuses. The two failure
// modes of record aggregation stay distinct all the way to the wire: a
// missing patient is 404 "patient not found", a backend fault is 503 with a
// message that never suggests the patient does not exist.
func respondServiceError(c *gin.Context, err error) {
	var validErr *service.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:  "validation failed",
			Fields: validErr.Fields,
		})
		return
	}

	var storageErr *snapshot.StorageError
	if errors.As(err, &storageErr) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error: "could not load patient data",
			Code:  "STORAGE_UNAVAILABLE",
		})
		return
	}

	switch {
	case errors.Is(err, patient.ErrPatientNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "patient not found"})

	case errors.Is(err, history.ErrEntryNotFound),
		errors.Is(err, visit.ErrVisitNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})

	case errors.Is(err, patient.ErrPatientAlreadyExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, patient.ErrInvalidGender),
		errors.Is(err, patient.ErrInvalidBloodType),
		errors.Is(err, patient.ErrInvalidDateOfBirth),
		errors.Is(err, patient.ErrNationalIDRequired),
		errors.Is(err, visit.ErrInvalidSort):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func bindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request: " + err.Error()})
		return false
	}
	return true
}

func parseUUID(c *gin.Context, param string) (uuid.UUID, bool) {
	raw := c.Param(param)
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + param + ": must be a valid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if raw := c.Query(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return defaultVal
}

// auditFrom captures who is acting, from the identity headers set by the
// gateway. Authorization itself happens upstream.
func auditFrom(c *gin.Context) service.AuditEntry {
	actor := c.GetHeader("X-Actor")
	if actor == "" {
		actor = "anonymous"
	}
	role := c.GetHeader("X-Actor-Role")
	if role == "" {
		role = "doctor"
	}
	return service.AuditEntry{
		Actor:     actor,
		ActorRole: role,
		IPAddress: c.ClientIP(),
		RequestID: RequestIDFrom(c),
	}
}
