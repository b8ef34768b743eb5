package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/domain/patient"
	"github.com/sehaty/sehaty/internal/domain/visit"
	"github.com/sehaty/sehaty/internal/service"
	"github.com/sehaty/sehaty/internal/snapshot"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	respondServiceError(c, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestRespondServiceError_PatientNotFound(t *testing.T) {
	rec, body := respond(t, patient.ErrPatientNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "patient not found", body["error"])
}

func TestRespondServiceError_StorageFailureIsNotNotFound(t *testing.T) {
	err := &snapshot.StorageError{Collection: "allergies", Err: errors.New("connection reset")}

	rec, body := respond(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "could not load patient data", body["error"])
	assert.NotContains(t, body["error"], "not found",
		"a backend fault must never read as a missing patient")
}

func TestRespondServiceError_Validation(t *testing.T) {
	err := &service.ValidationError{Fields: []string{"national_id is required"}}

	rec, body := respond(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	fields, ok := body["fields"].([]any)
	require.True(t, ok)
	assert.Equal(t, []any{"national_id is required"}, fields)
}

func TestRespondServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"entry not found", history.ErrEntryNotFound, http.StatusNotFound},
		{"visit not found", visit.ErrVisitNotFound, http.StatusNotFound},
		{"duplicate patient", patient.ErrPatientAlreadyExists, http.StatusConflict},
		{"invalid sort", visit.ErrInvalidSort, http.StatusBadRequest},
		{"invalid gender", patient.ErrInvalidGender, http.StatusBadRequest},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, _ := respond(t, tt.err)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRespondServiceError_UnclassifiedHidesDetail(t *testing.T) {
	_, body := respond(t, errors.New("pq: syntax error at line 3"))
	assert.Equal(t, "internal server error", body["error"])
}
