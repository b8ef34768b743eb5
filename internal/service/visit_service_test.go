package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain/patient"
	"github.com/sehaty/sehaty/internal/domain/visit"
)

// fakeVisitRepo embeds the interface and overrides only what each test
// exercises; an unexpected call panics loudly.
type fakeVisitRepo struct {
	visit.Repository

	visits    []*visit.Visit
	lastOrder visit.SortOrder
	lastLimit int
}

func (r *fakeVisitRepo) CreateVisit(_ context.Context, v *visit.Visit) error {
	r.visits = append(r.visits, v)
	return nil
}

func (r *fakeVisitRepo) VisitsByPatient(_ context.Context, _ string, order visit.SortOrder, limit int) ([]*visit.Visit, error) {
	r.lastOrder = order
	r.lastLimit = limit
	return r.visits, nil
}

func newTestVisitService(t *testing.T) (*VisitService, *fakeVisitRepo, *fakePatientRepo) {
	t.Helper()
	patients := newFakePatientRepo()
	repo := &fakeVisitRepo{}
	auditSvc := NewAuditService(fakeAuditRepo{}, testCollector, zap.NewNop())
	t.Cleanup(auditSvc.Shutdown)
	return NewVisitService(patients, repo, auditSvc, zap.NewNop()), repo, patients
}

func seedPatient(t *testing.T, patients *fakePatientRepo) {
	t.Helper()
	require.NoError(t, patients.Create(context.Background(), &patient.Patient{NationalID: "29501012345678"}))
}

func TestAddVisit_RequiresVisitDate(t *testing.T) {
	svc, _, patients := newTestVisitService(t)
	seedPatient(t, patients)

	err := svc.AddVisit(context.Background(), &visit.Visit{PatientNationalID: "29501012345678"}, AuditEntry{})

	var validErr *ValidationError
	assert.ErrorAs(t, err, &validErr)
}

func TestAddVisit_UnknownPatient(t *testing.T) {
	svc, _, _ := newTestVisitService(t)

	err := svc.AddVisit(context.Background(), &visit.Visit{
		PatientNationalID: "29999999999999",
		VisitDate:         time.Now(),
	}, AuditEntry{})

	assert.ErrorIs(t, err, patient.ErrPatientNotFound)
}

func TestListVisits_DefaultsToNewestFirst(t *testing.T) {
	svc, repo, patients := newTestVisitService(t)
	seedPatient(t, patients)

	_, err := svc.ListVisits(context.Background(), "29501012345678", "", 0)
	require.NoError(t, err)

	assert.Equal(t, visit.SortNewestFirst, repo.lastOrder)
	assert.Equal(t, defaultVisitLimit, repo.lastLimit)
}

func TestListVisits_ExplicitOrderAndLimit(t *testing.T) {
	svc, repo, patients := newTestVisitService(t)
	seedPatient(t, patients)

	_, err := svc.ListVisits(context.Background(), "29501012345678", visit.SortOldestFirst, 5)
	require.NoError(t, err)

	assert.Equal(t, visit.SortOldestFirst, repo.lastOrder)
	assert.Equal(t, 5, repo.lastLimit)
}

func TestListVisits_InvalidSort(t *testing.T) {
	svc, _, patients := newTestVisitService(t)
	seedPatient(t, patients)

	_, err := svc.ListVisits(context.Background(), "29501012345678", "sideways", 0)
	assert.ErrorIs(t, err, visit.ErrInvalidSort)
}

func TestAddLabResult_RequiresTestName(t *testing.T) {
	svc, _, patients := newTestVisitService(t)
	seedPatient(t, patients)

	err := svc.AddLabResult(context.Background(), &visit.LabResult{
		PatientNationalID: "29501012345678",
	}, AuditEntry{})

	var validErr *ValidationError
	assert.ErrorAs(t, err, &validErr)
}
