package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain/patient"
	"github.com/sehaty/sehaty/internal/domain/visit"
)

const defaultVisitLimit = 50

type VisitService struct {
	patients patient.Repository
	repo     visit.Repository
	auditSvc *AuditService
	log      *zap.Logger
}

func NewVisitService(patients patient.Repository, repo visit.Repository, auditSvc *AuditService, log *zap.Logger) *VisitService {
	return &VisitService{
		patients: patients,
		repo:     repo,
		auditSvc: auditSvc,
		log:      log,
	}
}

func (s *VisitService) requirePatient(ctx context.Context, nationalID string) error {
	exists, err := s.patients.ExistsByNationalID(ctx, nationalID)
	if err != nil {
		return err
	}
	if !exists {
		return patient.ErrPatientNotFound
	}
	return nil
}

// normalizeListArgs applies the defaults for UI-facing list calls. Order is
// an explicit parameter; only when the caller passes nothing do we fall back
// to newest-first.
func normalizeListArgs(order visit.SortOrder, limit int) (visit.SortOrder, int, error) {
	if order == "" {
		order = visit.SortNewestFirst
	}
	if !order.IsValid() {
		return "", 0, visit.ErrInvalidSort
	}
	if limit <= 0 {
		limit = defaultVisitLimit
	}
	return order, limit, nil
}

func (s *VisitService) AddVisit(ctx context.Context, v *visit.Visit, audit AuditEntry) error {
	if v.VisitDate.IsZero() {
		return &ValidationError{Fields: []string{"visit_date is required"}}
	}
	if err := s.requirePatient(ctx, v.PatientNationalID); err != nil {
		return err
	}
	if err := s.repo.CreateVisit(ctx, v); err != nil {
		return err
	}

	audit.Action = "create"
	audit.PatientNationalID = v.PatientNationalID
	audit.ResourceType = "visit"
	audit.ResourceID = v.ID.String()
	s.auditSvc.LogAsync(ctx, audit)
	return nil
}

func (s *VisitService) ListVisits(ctx context.Context, nationalID string, order visit.SortOrder, limit int) ([]*visit.Visit, error) {
	order, limit, err := normalizeListArgs(order, limit)
	if err != nil {
		return nil, err
	}
	if err := s.requirePatient(ctx, nationalID); err != nil {
		return nil, err
	}
	return s.repo.VisitsByPatient(ctx, nationalID, order, limit)
}

func (s *VisitService) AddLabResult(ctx context.Context, r *visit.LabResult, audit AuditEntry) error {
	if strings.TrimSpace(r.TestName) == "" {
		return &ValidationError{Fields: []string{"test_name is required"}}
	}
	if err := s.requirePatient(ctx, r.PatientNationalID); err != nil {
		return err
	}
	if err := s.repo.CreateLabResult(ctx, r); err != nil {
		return err
	}

	audit.Action = "create"
	audit.PatientNationalID = r.PatientNationalID
	audit.ResourceType = "lab_result"
	audit.ResourceID = r.ID.String()
	s.auditSvc.LogAsync(ctx, audit)
	return nil
}

func (s *VisitService) ListLabResults(ctx context.Context, nationalID string, order visit.SortOrder, limit int) ([]*visit.LabResult, error) {
	order, limit, err := normalizeListArgs(order, limit)
	if err != nil {
		return nil, err
	}
	if err := s.requirePatient(ctx, nationalID); err != nil {
		return nil, err
	}
	return s.repo.LabResultsByPatient(ctx, nationalID, order, limit)
}

func (s *VisitService) AddImagingResult(ctx context.Context, r *visit.ImagingResult, audit AuditEntry) error {
	if strings.TrimSpace(r.ImagingType) == "" {
		return &ValidationError{Fields: []string{"imaging_type is required"}}
	}
	if err := s.requirePatient(ctx, r.PatientNationalID); err != nil {
		return err
	}
	if err := s.repo.CreateImagingResult(ctx, r); err != nil {
		return err
	}

	audit.Action = "create"
	audit.PatientNationalID = r.PatientNationalID
	audit.ResourceType = "imaging_result"
	audit.ResourceID = r.ID.String()
	s.auditSvc.LogAsync(ctx, audit)
	return nil
}

func (s *VisitService) ListImagingResults(ctx context.Context, nationalID string, order visit.SortOrder, limit int) ([]*visit.ImagingResult, error) {
	order, limit, err := normalizeListArgs(order, limit)
	if err != nil {
		return nil, err
	}
	if err := s.requirePatient(ctx, nationalID); err != nil {
		return nil, err
	}
	return s.repo.ImagingResultsByPatient(ctx, nationalID, order, limit)
}
