package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain/patient"
	"github.com/sehaty/sehaty/pkg/metrics"
	"github.com/sehaty/sehaty/pkg/validate"
)

type PatientService struct {
	repo      patient.Repository
	auditSvc  *AuditService
	collector *metrics.Collector
	log       *zap.Logger
}

func NewPatientService(repo patient.Repository, auditSvc *AuditService, collector *metrics.Collector, log *zap.Logger) *PatientService {
	return &PatientService{
		repo:      repo,
		auditSvc:  auditSvc,
		collector: collector,
		log:       log,
	}
}

func (s *PatientService) CreatePatient(ctx context.Context, cmd *patient.CreatePatientCommand, audit AuditEntry) (*patient.Patient, error) {
	if err := validateCreateCommand(cmd); err != nil {
		return nil, err
	}

	nationalID := strings.TrimSpace(cmd.NationalID)

	exists, err := s.repo.ExistsByNationalID(ctx, nationalID)
	if err != nil {
		s.log.Error("failed to check national ID uniqueness", zap.Error(err))
		return nil, fmt.Errorf("checking uniqueness: %w", err)
	}
	if exists {
		return nil, patient.ErrPatientAlreadyExists
	}

	p := &patient.Patient{
		NationalID:       nationalID,
		FullName:         strings.TrimSpace(cmd.FullName),
		DateOfBirth:      cmd.DateOfBirth,
		Gender:           cmd.Gender,
		BloodType:        cmd.BloodType,
		Phone:            cmd.Phone,
		Email:            cmd.Email,
		Address:          cmd.Address,
		City:             cmd.City,
		Governorate:      cmd.Governorate,
		EmergencyContact: cmd.EmergencyContact,
	}
	if p.BloodType == "" {
		p.BloodType = patient.BloodTypeUnknown
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, patient.ErrPatientAlreadyExists) {
			return nil, err
		}
		s.log.Error("failed to create patient", zap.Error(err))
		return nil, fmt.Errorf("creating patient: %w", err)
	}

	s.collector.PatientsCreatedTotal.Inc()

	audit.Action = "create"
	audit.PatientNationalID = p.NationalID
	audit.ResourceType = "patient"
	audit.ResourceID = p.ID.String()
	s.auditSvc.LogAsync(ctx, audit)

	s.log.Info("patient created",
		zap.String("patient_id", p.ID.String()),
		zap.String("national_id", p.NationalID),
	)

	return p, nil
}

func (s *PatientService) GetPatient(ctx context.Context, nationalID string, audit AuditEntry) (*patient.Patient, error) {
	p, err := s.repo.GetByNationalID(ctx, nationalID)
	if err != nil {
		return nil, err
	}

	audit.Action = "read"
	audit.PatientNationalID = nationalID
	audit.ResourceType = "patient"
	audit.ResourceID = p.ID.String()
	s.auditSvc.LogAsync(ctx, audit)

	return p, nil
}

func (s *PatientService) UpdatePatient(ctx context.Context, nationalID string, cmd *patient.UpdatePatientCommand, audit AuditEntry) (*patient.Patient, error) {
	if err := validateUpdateCommand(cmd); err != nil {
		return nil, err
	}

	p, err := s.repo.Update(ctx, nationalID, cmd)
	if err != nil {
		return nil, err
	}

	audit.Action = "update"
	audit.PatientNationalID = nationalID
	audit.ResourceType = "patient"
	audit.ResourceID = p.ID.String()
	s.auditSvc.LogAsync(ctx, audit)

	return p, nil
}

func (s *PatientService) DeactivatePatient(ctx context.Context, nationalID string, audit AuditEntry) error {
	if err := s.repo.SoftDelete(ctx, nationalID); err != nil {
		return err
	}

	audit.Action = "delete"
	audit.PatientNationalID = nationalID
	audit.ResourceType = "patient"
	s.auditSvc.LogAsync(ctx, audit)

	return nil
}

func (s *PatientService) ListPatients(ctx context.Context, q *patient.ListPatientsQuery) (*patient.PagedPatients, error) {
	q.Normalize()
	return s.repo.List(ctx, q)
}

func validateCreateCommand(cmd *patient.CreatePatientCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.NationalID) == "" {
		errs = append(errs, "national_id is required")
	} else if err := validate.NationalID(cmd.NationalID); err != nil {
		errs = append(errs, "national_id: "+err.Error())
	}
	if strings.TrimSpace(cmd.FullName) == "" {
		errs = append(errs, "full_name is required")
	}
	if cmd.DateOfBirth.IsZero() {
		errs = append(errs, "date_of_birth is required")
	} else if cmd.DateOfBirth.After(time.Now()) {
		errs = append(errs, "date_of_birth cannot be in the future")
	}
	if !cmd.Gender.IsValid() {
		errs = append(errs, "gender is invalid")
	}
	if cmd.BloodType != "" && !cmd.BloodType.IsValid() {
		errs = append(errs, "blood_type is invalid")
	}
	if cmd.Phone != nil {
		if err := validate.Phone(*cmd.Phone); err != nil {
			errs = append(errs, "phone: "+err.Error())
		}
	}
	if cmd.Email != nil {
		if err := validate.Email(*cmd.Email); err != nil {
			errs = append(errs, "email is invalid")
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

func validateUpdateCommand(cmd *patient.UpdatePatientCommand) error {
	var errs []string

	if cmd.FullName != nil && strings.TrimSpace(*cmd.FullName) == "" {
		errs = append(errs, "full_name cannot be empty")
	}
	if cmd.Gender != nil && !cmd.Gender.IsValid() {
		errs = append(errs, "gender is invalid")
	}
	if cmd.BloodType != nil && !cmd.BloodType.IsValid() {
		errs = append(errs, "blood_type is invalid")
	}
	if cmd.Phone != nil {
		if err := validate.Phone(*cmd.Phone); err != nil {
			errs = append(errs, "phone: "+err.Error())
		}
	}
	if cmd.Email != nil {
		if err := validate.Email(*cmd.Email); err != nil {
			errs = append(errs, "email is invalid")
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
