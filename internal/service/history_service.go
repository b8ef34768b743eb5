package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/domain/patient"
)

// HistoryService adds and removes clinical history entries. Every write
// checks that the owning patient exists; no write enforces singleton
// cardinality for the 0..1 entities - storage may legitimately hold
// duplicates and the read side resolves them first-wins.
type HistoryService struct {
	patients patient.Repository
	editor   history.Editor
	auditSvc *AuditService
	log      *zap.Logger
}

func NewHistoryService(patients patient.Repository, editor history.Editor, auditSvc *AuditService, log *zap.Logger) *HistoryService {
	return &HistoryService{
		patients: patients,
		editor:   editor,
		auditSvc: auditSvc,
		log:      log,
	}
}

func (s *HistoryService) requirePatient(ctx context.Context, nationalID string) error {
	exists, err := s.patients.ExistsByNationalID(ctx, nationalID)
	if err != nil {
		return fmt.Errorf("checking patient existence: %w", err)
	}
	if !exists {
		return patient.ErrPatientNotFound
	}
	return nil
}

func (s *HistoryService) audited(ctx context.Context, audit AuditEntry, action, resourceType, nationalID string, id uuid.UUID) {
	audit.Action = action
	audit.PatientNationalID = nationalID
	audit.ResourceType = resourceType
	if id != uuid.Nil {
		audit.ResourceID = id.String()
	}
	s.auditSvc.LogAsync(ctx, audit)
}

func (s *HistoryService) AddAllergy(ctx context.Context, rec *history.Allergy, audit AuditEntry) error {
	if strings.TrimSpace(rec.AllergenName) == "" {
		return &ValidationError{Fields: []string{"allergen_name is required"}}
	}
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateAllergy(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "allergy", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddChronicDisease(ctx context.Context, rec *history.ChronicDisease, audit AuditEntry) error {
	if strings.TrimSpace(rec.DiseaseName) == "" {
		return &ValidationError{Fields: []string{"disease_name is required"}}
	}
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateChronicDisease(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "chronic_disease", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddMedication(ctx context.Context, rec *history.CurrentMedication, audit AuditEntry) error {
	if strings.TrimSpace(rec.MedicationName) == "" {
		return &ValidationError{Fields: []string{"medication_name is required"}}
	}
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateMedication(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "current_medication", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddSurgery(ctx context.Context, rec *history.Surgery, audit AuditEntry) error {
	if strings.TrimSpace(rec.ProcedureName) == "" {
		return &ValidationError{Fields: []string{"procedure_name is required"}}
	}
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateSurgery(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "surgery", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddHospitalization(ctx context.Context, rec *history.Hospitalization, audit AuditEntry) error {
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateHospitalization(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "hospitalization", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddVaccination(ctx context.Context, rec *history.Vaccination, audit AuditEntry) error {
	if strings.TrimSpace(rec.VaccineName) == "" {
		return &ValidationError{Fields: []string{"vaccine_name is required"}}
	}
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateVaccination(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "vaccination", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddFamilyHistory(ctx context.Context, rec *history.FamilyHistory, audit AuditEntry) error {
	if strings.TrimSpace(rec.Relation) == "" {
		return &ValidationError{Fields: []string{"relation is required"}}
	}
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateFamilyHistory(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "family_history", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddDisability(ctx context.Context, rec *history.Disability, audit AuditEntry) error {
	if strings.TrimSpace(rec.DisabilityType) == "" {
		return &ValidationError{Fields: []string{"disability_type is required"}}
	}
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateDisability(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "disability", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddEmergencyDirective(ctx context.Context, rec *history.EmergencyDirective, audit AuditEntry) error {
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateEmergencyDirective(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "emergency_directive", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddLifestyle(ctx context.Context, rec *history.Lifestyle, audit AuditEntry) error {
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateLifestyle(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "lifestyle", rec.PatientNationalID, rec.ID)
	return nil
}

func (s *HistoryService) AddInsurance(ctx context.Context, rec *history.Insurance, audit AuditEntry) error {
	if err := s.requirePatient(ctx, rec.PatientNationalID); err != nil {
		return err
	}
	if err := s.editor.CreateInsurance(ctx, rec); err != nil {
		return err
	}
	s.audited(ctx, audit, "create", "insurance", rec.PatientNationalID, rec.ID)
	return nil
}

// Removal is keyed by entry id; the entity kind selects the table.

func (s *HistoryService) RemoveEntry(ctx context.Context, kind string, id uuid.UUID, audit AuditEntry) error {
	var err error
	switch kind {
	case "allergies":
		err = s.editor.DeleteAllergy(ctx, id)
	case "chronic-diseases":
		err = s.editor.DeleteChronicDisease(ctx, id)
	case "medications":
		err = s.editor.DeleteMedication(ctx, id)
	case "surgeries":
		err = s.editor.DeleteSurgery(ctx, id)
	case "hospitalizations":
		err = s.editor.DeleteHospitalization(ctx, id)
	case "vaccinations":
		err = s.editor.DeleteVaccination(ctx, id)
	case "family-history":
		err = s.editor.DeleteFamilyHistory(ctx, id)
	case "disabilities":
		err = s.editor.DeleteDisability(ctx, id)
	case "emergency-directives":
		err = s.editor.DeleteEmergencyDirective(ctx, id)
	case "lifestyle":
		err = s.editor.DeleteLifestyle(ctx, id)
	case "insurance":
		err = s.editor.DeleteInsurance(ctx, id)
	default:
		return &ValidationError{Fields: []string{"unknown history entry kind: " + kind}}
	}
	if err != nil {
		return err
	}
	s.audited(ctx, audit, "delete", kind, audit.PatientNationalID, id)
	return nil
}
