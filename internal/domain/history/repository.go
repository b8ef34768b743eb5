package history

import (
	"context"

	"github.com/google/uuid"
)

// Store is the read side of history storage: every collection of one patient,
// fetched by national ID in natural storage order. Chronological ordering is
// a caller concern, not a storage guarantee. The record aggregator depends on
// exactly this interface.
type Store interface {
	Allergies(ctx context.Context, nationalID string) ([]*Allergy, error)
	ChronicDiseases(ctx context.Context, nationalID string) ([]*ChronicDisease, error)
	Medications(ctx context.Context, nationalID string) ([]*CurrentMedication, error)
	Surgeries(ctx context.Context, nationalID string) ([]*Surgery, error)
	Hospitalizations(ctx context.Context, nationalID string) ([]*Hospitalization, error)
	Vaccinations(ctx context.Context, nationalID string) ([]*Vaccination, error)
	FamilyHistory(ctx context.Context, nationalID string) ([]*FamilyHistory, error)
	Disabilities(ctx context.Context, nationalID string) ([]*Disability, error)
	EmergencyDirectives(ctx context.Context, nationalID string) ([]*EmergencyDirective, error)
	Lifestyles(ctx context.Context, nationalID string) ([]*Lifestyle, error)
	Insurances(ctx context.Context, nationalID string) ([]*Insurance, error)
}

// Editor is the write side of history storage. Delete methods return
// ErrEntryNotFound when no row matches the id.
type Editor interface {
	CreateAllergy(ctx context.Context, rec *Allergy) error
	CreateChronicDisease(ctx context.Context, rec *ChronicDisease) error
	CreateMedication(ctx context.Context, rec *CurrentMedication) error
	CreateSurgery(ctx context.Context, rec *Surgery) error
	CreateHospitalization(ctx context.Context, rec *Hospitalization) error
	CreateVaccination(ctx context.Context, rec *Vaccination) error
	CreateFamilyHistory(ctx context.Context, rec *FamilyHistory) error
	CreateDisability(ctx context.Context, rec *Disability) error
	CreateEmergencyDirective(ctx context.Context, rec *EmergencyDirective) error
	CreateLifestyle(ctx context.Context, rec *Lifestyle) error
	CreateInsurance(ctx context.Context, rec *Insurance) error

	DeleteAllergy(ctx context.Context, id uuid.UUID) error
	DeleteChronicDisease(ctx context.Context, id uuid.UUID) error
	DeleteMedication(ctx context.Context, id uuid.UUID) error
	DeleteSurgery(ctx context.Context, id uuid.UUID) error
	DeleteHospitalization(ctx context.Context, id uuid.UUID) error
	DeleteVaccination(ctx context.Context, id uuid.UUID) error
	DeleteFamilyHistory(ctx context.Context, id uuid.UUID) error
	DeleteDisability(ctx context.Context, id uuid.UUID) error
	DeleteEmergencyDirective(ctx context.Context, id uuid.UUID) error
	DeleteLifestyle(ctx context.Context, id uuid.UUID) error
	DeleteInsurance(ctx context.Context, id uuid.UUID) error
}
