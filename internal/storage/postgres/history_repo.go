package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sehaty/sehaty/internal/domain/history"
)

// HistoryRepository implements both the read (history.Store) and write
// (history.Editor) sides over one set of tables. The per-entity methods are
// mechanical; the shared query shapes live in the generic helpers below.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

var (
	_ history.Store  = (*HistoryRepository)(nil)
	_ history.Editor = (*HistoryRepository)(nil)
)

// listByPatient fetches every row of one entity belonging to a patient, in
// natural storage order. No ORDER BY: chronology is a caller concern.
func listByPatient[T any](ctx context.Context, db *gorm.DB, nationalID string) ([]*T, error) {
	var recs []*T
	if err := db.WithContext(ctx).Where("patient_national_id = ?", nationalID).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func createRecord[T any](ctx context.Context, db *gorm.DB, rec *T) error {
	if err := db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

func deleteRecord[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	var zero T
	res := db.WithContext(ctx).Where("id = ?", id).Delete(&zero)
	if res.Error != nil {
		return fmt.Errorf("deleting record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return history.ErrEntryNotFound
	}
	return nil
}

func (r *HistoryRepository) Allergies(ctx context.Context, nationalID string) ([]*history.Allergy, error) {
	return listByPatient[history.Allergy](ctx, r.db, nationalID)
}

func (r *HistoryRepository) ChronicDiseases(ctx context.Context, nationalID string) ([]*history.ChronicDisease, error) {
	return listByPatient[history.ChronicDisease](ctx, r.db, nationalID)
}

func (r *HistoryRepository) Medications(ctx context.Context, nationalID string) ([]*history.CurrentMedication, error) {
	return listByPatient[history.CurrentMedication](ctx, r.db, nationalID)
}

func (r *HistoryRepository) Surgeries(ctx context.Context, nationalID string) ([]*history.Surgery, error) {
	return listByPatient[history.Surgery](ctx, r.db, nationalID)
}

func (r *HistoryRepository) Hospitalizations(ctx context.Context, nationalID string) ([]*history.Hospitalization, error) {
	return listByPatient[history.Hospitalization](ctx, r.db, nationalID)
}

func (r *HistoryRepository) Vaccinations(ctx context.Context, nationalID string) ([]*history.Vaccination, error) {
	return listByPatient[history.Vaccination](ctx, r.db, nationalID)
}

func (r *HistoryRepository) FamilyHistory(ctx context.Context, nationalID string) ([]*history.FamilyHistory, error) {
	return listByPatient[history.FamilyHistory](ctx, r.db, nationalID)
}

func (r *HistoryRepository) Disabilities(ctx context.Context, nationalID string) ([]*history.Disability, error) {
	return listByPatient[history.Disability](ctx, r.db, nationalID)
}

func (r *HistoryRepository) EmergencyDirectives(ctx context.Context, nationalID string) ([]*history.EmergencyDirective, error) {
	return listByPatient[history.EmergencyDirective](ctx, r.db, nationalID)
}

func (r *HistoryRepository) Lifestyles(ctx context.Context, nationalID string) ([]*history.Lifestyle, error) {
	return listByPatient[history.Lifestyle](ctx, r.db, nationalID)
}

func (r *HistoryRepository) Insurances(ctx context.Context, nationalID string) ([]*history.Insurance, error) {
	return listByPatient[history.Insurance](ctx, r.db, nationalID)
}

func (r *HistoryRepository) CreateAllergy(ctx context.Context, rec *history.Allergy) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateChronicDisease(ctx context.Context, rec *history.ChronicDisease) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateMedication(ctx context.Context, rec *history.CurrentMedication) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateSurgery(ctx context.Context, rec *history.Surgery) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateHospitalization(ctx context.Context, rec *history.Hospitalization) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateVaccination(ctx context.Context, rec *history.Vaccination) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateFamilyHistory(ctx context.Context, rec *history.FamilyHistory) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateDisability(ctx context.Context, rec *history.Disability) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateEmergencyDirective(ctx context.Context, rec *history.EmergencyDirective) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateLifestyle(ctx context.Context, rec *history.Lifestyle) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) CreateInsurance(ctx context.Context, rec *history.Insurance) error {
	return createRecord(ctx, r.db, rec)
}

func (r *HistoryRepository) DeleteAllergy(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.Allergy](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteChronicDisease(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.ChronicDisease](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.CurrentMedication](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteSurgery(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.Surgery](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteHospitalization(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.Hospitalization](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteVaccination(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.Vaccination](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteFamilyHistory(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.FamilyHistory](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteDisability(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.Disability](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteEmergencyDirective(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.EmergencyDirective](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteLifestyle(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.Lifestyle](ctx, r.db, id)
}

func (r *HistoryRepository) DeleteInsurance(ctx context.Context, id uuid.UUID) error {
	return deleteRecord[history.Insurance](ctx, r.db, id)
}
