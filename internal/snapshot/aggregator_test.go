package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/domain/patient"
)

type stubPatients struct {
	getByNationalID func(ctx context.Context, nationalID string) (*patient.Patient, error)
}

func (s *stubPatients) Create(context.Context, *patient.Patient) error { return nil }
func (s *stubPatients) GetByNationalID(ctx context.Context, nationalID string) (*patient.Patient, error) {
	return s.getByNationalID(ctx, nationalID)
}
func (s *stubPatients) Update(context.Context, string, *patient.UpdatePatientCommand) (*patient.Patient, error) {
	return nil, nil
}
func (s *stubPatients) SoftDelete(context.Context, string) error { return nil }
func (s *stubPatients) List(context.Context, *patient.ListPatientsQuery) (*patient.PagedPatients, error) {
	return nil, nil
}
func (s *stubPatients) ExistsByNationalID(context.Context, string) (bool, error) {
	return true, nil
}

// stubStore serves fixed slices and can fail one collection by name.
type stubStore struct {
	allergies    []*history.Allergy
	diseases     []*history.ChronicDisease
	medications  []*history.CurrentMedication
	surgeries    []*history.Surgery
	hosps        []*history.Hospitalization
	vaccinations []*history.Vaccination
	family       []*history.FamilyHistory
	disabilities []*history.Disability
	directives   []*history.EmergencyDirective
	lifestyles   []*history.Lifestyle
	insurances   []*history.Insurance

	failOn  string
	failErr error
}

func (s *stubStore) fail(collection string) error {
	if s.failOn == collection {
		return s.failErr
	}
	return nil
}

func (s *stubStore) Allergies(ctx context.Context, nid string) ([]*history.Allergy, error) {
	return s.allergies, s.fail("allergies")
}
func (s *stubStore) ChronicDiseases(ctx context.Context, nid string) ([]*history.ChronicDisease, error) {
	return s.diseases, s.fail("chronic_diseases")
}
func (s *stubStore) Medications(ctx context.Context, nid string) ([]*history.CurrentMedication, error) {
	return s.medications, s.fail("current_medications")
}
func (s *stubStore) Surgeries(ctx context.Context, nid string) ([]*history.Surgery, error) {
	return s.surgeries, s.fail("surgeries")
}
func (s *stubStore) Hospitalizations(ctx context.Context, nid string) ([]*history.Hospitalization, error) {
	return s.hosps, s.fail("hospitalizations")
}
func (s *stubStore) Vaccinations(ctx context.Context, nid string) ([]*history.Vaccination, error) {
	return s.vaccinations, s.fail("vaccinations")
}
func (s *stubStore) FamilyHistory(ctx context.Context, nid string) ([]*history.FamilyHistory, error) {
	return s.family, s.fail("family_history")
}
func (s *stubStore) Disabilities(ctx context.Context, nid string) ([]*history.Disability, error) {
	return s.disabilities, s.fail("disabilities")
}
func (s *stubStore) EmergencyDirectives(ctx context.Context, nid string) ([]*history.EmergencyDirective, error) {
	return s.directives, s.fail("emergency_directives")
}
func (s *stubStore) Lifestyles(ctx context.Context, nid string) ([]*history.Lifestyle, error) {
	return s.lifestyles, s.fail("lifestyle")
}
func (s *stubStore) Insurances(ctx context.Context, nid string) ([]*history.Insurance, error) {
	return s.insurances, s.fail("insurance")
}

func testPatient() *patient.Patient {
	return &patient.Patient{
		NationalID:  "29501012345678",
		FullName:    "Omar Said",
		DateOfBirth: time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:      patient.GenderMale,
		BloodType:   patient.BloodTypeAPos,
	}
}

func foundPatients() *stubPatients {
	return &stubPatients{
		getByNationalID: func(_ context.Context, nid string) (*patient.Patient, error) {
			return testPatient(), nil
		},
	}
}

func TestLoad_PatientNotFound(t *testing.T) {
	patients := &stubPatients{
		getByNationalID: func(context.Context, string) (*patient.Patient, error) {
			return nil, patient.ErrPatientNotFound
		},
	}
	agg := NewAggregator(patients, &stubStore{}, zap.NewNop())

	snap, err := agg.Load(context.Background(), "29999999999999")

	require.ErrorIs(t, err, patient.ErrPatientNotFound)
	var storageErr *StorageError
	assert.False(t, errors.As(err, &storageErr), "a missing patient is not a storage failure")
	assert.Nil(t, snap)
}

func TestLoad_EmptyHistoryIsNotAnError(t *testing.T) {
	agg := NewAggregator(foundPatients(), &stubStore{}, zap.NewNop())

	snap, err := agg.Load(context.Background(), "29501012345678")

	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "Omar Said", snap.Identity["full_name"])

	for name, coll := range map[string][]map[string]any{
		"allergies":           snap.Allergies,
		"chronic_diseases":    snap.ChronicDiseases,
		"current_medications": snap.CurrentMedications,
		"surgeries":           snap.Surgeries,
		"hospitalizations":    snap.Hospitalizations,
		"vaccinations":        snap.Vaccinations,
		"family_history":      snap.FamilyHistory,
		"disabilities":        snap.Disabilities,
	} {
		assert.NotNil(t, coll, "%s must be empty, not null", name)
		assert.Empty(t, coll)
	}

	assert.Nil(t, snap.EmergencyDirectives)
	assert.Nil(t, snap.Lifestyle)
	assert.Nil(t, snap.Insurance)
}

func TestLoad_OnlyActiveMedications(t *testing.T) {
	store := &stubStore{
		medications: []*history.CurrentMedication{
			{MedicationName: "A", IsActive: true},
			{MedicationName: "B", IsActive: false},
			{MedicationName: "C", IsActive: true},
		},
	}
	agg := NewAggregator(foundPatients(), store, zap.NewNop())

	snap, err := agg.Load(context.Background(), "29501012345678")

	require.NoError(t, err)
	require.Len(t, snap.CurrentMedications, 2)
	assert.Equal(t, "A", snap.CurrentMedications[0]["medication_name"])
	assert.Equal(t, "C", snap.CurrentMedications[1]["medication_name"])
}

func TestLoad_SingletonFirstWins(t *testing.T) {
	store := &stubStore{
		lifestyles: []*history.Lifestyle{
			{Occupation: strp("engineer")},
			{Occupation: strp("pharmacist")},
		},
	}
	agg := NewAggregator(foundPatients(), store, zap.NewNop())

	snap, err := agg.Load(context.Background(), "29501012345678")

	require.NoError(t, err)
	require.NotNil(t, snap.Lifestyle)
	assert.Equal(t, "engineer", snap.Lifestyle["occupation"])
}

func TestLoad_StorageFailureAbortsWholeAggregation(t *testing.T) {
	boom := errors.New("connection reset")
	store := &stubStore{
		allergies: []*history.Allergy{{AllergenName: "Penicillin"}},
		failOn:    "vaccinations",
		failErr:   boom,
	}
	agg := NewAggregator(foundPatients(), store, zap.NewNop())

	snap, err := agg.Load(context.Background(), "29501012345678")

	assert.Nil(t, snap, "partial snapshots are never returned")

	var storageErr *StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "vaccinations", storageErr.Collection)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, patient.ErrPatientNotFound)
}

func TestLoad_FullRecord(t *testing.T) {
	store := &stubStore{
		allergies: []*history.Allergy{
			{AllergenName: "Penicillin", Severity: strp("Severe")},
		},
		medications: []*history.CurrentMedication{
			{MedicationName: "Aspirin", IsActive: false},
		},
	}
	agg := NewAggregator(foundPatients(), store, zap.NewNop())

	snap, err := agg.Load(context.Background(), "29501012345678")
	require.NoError(t, err)

	assert.Equal(t, "29501012345678", snap.Identity["national_id"])
	assert.Equal(t, "Omar Said", snap.Identity["full_name"])
	assert.Equal(t, "Male", snap.Identity["gender"])
	assert.Equal(t, "A+", snap.Identity["blood_type"])

	require.Len(t, snap.Allergies, 1)
	allergy := snap.Allergies[0]
	assert.Equal(t, "Penicillin", allergy["allergen_name"])
	assert.Equal(t, "Severe", allergy["severity"])
	assert.Contains(t, allergy, "reaction")
	assert.Nil(t, allergy["reaction"])
	assert.NotContains(t, allergy, "id", "internal ids never leak into a snapshot")

	assert.Empty(t, snap.CurrentMedications, "inactive medications are excluded")
}

func TestLoad_Idempotent(t *testing.T) {
	store := &stubStore{
		allergies: []*history.Allergy{
			{AllergenName: "Penicillin", Severity: strp("Severe")},
		},
		directives: []*history.EmergencyDirective{
			{DNRStatus: true},
		},
	}
	agg := NewAggregator(foundPatients(), store, zap.NewNop())

	first, err := agg.Load(context.Background(), "29501012345678")
	require.NoError(t, err)
	second, err := agg.Load(context.Background(), "29501012345678")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
