package export

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehaty/sehaty/internal/snapshot"
)

func sampleSnapshot() *snapshot.PatientSnapshot {
	dob := time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	identified := time.Date(2010, 5, 20, 0, 0, 0, 0, time.UTC)

	return &snapshot.PatientSnapshot{
		Identity: map[string]any{
			"national_id":       "29501012345678",
			"full_name":         "Omar Said",
			"date_of_birth":     dob,
			"age":               31,
			"gender":            "Male",
			"blood_type":        "A+",
			"emergency_contact": "Mona Said 01012345678",
			"created_at":        created,
		},
		Allergies: []map[string]any{
			{
				"allergen_name":   "Penicillin",
				"severity":        "Severe",
				"reaction":        nil,
				"date_identified": identified,
			},
		},
		CurrentMedications: []map[string]any{
			{"medication_name": "Metformin", "dosage": "500mg", "is_active": true},
		},
		ChronicDiseases:  []map[string]any{},
		Surgeries:        []map[string]any{},
		Hospitalizations: []map[string]any{},
		Vaccinations:     []map[string]any{},
		FamilyHistory:    []map[string]any{},
		Disabilities:     []map[string]any{},
		EmergencyDirectives: map[string]any{
			"dnr_status":  true,
			"organ_donor": false,
		},
	}
}

func TestISO8601_DateOnlyVersusInstant(t *testing.T) {
	out := ISO8601(sampleSnapshot())

	assert.Equal(t, "1995-01-01", out.Identity["date_of_birth"], "calendar dates carry no time component")
	assert.Equal(t, "2024-06-15T10:30:00Z", out.Identity["created_at"], "instants keep full RFC 3339 precision")
	assert.Equal(t, "2010-05-20", out.Allergies[0]["date_identified"])
}

func TestISO8601_DoesNotMutateInput(t *testing.T) {
	in := sampleSnapshot()

	_ = ISO8601(in)

	assert.IsType(t, time.Time{}, in.Identity["date_of_birth"], "input snapshot keeps its time.Time values")
}

func TestISO8601_PreservesNilSingletons(t *testing.T) {
	in := sampleSnapshot()
	in.Lifestyle = nil
	in.Insurance = nil

	out := ISO8601(in)

	assert.Nil(t, out.Lifestyle)
	assert.Nil(t, out.Insurance)
	assert.NotNil(t, out.EmergencyDirectives)
}

func TestJSON_NullsAndEmptyArraysSurvive(t *testing.T) {
	in := sampleSnapshot()
	in.Lifestyle = nil

	raw, err := JSON(in)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "lifestyle")
	assert.Nil(t, decoded["lifestyle"], "absent singleton serializes as null, not a missing key")

	surgeries, ok := decoded["surgeries"].([]any)
	require.True(t, ok, "empty collection serializes as [], not null")
	assert.Empty(t, surgeries)

	allergy := decoded["allergies"].([]any)[0].(map[string]any)
	assert.Contains(t, allergy, "reaction")
	assert.Nil(t, allergy["reaction"])
}

func TestNewEmergencyCard(t *testing.T) {
	card := NewEmergencyCard(sampleSnapshot())

	assert.Equal(t, "29501012345678", card.NationalID)
	assert.Equal(t, "Omar Said", card.FullName)
	require.NotNil(t, card.Age)
	assert.Equal(t, 31, *card.Age)
	assert.Equal(t, "A+", card.BloodType)
	assert.Equal(t, []string{"Penicillin (Severe)"}, card.Allergies)
	assert.Equal(t, []string{"Metformin 500mg"}, card.Medications)
	assert.True(t, card.DNR)
	assert.False(t, card.OrganDonor)
	assert.Equal(t, "Mona Said 01012345678", card.EmergencyContact)
}

func TestNewEmergencyCard_NoDirectives(t *testing.T) {
	in := sampleSnapshot()
	in.EmergencyDirectives = nil
	in.Allergies = []map[string]any{}
	in.CurrentMedications = []map[string]any{}

	card := NewEmergencyCard(in)

	assert.False(t, card.DNR)
	assert.False(t, card.OrganDonor)
	assert.Empty(t, card.Allergies)
	assert.Empty(t, card.Medications)
}
