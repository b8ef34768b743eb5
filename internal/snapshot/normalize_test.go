package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/domain/patient"
)

func strp(s string) *string { return &s }

func TestNormalize_NilRecordYieldsAllKeysNil(t *testing.T) {
	m := Normalize[history.Allergy](nil, AllergyFields)

	require.Len(t, m, len(AllergyFields))
	for _, f := range AllergyFields {
		v, ok := m[f.Name]
		assert.True(t, ok, "key %q must be present", f.Name)
		assert.Nil(t, v)
	}
}

func TestNormalize_OptionalNilBecomesExplicitNull(t *testing.T) {
	rec := &history.Allergy{AllergenName: "Penicillin"}

	m := Normalize(rec, AllergyFields)

	assert.Equal(t, "Penicillin", m["allergen_name"])
	for _, key := range []string{"severity", "reaction", "date_identified"} {
		v, ok := m[key]
		assert.True(t, ok, "key %q must be present", key)
		assert.Nil(t, v)
	}
}

func TestNormalize_EnumsReduceToPlainStrings(t *testing.T) {
	p := &patient.Patient{
		NationalID:  "29501012345678",
		FullName:    "Omar Said",
		DateOfBirth: time.Date(1995, 1, 1, 0, 0, 0, 0, time.UTC),
		Gender:      patient.GenderMale,
		BloodType:   patient.BloodTypeAPos,
	}

	m := Normalize(p, IdentityFields)

	assert.Equal(t, "Male", m["gender"])
	assert.Equal(t, "A+", m["blood_type"])
	assert.IsType(t, "", m["gender"], "enum must not survive as a typed value")
}

func TestNormalize_TimePointersUnwrap(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	rec := &history.CurrentMedication{
		MedicationName: "Metformin",
		StartDate:      &start,
		IsActive:       true,
	}

	m := Normalize(rec, MedicationFields)

	assert.Equal(t, start, m["start_date"])
	assert.IsType(t, time.Time{}, m["start_date"])
}

func TestNormalizeAll_EmptyIsNeverNil(t *testing.T) {
	out := NormalizeAll(nil, AllergyFields)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestNormalizeMap_FillsMissingKeys(t *testing.T) {
	names := Names(AllergyFields)
	in := map[string]any{
		"allergen_name": "Dust",
		"custom_note":   "imported",
	}

	out := NormalizeMap(in, names)

	assert.Equal(t, "Dust", out["allergen_name"])
	assert.Equal(t, "imported", out["custom_note"], "extra keys are preserved")
	for _, key := range []string{"severity", "reaction", "date_identified"} {
		v, ok := out[key]
		assert.True(t, ok)
		assert.Nil(t, v)
	}
}

func TestNormalizeMap_CompleteMapPassesThrough(t *testing.T) {
	names := Names(AllergyFields)
	in := map[string]any{
		"allergen_name":   "Dust",
		"severity":        "Mild",
		"reaction":        nil,
		"date_identified": nil,
	}

	out := NormalizeMap(in, names)

	assert.Equal(t, map[string]any{
		"allergen_name":   "Dust",
		"severity":        "Mild",
		"reaction":        nil,
		"date_identified": nil,
	}, out)
}

func TestNormalizeMap_NilMapIsTotal(t *testing.T) {
	names := Names(LifestyleFields)

	out := NormalizeMap(nil, names)

	require.Len(t, out, len(names))
	for _, name := range names {
		v, ok := out[name]
		assert.True(t, ok)
		assert.Nil(t, v)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	rec := &history.Allergy{AllergenName: "Penicillin", Severity: strp("Severe")}

	first := Normalize(rec, AllergyFields)
	second := NormalizeMap(first, Names(AllergyFields))

	assert.Equal(t, first, second)
}
