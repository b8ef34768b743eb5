// Package snapshot assembles a patient's full medical record into one
// detached, serializable value. The normalizer converts records of any
// supported shape into canonical field->value maps; the aggregator fetches
// the identity record and every history collection for one national ID and
// composes them into a PatientSnapshot.
package snapshot

// PatientSnapshot is a fully materialized, storage-detached copy of one
// patient's record. Once produced it has no connection back to storage;
// mutating it has no effect on persisted data.
//
// Every key is always present in the serialized form: empty collections are
// empty arrays, absent single-valued records are null. Enumerations appear
// as their plain scalar value, and optional fields that are unset appear as
// explicit nulls rather than missing keys, so consumers can default
// uniformly.
type PatientSnapshot struct {
	Identity map[string]any `json:"identity"`

	Allergies          []map[string]any `json:"allergies"`
	ChronicDiseases    []map[string]any `json:"chronic_diseases"`
	CurrentMedications []map[string]any `json:"current_medications"`
	Surgeries          []map[string]any `json:"surgeries"`
	Hospitalizations   []map[string]any `json:"hospitalizations"`
	Vaccinations       []map[string]any `json:"vaccinations"`
	FamilyHistory      []map[string]any `json:"family_history"`
	Disabilities       []map[string]any `json:"disabilities"`

	// 0..1 per patient, first-wins when storage holds duplicates.
	EmergencyDirectives map[string]any `json:"emergency_directives"`
	Lifestyle           map[string]any `json:"lifestyle"`
	Insurance           map[string]any `json:"insurance"`
}

// DateOnlyKeys names the snapshot fields whose temporal values are calendar
// dates rather than instants. Export consumers render these as ISO-8601
// dates (YYYY-MM-DD) and everything else as RFC 3339 timestamps.
var DateOnlyKeys = map[string]bool{
	"date_of_birth":     true,
	"date_identified":   true,
	"date_diagnosed":    true,
	"start_date":        true,
	"surgery_date":      true,
	"admission_date":    true,
	"discharge_date":    true,
	"date_administered": true,
	"expiry_date":       true,
}
