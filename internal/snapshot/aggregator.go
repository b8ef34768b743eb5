package snapshot

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/domain/patient"
)

// Aggregator builds PatientSnapshots. It is read-only: no fetch performed
// here ever writes. Each Load call runs its sub-fetches sequentially with no
// transaction spanning them, so a write landing between two fetches can mix
// pre- and post-write state across collections. Callers needing strict
// consistency must synchronize externally; a ctx deadline bounds the whole
// call.
type Aggregator struct {
	patients patient.Repository
	store    history.Store
	log      *zap.Logger
}

func NewAggregator(patients patient.Repository, store history.Store, log *zap.Logger) *Aggregator {
	return &Aggregator{
		patients: patients,
		store:    store,
		log:      log,
	}
}

// Load assembles the full record for one national ID.
//
// Returns patient.ErrPatientNotFound when no identity record exists - a
// patient with an identity record but no history yields a snapshot with
// empty collections instead. Any sub-collection fetch failure aborts the
// whole aggregation with a *StorageError; partial snapshots are never
// returned.
func (a *Aggregator) Load(ctx context.Context, nationalID string) (*PatientSnapshot, error) {
	p, err := a.patients.GetByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, patient.ErrPatientNotFound) {
			return nil, err
		}
		return nil, &StorageError{Collection: "patient", Err: err}
	}

	snap := &PatientSnapshot{
		Identity: Normalize(p, IdentityFields),
	}

	allergies, err := a.store.Allergies(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "allergies", Err: err}
	}
	snap.Allergies = collectAll(a.log, "allergies", allergies, AllergyFields)

	diseases, err := a.store.ChronicDiseases(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "chronic_diseases", Err: err}
	}
	snap.ChronicDiseases = collectAll(a.log, "chronic_diseases", diseases, ChronicDiseaseFields)

	meds, err := a.store.Medications(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "current_medications", Err: err}
	}
	snap.CurrentMedications = collectAll(a.log, "current_medications", activeOnly(meds), MedicationFields)

	surgeries, err := a.store.Surgeries(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "surgeries", Err: err}
	}
	snap.Surgeries = collectAll(a.log, "surgeries", surgeries, SurgeryFields)

	hosps, err := a.store.Hospitalizations(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "hospitalizations", Err: err}
	}
	snap.Hospitalizations = collectAll(a.log, "hospitalizations", hosps, HospitalizationFields)

	vaccs, err := a.store.Vaccinations(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "vaccinations", Err: err}
	}
	snap.Vaccinations = collectAll(a.log, "vaccinations", vaccs, VaccinationFields)

	family, err := a.store.FamilyHistory(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "family_history", Err: err}
	}
	snap.FamilyHistory = collectAll(a.log, "family_history", family, FamilyHistoryFields)

	disabilities, err := a.store.Disabilities(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "disabilities", Err: err}
	}
	snap.Disabilities = collectAll(a.log, "disabilities", disabilities, DisabilityFields)

	directives, err := a.store.EmergencyDirectives(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "emergency_directives", Err: err}
	}
	snap.EmergencyDirectives = firstOf(a.log, nationalID, "emergency_directives", directives, EmergencyDirectiveFields)

	lifestyles, err := a.store.Lifestyles(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "lifestyle", Err: err}
	}
	snap.Lifestyle = firstOf(a.log, nationalID, "lifestyle", lifestyles, LifestyleFields)

	insurances, err := a.store.Insurances(ctx, nationalID)
	if err != nil {
		return nil, &StorageError{Collection: "insurance", Err: err}
	}
	snap.Insurance = firstOf(a.log, nationalID, "insurance", insurances, InsuranceFields)

	return snap, nil
}

// collectAll normalizes a repeated collection, emitting a diagnostic for any
// business-required field that came back null.
func collectAll[T any](log *zap.Logger, collection string, recs []*T, fields []Field[T]) []map[string]any {
	out := make([]map[string]any, 0, len(recs))
	for _, rec := range recs {
		m := Normalize(rec, fields)
		warnMissing(log, collection, m, fields)
		out = append(out, m)
	}
	return out
}

// activeOnly applies the medication filter: a snapshot never contains an
// inactive medication, it is excluded rather than flagged.
func activeOnly(meds []*history.CurrentMedication) []*history.CurrentMedication {
	out := make([]*history.CurrentMedication, 0, len(meds))
	for _, m := range meds {
		if m != nil && m.IsActive {
			out = append(out, m)
		}
	}
	return out
}

// firstOf resolves a 0..1 collection: nil when empty, otherwise the first
// fetched record wins and any extras are ignored with a warning.
func firstOf[T any](log *zap.Logger, nationalID, collection string, recs []*T, fields []Field[T]) map[string]any {
	if len(recs) == 0 {
		return nil
	}
	if len(recs) > 1 {
		log.Warn("multiple records in single-valued collection, using first",
			zap.String("collection", collection),
			zap.String("national_id", nationalID),
			zap.Int("count", len(recs)),
		)
	}
	return Normalize(recs[0], fields)
}

// warnMissing logs a diagnostic for every business-required field that
// normalized to null. Purely observational: the nil value stays in place.
func warnMissing[T any](log *zap.Logger, collection string, m map[string]any, fields []Field[T]) {
	for _, f := range fields {
		if f.Required && m[f.Name] == nil {
			log.Warn("record missing required field",
				zap.String("collection", collection),
				zap.String("field", f.Name),
			)
		}
	}
}
