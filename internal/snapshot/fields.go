package snapshot

import (
	"github.com/sehaty/sehaty/internal/domain/history"
	"github.com/sehaty/sehaty/internal/domain/patient"
)

// Canonical field sets, one per entity type. These are the single source of
// truth for what a normalized record exposes; the UI, JSON export, and
// emergency-card consumers all read these keys and no others.

var IdentityFields = []Field[patient.Patient]{
	{Name: "national_id", Required: true, Value: func(p *patient.Patient) any { return p.NationalID }},
	{Name: "full_name", Required: true, Value: func(p *patient.Patient) any { return p.FullName }},
	{Name: "date_of_birth", Value: func(p *patient.Patient) any { return p.DateOfBirth }},
	{Name: "age", Value: func(p *patient.Patient) any { return p.Age() }},
	{Name: "gender", Value: func(p *patient.Patient) any { return p.Gender }},
	{Name: "blood_type", Value: func(p *patient.Patient) any { return p.BloodType }},
	{Name: "phone", Value: func(p *patient.Patient) any { return opt(p.Phone) }},
	{Name: "email", Value: func(p *patient.Patient) any { return opt(p.Email) }},
	{Name: "address", Value: func(p *patient.Patient) any { return opt(p.Address) }},
	{Name: "city", Value: func(p *patient.Patient) any { return opt(p.City) }},
	{Name: "governorate", Value: func(p *patient.Patient) any { return opt(p.Governorate) }},
	{Name: "emergency_contact", Value: func(p *patient.Patient) any { return opt(p.EmergencyContact) }},
	{Name: "created_at", Value: func(p *patient.Patient) any { return p.CreatedAt }},
}

var AllergyFields = []Field[history.Allergy]{
	{Name: "allergen_name", Required: true, Value: func(a *history.Allergy) any { return a.AllergenName }},
	{Name: "severity", Value: func(a *history.Allergy) any { return opt(a.Severity) }},
	{Name: "reaction", Value: func(a *history.Allergy) any { return opt(a.Reaction) }},
	{Name: "date_identified", Value: func(a *history.Allergy) any { return opt(a.DateIdentified) }},
}

var ChronicDiseaseFields = []Field[history.ChronicDisease]{
	{Name: "disease_name", Required: true, Value: func(d *history.ChronicDisease) any { return d.DiseaseName }},
	{Name: "date_diagnosed", Value: func(d *history.ChronicDisease) any { return opt(d.DateDiagnosed) }},
	{Name: "severity", Value: func(d *history.ChronicDisease) any { return opt(d.Severity) }},
	{Name: "treatment", Value: func(d *history.ChronicDisease) any { return opt(d.Treatment) }},
	{Name: "is_active", Value: func(d *history.ChronicDisease) any { return d.IsActive }},
}

var MedicationFields = []Field[history.CurrentMedication]{
	{Name: "medication_name", Required: true, Value: func(m *history.CurrentMedication) any { return m.MedicationName }},
	{Name: "dosage", Value: func(m *history.CurrentMedication) any { return opt(m.Dosage) }},
	{Name: "frequency", Value: func(m *history.CurrentMedication) any { return opt(m.Frequency) }},
	{Name: "start_date", Value: func(m *history.CurrentMedication) any { return opt(m.StartDate) }},
	{Name: "is_active", Value: func(m *history.CurrentMedication) any { return m.IsActive }},
}

var SurgeryFields = []Field[history.Surgery]{
	{Name: "procedure_name", Required: true, Value: func(s *history.Surgery) any { return s.ProcedureName }},
	{Name: "surgery_date", Value: func(s *history.Surgery) any { return opt(s.SurgeryDate) }},
	{Name: "hospital", Value: func(s *history.Surgery) any { return opt(s.Hospital) }},
	{Name: "surgeon_name", Value: func(s *history.Surgery) any { return opt(s.SurgeonName) }},
	{Name: "outcome", Value: func(s *history.Surgery) any { return opt(s.Outcome) }},
	{Name: "complications", Value: func(s *history.Surgery) any { return opt(s.Complications) }},
}

var HospitalizationFields = []Field[history.Hospitalization]{
	{Name: "admission_date", Value: func(h *history.Hospitalization) any { return opt(h.AdmissionDate) }},
	{Name: "discharge_date", Value: func(h *history.Hospitalization) any { return opt(h.DischargeDate) }},
	{Name: "hospital", Value: func(h *history.Hospitalization) any { return opt(h.Hospital) }},
	{Name: "diagnosis", Value: func(h *history.Hospitalization) any { return opt(h.Diagnosis) }},
	{Name: "treatment_summary", Value: func(h *history.Hospitalization) any { return opt(h.TreatmentSummary) }},
	{Name: "days_stayed", Value: func(h *history.Hospitalization) any { return opt(h.DaysStayed) }},
}

var VaccinationFields = []Field[history.Vaccination]{
	{Name: "vaccine_name", Required: true, Value: func(v *history.Vaccination) any { return v.VaccineName }},
	{Name: "date_administered", Value: func(v *history.Vaccination) any { return opt(v.DateAdministered) }},
	{Name: "dose_number", Value: func(v *history.Vaccination) any { return opt(v.DoseNumber) }},
	{Name: "batch_number", Value: func(v *history.Vaccination) any { return opt(v.BatchNumber) }},
	{Name: "administered_by", Value: func(v *history.Vaccination) any { return opt(v.AdministeredBy) }},
}

var FamilyHistoryFields = []Field[history.FamilyHistory]{
	{Name: "relation", Required: true, Value: func(f *history.FamilyHistory) any { return f.Relation }},
	{Name: "is_alive", Value: func(f *history.FamilyHistory) any { return f.IsAlive }},
	{Name: "medical_conditions", Value: func(f *history.FamilyHistory) any { return opt(f.MedicalConditions) }},
	{Name: "genetic_conditions", Value: func(f *history.FamilyHistory) any { return opt(f.GeneticConditions) }},
	{Name: "age_at_death", Value: func(f *history.FamilyHistory) any { return opt(f.AgeAtDeath) }},
	{Name: "cause_of_death", Value: func(f *history.FamilyHistory) any { return opt(f.CauseOfDeath) }},
}

var DisabilityFields = []Field[history.Disability]{
	{Name: "disability_type", Required: true, Value: func(d *history.Disability) any { return d.DisabilityType }},
	{Name: "severity", Value: func(d *history.Disability) any { return opt(d.Severity) }},
	{Name: "date_diagnosed", Value: func(d *history.Disability) any { return opt(d.DateDiagnosed) }},
	{Name: "mobility_aids", Value: func(d *history.Disability) any { return opt(d.MobilityAids) }},
	{Name: "accessibility_requirements", Value: func(d *history.Disability) any { return opt(d.AccessibilityRequirements) }},
}

var EmergencyDirectiveFields = []Field[history.EmergencyDirective]{
	{Name: "dnr_status", Value: func(e *history.EmergencyDirective) any { return e.DNRStatus }},
	{Name: "organ_donor", Value: func(e *history.EmergencyDirective) any { return e.OrganDonor }},
	{Name: "power_of_attorney", Value: func(e *history.EmergencyDirective) any { return e.PowerOfAttorney }},
	{Name: "power_of_attorney_name", Value: func(e *history.EmergencyDirective) any { return opt(e.PowerOfAttorneyName) }},
	{Name: "power_of_attorney_contact", Value: func(e *history.EmergencyDirective) any { return opt(e.PowerOfAttorneyContact) }},
	{Name: "end_of_life_wishes", Value: func(e *history.EmergencyDirective) any { return opt(e.EndOfLifeWishes) }},
	{Name: "religious_preferences", Value: func(e *history.EmergencyDirective) any { return opt(e.ReligiousPreferences) }},
}

var LifestyleFields = []Field[history.Lifestyle]{
	{Name: "smoking_status", Value: func(l *history.Lifestyle) any { return opt(l.SmokingStatus) }},
	{Name: "alcohol_use", Value: func(l *history.Lifestyle) any { return opt(l.AlcoholUse) }},
	{Name: "exercise_frequency", Value: func(l *history.Lifestyle) any { return opt(l.ExerciseFrequency) }},
	{Name: "diet_type", Value: func(l *history.Lifestyle) any { return opt(l.DietType) }},
	{Name: "occupation", Value: func(l *history.Lifestyle) any { return opt(l.Occupation) }},
	{Name: "stress_level", Value: func(l *history.Lifestyle) any { return opt(l.StressLevel) }},
}

var InsuranceFields = []Field[history.Insurance]{
	{Name: "insurance_provider", Value: func(i *history.Insurance) any { return opt(i.InsuranceProvider) }},
	{Name: "policy_number", Value: func(i *history.Insurance) any { return opt(i.PolicyNumber) }},
	{Name: "coverage_type", Value: func(i *history.Insurance) any { return opt(i.CoverageType) }},
	{Name: "coverage_details", Value: func(i *history.Insurance) any { return opt(i.CoverageDetails) }},
	{Name: "copay_amount", Value: func(i *history.Insurance) any { return opt(i.CopayAmount) }},
	{Name: "expiry_date", Value: func(i *history.Insurance) any { return opt(i.ExpiryDate) }},
}
