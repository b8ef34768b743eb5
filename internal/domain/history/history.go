// Package history holds the per-patient clinical history entities that make
// up a patient's aggregated record: repeated collections (allergies, chronic
// diseases, medications, surgeries, hospitalizations, vaccinations, family
// history, disabilities) and single-valued records (emergency directive,
// lifestyle, insurance). Every entity is correlated to its patient through
// PatientNationalID.
package history

import (
	"time"

	"github.com/google/uuid"
)

type Allergy struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	AllergenName   string     `gorm:"column:allergen_name;type:varchar(255);not null" json:"allergen_name"`
	Severity       *string    `gorm:"column:severity;type:varchar(50)" json:"severity"`
	Reaction       *string    `gorm:"column:reaction;type:text" json:"reaction"`
	DateIdentified *time.Time `gorm:"column:date_identified;type:date" json:"date_identified"`
}

func (Allergy) TableName() string { return "clinical.allergies" }

type ChronicDisease struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	DiseaseName   string     `gorm:"column:disease_name;type:varchar(255);not null" json:"disease_name"`
	DateDiagnosed *time.Time `gorm:"column:date_diagnosed;type:date" json:"date_diagnosed"`
	Severity      *string    `gorm:"column:severity;type:varchar(50)" json:"severity"`
	Treatment     *string    `gorm:"column:treatment;type:text" json:"treatment"`
	IsActive      bool       `gorm:"column:is_active;default:true" json:"is_active"`
}

func (ChronicDisease) TableName() string { return "clinical.chronic_diseases" }

type CurrentMedication struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	MedicationName string     `gorm:"column:medication_name;type:varchar(255);not null" json:"medication_name"`
	Dosage         *string    `gorm:"column:dosage;type:varchar(100)" json:"dosage"`
	Frequency      *string    `gorm:"column:frequency;type:varchar(100)" json:"frequency"`
	StartDate      *time.Time `gorm:"column:start_date;type:date" json:"start_date"`
	IsActive       bool       `gorm:"column:is_active;default:true;index" json:"is_active"`
}

func (CurrentMedication) TableName() string { return "clinical.current_medications" }

type Surgery struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	ProcedureName string     `gorm:"column:procedure_name;type:varchar(255);not null" json:"procedure_name"`
	SurgeryDate   *time.Time `gorm:"column:surgery_date;type:date" json:"surgery_date"`
	Hospital      *string    `gorm:"column:hospital;type:varchar(255)" json:"hospital"`
	SurgeonName   *string    `gorm:"column:surgeon_name;type:varchar(255)" json:"surgeon_name"`
	Outcome       *string    `gorm:"column:outcome;type:text" json:"outcome"`
	Complications *string    `gorm:"column:complications;type:text" json:"complications"`
}

func (Surgery) TableName() string { return "clinical.surgeries" }

type Hospitalization struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	AdmissionDate    *time.Time `gorm:"column:admission_date;type:date" json:"admission_date"`
	DischargeDate    *time.Time `gorm:"column:discharge_date;type:date" json:"discharge_date"`
	Hospital         *string    `gorm:"column:hospital;type:varchar(255)" json:"hospital"`
	Diagnosis        *string    `gorm:"column:diagnosis;type:text" json:"diagnosis"`
	TreatmentSummary *string    `gorm:"column:treatment_summary;type:text" json:"treatment_summary"`
	DaysStayed       *int       `gorm:"column:days_stayed" json:"days_stayed"`
}

func (Hospitalization) TableName() string { return "clinical.hospitalizations" }

type Vaccination struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	VaccineName      string     `gorm:"column:vaccine_name;type:varchar(255);not null" json:"vaccine_name"`
	DateAdministered *time.Time `gorm:"column:date_administered;type:date" json:"date_administered"`
	DoseNumber       *int       `gorm:"column:dose_number" json:"dose_number"`
	BatchNumber      *string    `gorm:"column:batch_number;type:varchar(100)" json:"batch_number"`
	AdministeredBy   *string    `gorm:"column:administered_by;type:varchar(255)" json:"administered_by"`
}

func (Vaccination) TableName() string { return "clinical.vaccinations" }

type FamilyHistory struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	Relation          string  `gorm:"column:relation;type:varchar(50);not null" json:"relation"`
	IsAlive           bool    `gorm:"column:is_alive;default:true" json:"is_alive"`
	MedicalConditions *string `gorm:"column:medical_conditions;type:text" json:"medical_conditions"`
	GeneticConditions *string `gorm:"column:genetic_conditions;type:text" json:"genetic_conditions"`
	AgeAtDeath        *int    `gorm:"column:age_at_death" json:"age_at_death"`
	CauseOfDeath      *string `gorm:"column:cause_of_death;type:text" json:"cause_of_death"`
}

func (FamilyHistory) TableName() string { return "clinical.family_history" }

type Disability struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	DisabilityType            string     `gorm:"column:disability_type;type:varchar(100);not null" json:"disability_type"`
	Severity                  *string    `gorm:"column:severity;type:varchar(50)" json:"severity"`
	DateDiagnosed             *time.Time `gorm:"column:date_diagnosed;type:date" json:"date_diagnosed"`
	MobilityAids              *string    `gorm:"column:mobility_aids;type:text" json:"mobility_aids"`
	AccessibilityRequirements *string    `gorm:"column:accessibility_requirements;type:text" json:"accessibility_requirements"`
}

func (Disability) TableName() string { return "clinical.disabilities" }

// EmergencyDirective is logically 0..1 per patient. Storage may still hold
// duplicates; the read side resolves them first-wins.
type EmergencyDirective struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	DNRStatus              bool    `gorm:"column:dnr_status;default:false" json:"dnr_status"`
	OrganDonor             bool    `gorm:"column:organ_donor;default:false" json:"organ_donor"`
	PowerOfAttorney        bool    `gorm:"column:power_of_attorney;default:false" json:"power_of_attorney"`
	PowerOfAttorneyName    *string `gorm:"column:power_of_attorney_name;type:varchar(255)" json:"power_of_attorney_name"`
	PowerOfAttorneyContact *string `gorm:"column:power_of_attorney_contact;type:varchar(255)" json:"power_of_attorney_contact"`
	EndOfLifeWishes        *string `gorm:"column:end_of_life_wishes;type:text" json:"end_of_life_wishes"`
	ReligiousPreferences   *string `gorm:"column:religious_preferences;type:text" json:"religious_preferences"`
}

func (EmergencyDirective) TableName() string { return "clinical.emergency_directives" }

// Lifestyle is logically 0..1 per patient, first-wins on the read side.
type Lifestyle struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	SmokingStatus     *string `gorm:"column:smoking_status;type:varchar(50)" json:"smoking_status"`
	AlcoholUse        *string `gorm:"column:alcohol_use;type:varchar(50)" json:"alcohol_use"`
	ExerciseFrequency *string `gorm:"column:exercise_frequency;type:varchar(100)" json:"exercise_frequency"`
	DietType          *string `gorm:"column:diet_type;type:varchar(100)" json:"diet_type"`
	Occupation        *string `gorm:"column:occupation;type:varchar(255)" json:"occupation"`
	StressLevel       *string `gorm:"column:stress_level;type:varchar(50)" json:"stress_level"`
}

func (Lifestyle) TableName() string { return "clinical.lifestyle" }

// Insurance is logically 0..1 per patient, first-wins on the read side.
type Insurance struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	InsuranceProvider *string    `gorm:"column:insurance_provider;type:varchar(255)" json:"insurance_provider"`
	PolicyNumber      *string    `gorm:"column:policy_number;type:varchar(100)" json:"policy_number"`
	CoverageType      *string    `gorm:"column:coverage_type;type:varchar(100)" json:"coverage_type"`
	CoverageDetails   *string    `gorm:"column:coverage_details;type:text" json:"coverage_details"`
	CopayAmount       *float64   `gorm:"column:copay_amount" json:"copay_amount"`
	ExpiryDate        *time.Time `gorm:"column:expiry_date;type:date" json:"expiry_date"`
}

func (Insurance) TableName() string { return "clinical.insurance" }
