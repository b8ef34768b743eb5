// Package visit holds the encounter-style entities: clinic visits, lab
// results, and imaging results. Unlike the history collections these are
// list-oriented and time-ordered, so their queries take an explicit sort
// order and limit.
package visit

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is one medication line written during a visit.
type Prescription struct {
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Duration       string `json:"duration"`
	Instructions   string `json:"instructions"`
}

type Visit struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	VisitDate      time.Time      `gorm:"column:visit_date;not null;index" json:"visit_date"`
	VisitType      *string        `gorm:"column:visit_type;type:varchar(100)" json:"visit_type"`
	ChiefComplaint *string        `gorm:"column:chief_complaint;type:text" json:"chief_complaint"`
	Diagnosis      *string        `gorm:"column:diagnosis;type:text" json:"diagnosis"`
	TreatmentPlan  *string        `gorm:"column:treatment_plan;type:text" json:"treatment_plan"`
	DoctorName     *string        `gorm:"column:doctor_name;type:varchar(255)" json:"doctor_name"`
	Prescriptions  []Prescription `gorm:"column:prescriptions;serializer:json" json:"prescriptions"`
	Notes          *string        `gorm:"column:notes;type:text" json:"notes"`
}

func (Visit) TableName() string { return "clinical.visits" }

type LabResult struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	TestName       string    `gorm:"column:test_name;type:varchar(255);not null" json:"test_name"`
	TestDate       time.Time `gorm:"column:test_date;type:date;not null;index" json:"test_date"`
	ResultValue    *string   `gorm:"column:result_value;type:varchar(255)" json:"result_value"`
	Unit           *string   `gorm:"column:unit;type:varchar(50)" json:"unit"`
	ReferenceRange *string   `gorm:"column:reference_range;type:varchar(100)" json:"reference_range"`
	Status         *string   `gorm:"column:status;type:varchar(50)" json:"status"`
	LabName        *string   `gorm:"column:lab_name;type:varchar(255)" json:"lab_name"`
}

func (LabResult) TableName() string { return "clinical.lab_results" }

type ImagingResult struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	PatientNationalID string `gorm:"column:patient_national_id;type:varchar(14);not null;index" json:"patient_national_id"`

	ImagingType string    `gorm:"column:imaging_type;type:varchar(100);not null" json:"imaging_type"`
	BodyPart    *string   `gorm:"column:body_part;type:varchar(100)" json:"body_part"`
	ImagingDate time.Time `gorm:"column:imaging_date;type:date;not null;index" json:"imaging_date"`
	Findings    *string   `gorm:"column:findings;type:text" json:"findings"`
	Impression  *string   `gorm:"column:impression;type:text" json:"impression"`
	Facility    *string   `gorm:"column:facility;type:varchar(255)" json:"facility"`
}

func (ImagingResult) TableName() string { return "clinical.imaging_results" }
