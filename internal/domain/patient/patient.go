package patient

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale    Gender = "Male"
	GenderFemale  Gender = "Female"
	GenderUnknown Gender = "Unknown"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnknown:
		return true
	}
	return false
}

func (g Gender) String() string { return string(g) }

type BloodType string

const (
	BloodTypeAPos    BloodType = "A+"
	BloodTypeANeg    BloodType = "A-"
	BloodTypeBPos    BloodType = "B+"
	BloodTypeBNeg    BloodType = "B-"
	BloodTypeABPos   BloodType = "AB+"
	BloodTypeABNeg   BloodType = "AB-"
	BloodTypeOPos    BloodType = "O+"
	BloodTypeONeg    BloodType = "O-"
	BloodTypeUnknown BloodType = "Unknown"
)

func (b BloodType) IsValid() bool {
	switch b {
	case BloodTypeAPos, BloodTypeANeg, BloodTypeBPos, BloodTypeBNeg,
		BloodTypeABPos, BloodTypeABNeg, BloodTypeOPos, BloodTypeONeg,
		BloodTypeUnknown:
		return true
	}
	return false
}

func (b BloodType) String() string { return string(b) }

// Patient is the core identity record. Every other clinical entity refers to
// it through the 14-digit national ID, never through the surrogate key.
type Patient struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt *time.Time `gorm:"index" json:"-"` // Soft Delete

	NationalID  string    `gorm:"column:national_id;type:varchar(14);uniqueIndex;not null" json:"national_id"`
	FullName    string    `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	DateOfBirth time.Time `gorm:"column:date_of_birth;type:date;not null" json:"date_of_birth"`
	Gender      Gender    `gorm:"column:gender;type:varchar(10);not null" json:"gender"`
	BloodType   BloodType `gorm:"column:blood_type;type:varchar(10)" json:"blood_type"`

	Phone            *string `gorm:"column:phone;type:varchar(20)" json:"phone"`
	Email            *string `gorm:"column:email;type:varchar(255)" json:"email"`
	Address          *string `gorm:"column:address;type:text" json:"address"`
	City             *string `gorm:"column:city;type:varchar(100)" json:"city"`
	Governorate      *string `gorm:"column:governorate;type:varchar(100)" json:"governorate"`
	EmergencyContact *string `gorm:"column:emergency_contact;type:varchar(255)" json:"emergency_contact"`
}

func (Patient) TableName() string {
	return "clinical.patients"
}

func (p *Patient) Age() int {
	now := time.Now()
	years := now.Year() - p.DateOfBirth.Year()
	if now.Month() < p.DateOfBirth.Month() ||
		(now.Month() == p.DateOfBirth.Month() && now.Day() < p.DateOfBirth.Day()) {
		years--
	}
	return years
}

type CreatePatientCommand struct {
	NationalID       string
	FullName         string
	DateOfBirth      time.Time
	Gender           Gender
	BloodType        BloodType
	Phone            *string
	Email            *string
	Address          *string
	City             *string
	Governorate      *string
	EmergencyContact *string
}

type UpdatePatientCommand struct {
	FullName         *string
	Gender           *Gender
	BloodType        *BloodType
	Phone            *string
	Email            *string
	Address          *string
	City             *string
	Governorate      *string
	EmergencyContact *string
}

// ListPatientsQuery defines filtering and pagination for patient list queries.
type ListPatientsQuery struct {
	Search    string // substring match on full name or national ID
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string // "asc" | "desc"
}

// sortableColumns is the closed set of columns a caller may sort by. SortBy
// ends up interpolated into an ORDER BY clause, so anything outside this set
// is coerced, never passed through.
var sortableColumns = map[string]bool{
	"created_at":    true,
	"full_name":     true,
	"date_of_birth": true,
	"national_id":   true,
}

func (q *ListPatientsQuery) Normalize() {
	if q.PageSize <= 0 || q.PageSize > 100 {
		q.PageSize = 20
	}
	if q.Page <= 0 {
		q.Page = 1
	}
	if !sortableColumns[q.SortBy] {
		q.SortBy = "created_at"
	}
	if strings.ToLower(q.SortOrder) == "asc" {
		q.SortOrder = "asc"
	} else {
		q.SortOrder = "desc"
	}
}

type PagedPatients struct {
	Patients   []*Patient
	TotalCount int64
	Page       int
	PageSize   int
	TotalPages int
}
