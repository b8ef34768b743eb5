package domain

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}

type AuditAction string

const (
	ActionCreate AuditAction = "create"
	ActionRead   AuditAction = "read"
	ActionUpdate AuditAction = "update"
	ActionDelete AuditAction = "delete"
	ActionExport AuditAction = "export"
)

// AccessLog records every read or write of a patient record. Retained for
// compliance review of who looked at whose data.
type AccessLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OccurredAt time.Time `gorm:"autoCreateTime;index" json:"occurred_at"`

	// Who
	Actor     string `gorm:"column:actor;type:varchar(100);index" json:"actor"`
	ActorRole Role   `gorm:"column:actor_role;type:varchar(30)" json:"actor_role"`
	IPAddress string `gorm:"column:ip_address;type:varchar(45)" json:"ip_address"` // Supports IPv6

	// What
	Action            AuditAction `gorm:"column:action;type:varchar(20);not null;index" json:"action"`
	PatientNationalID string      `gorm:"column:patient_national_id;type:varchar(14);index" json:"patient_national_id"`
	ResourceType      string      `gorm:"column:resource_type;type:varchar(50);not null" json:"resource_type"`
	ResourceID        string      `gorm:"column:resource_id;type:varchar(50)" json:"resource_id"`

	RequestID string `gorm:"column:request_id;type:varchar(50);index" json:"request_id"`
}

func (AccessLog) TableName() string {
	return "audit.access_logs"
}
