package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sehaty/sehaty/internal/domain"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, entry *domain.AccessLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("inserting access log: %w", err)
	}
	return nil
}

// ByPatient returns the most recent access entries for one patient record.
func (r *AuditRepository) ByPatient(ctx context.Context, nationalID string, limit int) ([]*domain.AccessLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []*domain.AccessLog
	err := r.db.WithContext(ctx).
		Where("patient_national_id = ?", nationalID).
		Order("occurred_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("listing access logs: %w", err)
	}
	return logs, nil
}
