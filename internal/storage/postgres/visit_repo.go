package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sehaty/sehaty/internal/domain/visit"
)

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

var _ visit.Repository = (*VisitRepository)(nil)

func orderClause(column string, order visit.SortOrder) (string, error) {
	switch order {
	case visit.SortNewestFirst:
		return column + " DESC", nil
	case visit.SortOldestFirst:
		return column + " ASC", nil
	default:
		return "", fmt.Errorf("%w: %q", visit.ErrInvalidSort, order)
	}
}

func listOrdered[T any](ctx context.Context, db *gorm.DB, nationalID, dateColumn string, order visit.SortOrder, limit int) ([]*T, error) {
	clause, err := orderClause(dateColumn, order)
	if err != nil {
		return nil, err
	}

	q := db.WithContext(ctx).
		Where("patient_national_id = ?", nationalID).
		Order(clause)
	if limit > 0 {
		q = q.Limit(limit)
	}

	var recs []*T
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *VisitRepository) CreateVisit(ctx context.Context, v *visit.Visit) error {
	return createRecord(ctx, r.db, v)
}

func (r *VisitRepository) VisitsByPatient(ctx context.Context, nationalID string, order visit.SortOrder, limit int) ([]*visit.Visit, error) {
	return listOrdered[visit.Visit](ctx, r.db, nationalID, "visit_date", order, limit)
}

func (r *VisitRepository) CreateLabResult(ctx context.Context, rec *visit.LabResult) error {
	return createRecord(ctx, r.db, rec)
}

func (r *VisitRepository) LabResultsByPatient(ctx context.Context, nationalID string, order visit.SortOrder, limit int) ([]*visit.LabResult, error) {
	return listOrdered[visit.LabResult](ctx, r.db, nationalID, "test_date", order, limit)
}

func (r *VisitRepository) CreateImagingResult(ctx context.Context, rec *visit.ImagingResult) error {
	return createRecord(ctx, r.db, rec)
}

func (r *VisitRepository) ImagingResultsByPatient(ctx context.Context, nationalID string, order visit.SortOrder, limit int) ([]*visit.ImagingResult, error) {
	return listOrdered[visit.ImagingResult](ctx, r.db, nationalID, "imaging_date", order, limit)
}
