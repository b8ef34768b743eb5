package visit

import "context"

// SortOrder is an explicit caller choice. Storage applies no default
// chronology of its own.
type SortOrder string

const (
	SortNewestFirst SortOrder = "newest_first"
	SortOldestFirst SortOrder = "oldest_first"
)

func (s SortOrder) IsValid() bool {
	return s == SortNewestFirst || s == SortOldestFirst
}

type Repository interface {
	CreateVisit(ctx context.Context, v *Visit) error
	// VisitsByPatient returns up to limit visits ordered by visit date.
	// limit <= 0 means no limit.
	VisitsByPatient(ctx context.Context, nationalID string, order SortOrder, limit int) ([]*Visit, error)

	CreateLabResult(ctx context.Context, r *LabResult) error
	LabResultsByPatient(ctx context.Context, nationalID string, order SortOrder, limit int) ([]*LabResult, error)

	CreateImagingResult(ctx context.Context, r *ImagingResult) error
	ImagingResultsByPatient(ctx context.Context, nationalID string, order SortOrder, limit int) ([]*ImagingResult, error)
}
