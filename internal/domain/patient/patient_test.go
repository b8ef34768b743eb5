package patient

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListPatientsQuery_NormalizeDefaults(t *testing.T) {
	q := &ListPatientsQuery{}
	q.Normalize()

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.PageSize)
	assert.Equal(t, "created_at", q.SortBy)
	assert.Equal(t, "desc", q.SortOrder)
}

func TestListPatientsQuery_NormalizeClampsPageSize(t *testing.T) {
	q := &ListPatientsQuery{PageSize: 5000}
	q.Normalize()
	assert.Equal(t, 20, q.PageSize)
}

func TestListPatientsQuery_NormalizeKeepsSortableColumns(t *testing.T) {
	for _, col := range []string{"created_at", "full_name", "date_of_birth", "national_id"} {
		q := &ListPatientsQuery{SortBy: col, SortOrder: "ASC"}
		q.Normalize()
		assert.Equal(t, col, q.SortBy)
		assert.Equal(t, "asc", q.SortOrder)
	}
}

// Both sort fields end up inside an ORDER BY clause, so anything that is not
// a known column or direction must come out of Normalize as a safe value.
func TestListPatientsQuery_NormalizeCoercesHostileSortInput(t *testing.T) {
	tests := []struct {
		name   string
		sortBy string
	}{
		{"subquery", "(SELECT pg_sleep(10)) ASC, created_at"},
		{"stacked statement", "created_at; DROP TABLE clinical.patients"},
		{"quoted", `full_name"`},
		{"unknown column", "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &ListPatientsQuery{SortBy: tt.sortBy, SortOrder: "asc; DROP TABLE clinical.patients"}
			q.Normalize()

			assert.Equal(t, "created_at", q.SortBy)
			assert.Equal(t, "desc", q.SortOrder)
		})
	}
}
