package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain"
)

// recordingAuditRepo persists entries in memory so tests can observe what the
// async worker wrote.
type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AccessLog
}

func (r *recordingAuditRepo) Create(_ context.Context, entry *domain.AccessLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry)
	return nil
}

func (r *recordingAuditRepo) ByPatient(_ context.Context, nationalID string, limit int) ([]*domain.AccessLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.AccessLog, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if r.entries[i].PatientNationalID == nationalID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *recordingAuditRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func TestAuditService_LogAsyncPersists(t *testing.T) {
	repo := &recordingAuditRepo{}
	svc := NewAuditService(repo, testCollector, zap.NewNop())

	svc.LogAsync(context.Background(), AuditEntry{
		Actor:             "dr.hassan",
		ActorRole:         "doctor",
		Action:            "read",
		PatientNationalID: "29501012345678",
		ResourceType:      "record",
	})
	svc.Shutdown()

	require.Equal(t, 1, repo.count())
	entry := repo.entries[0]
	assert.Equal(t, "dr.hassan", entry.Actor)
	assert.Equal(t, domain.RoleDoctor, entry.ActorRole)
	assert.Equal(t, domain.ActionRead, entry.Action)
}

func TestAuditService_RecentAccess(t *testing.T) {
	repo := &recordingAuditRepo{}
	svc := NewAuditService(repo, testCollector, zap.NewNop())
	t.Cleanup(svc.Shutdown)

	for _, nid := range []string{"29501012345678", "29999999999999", "29501012345678"} {
		require.NoError(t, repo.Create(context.Background(), &domain.AccessLog{
			PatientNationalID: nid,
			Action:            domain.ActionRead,
			OccurredAt:        time.Now(),
		}))
	}

	logs, err := svc.RecentAccess(context.Background(), "29501012345678", 50)
	require.NoError(t, err)
	assert.Len(t, logs, 2)
	for _, l := range logs {
		assert.Equal(t, "29501012345678", l.PatientNationalID)
	}
}
