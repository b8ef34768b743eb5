package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain"
	"github.com/sehaty/sehaty/pkg/metrics"
)

type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AccessLog) error
	ByPatient(ctx context.Context, nationalID string, limit int) ([]*domain.AccessLog, error)
}

// AuditService persists patient-record access logs off the request path.
type AuditService struct {
	repo      AuditRepository
	log       *zap.Logger
	collector *metrics.Collector
	entries   chan *domain.AccessLog
	done      chan struct{}
}

const auditBufferSize = 10_000

func NewAuditService(repo AuditRepository, collector *metrics.Collector, log *zap.Logger) *AuditService {
	svc := &AuditService{
		repo:      repo,
		log:       log,
		collector: collector,
		entries:   make(chan *domain.AccessLog, auditBufferSize),
		done:      make(chan struct{}),
	}
	go svc.worker()
	return svc
}

// LogAsync enqueues an audit entry for async persistence.
// If the buffer is full, the entry is dropped and a warning is emitted.
func (s *AuditService) LogAsync(ctx context.Context, entry AuditEntry) {
	al := &domain.AccessLog{
		Actor:             entry.Actor,
		ActorRole:         domain.Role(entry.ActorRole),
		Action:            domain.AuditAction(entry.Action),
		PatientNationalID: entry.PatientNationalID,
		ResourceType:      entry.ResourceType,
		ResourceID:        entry.ResourceID,
		IPAddress:         entry.IPAddress,
		RequestID:         entry.RequestID,
	}

	select {
	case s.entries <- al:
	default:
		s.collector.AuditBufferDropped.Inc()
		s.log.Warn("audit log buffer full, dropping entry",
			zap.String("action", entry.Action),
			zap.String("resource", entry.ResourceType),
		)
	}
}

// RecentAccess returns who touched one patient's record, newest first. Reads
// go straight to storage; entries still sitting in the async buffer are not
// visible yet.
func (s *AuditService) RecentAccess(ctx context.Context, nationalID string, limit int) ([]*domain.AccessLog, error) {
	return s.repo.ByPatient(ctx, nationalID, limit)
}

func (s *AuditService) Shutdown() {
	close(s.entries)
	select {
	case <-s.done:
	case <-time.After(10 * time.Second):
		s.log.Warn("audit service shutdown timed out; some entries may be lost")
	}
}

func (s *AuditService) worker() {
	defer close(s.done)
	for entry := range s.entries {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.repo.Create(ctx, entry); err != nil {
			s.log.Error("failed to persist access log", zap.Error(err))
		} else {
			s.collector.AuditEntriesTotal.Inc()
		}
		cancel()
	}
}
