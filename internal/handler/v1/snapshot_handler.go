package v1

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sehaty/sehaty/internal/domain/patient"
	"github.com/sehaty/sehaty/internal/export"
	"github.com/sehaty/sehaty/internal/service"
	"github.com/sehaty/sehaty/internal/snapshot"
	"github.com/sehaty/sehaty/pkg/metrics"
)

// SnapshotHandler serves the aggregated patient record and its export views.
// Aggregation runs under its own deadline so a slow backend cannot hold a
// request open indefinitely.
type SnapshotHandler struct {
	aggregator *snapshot.Aggregator
	auditSvc   *service.AuditService
	collector  *metrics.Collector
	timeout    time.Duration
	log        *zap.Logger
}

func NewSnapshotHandler(aggregator *snapshot.Aggregator, auditSvc *service.AuditService, collector *metrics.Collector, timeout time.Duration, log *zap.Logger) *SnapshotHandler {
	return &SnapshotHandler{
		aggregator: aggregator,
		auditSvc:   auditSvc,
		collector:  collector,
		timeout:    timeout,
		log:        log,
	}
}

func (h *SnapshotHandler) load(c *gin.Context, action string) (*snapshot.PatientSnapshot, bool) {
	nationalID := c.Param("national_id")

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	start := time.Now()
	h.collector.SnapshotLoadsTotal.Inc()

	snap, err := h.aggregator.Load(ctx, nationalID)
	if err != nil {
		if errors.Is(err, patient.ErrPatientNotFound) {
			h.collector.SnapshotLoadFailures.WithLabelValues("not_found").Inc()
		} else {
			h.collector.SnapshotLoadFailures.WithLabelValues("storage").Inc()
			h.log.Error("record aggregation failed",
				zap.String("national_id", nationalID),
				zap.Error(err),
			)
		}
		respondServiceError(c, err)
		return nil, false
	}
	h.collector.SnapshotLoadDuration.Observe(time.Since(start).Seconds())

	audit := auditFrom(c)
	audit.Action = action
	audit.PatientNationalID = nationalID
	audit.ResourceType = "record"
	h.auditSvc.LogAsync(c.Request.Context(), audit)

	return snap, true
}

// Record returns the full aggregated record with dates already rendered as
// ISO-8601 strings.
func (h *SnapshotHandler) Record(c *gin.Context) {
	snap, ok := h.load(c, "read")
	if !ok {
		return
	}
	respondOK(c, export.ISO8601(snap))
}

// Export streams the record as a standalone JSON document suitable for
// download or transfer to another provider.
func (h *SnapshotHandler) Export(c *gin.Context) {
	snap, ok := h.load(c, "export")
	if !ok {
		return
	}

	out, err := export.JSON(snap)
	if err != nil {
		h.log.Error("snapshot export failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal server error")
		return
	}

	h.collector.SnapshotExportsTotal.WithLabelValues("json").Inc()
	c.Header("Content-Disposition", `attachment; filename="patient-record-`+c.Param("national_id")+`.json"`)
	c.Data(http.StatusOK, "application/json", out)
}

// EmergencyCard returns the first-responder view of the record.
func (h *SnapshotHandler) EmergencyCard(c *gin.Context) {
	snap, ok := h.load(c, "export")
	if !ok {
		return
	}

	h.collector.SnapshotExportsTotal.WithLabelValues("emergency_card").Inc()
	respondOK(c, export.NewEmergencyCard(snap))
}
