package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sehaty/sehaty/pkg/metrics"
)

// Deps carries everything the router needs. HealthCheck should be cheap; it
// is called on every /healthz probe.
type Deps struct {
	Log         *zap.Logger
	Collector   *metrics.Collector
	ServiceName string
	HealthCheck func() error

	Patients *PatientHandler
	Snapshot *SnapshotHandler
	History  *HistoryHandler
	Visits   *VisitHandler
	Audit    *AuditHandler
}

func NewRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		Recovery(deps.Log),
		RequestID(),
		Tracing(deps.ServiceName),
		Metrics(deps.Collector),
		RequestLogger(deps.Log),
	)

	r.GET("/healthz", func(c *gin.Context) {
		if deps.HealthCheck != nil {
			if err := deps.HealthCheck(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	api := r.Group("/api/v1")
	patients := api.Group("/patients")

	patients.POST("", deps.Patients.Create)
	patients.GET("", deps.Patients.List)
	patients.GET("/:national_id", deps.Patients.Get)
	patients.PUT("/:national_id", deps.Patients.Update)
	patients.DELETE("/:national_id", deps.Patients.Deactivate)

	patients.GET("/:national_id/access-logs", deps.Audit.ListAccessLogs)

	patients.GET("/:national_id/record", deps.Snapshot.Record)
	patients.GET("/:national_id/record/export", deps.Snapshot.Export)
	patients.GET("/:national_id/emergency-card", deps.Snapshot.EmergencyCard)

	patients.POST("/:national_id/allergies", deps.History.AddAllergy)
	patients.DELETE("/:national_id/allergies/:id", deps.History.DeleteEntry("allergies"))
	patients.POST("/:national_id/chronic-diseases", deps.History.AddChronicDisease)
	patients.DELETE("/:national_id/chronic-diseases/:id", deps.History.DeleteEntry("chronic-diseases"))
	patients.POST("/:national_id/medications", deps.History.AddMedication)
	patients.DELETE("/:national_id/medications/:id", deps.History.DeleteEntry("medications"))
	patients.POST("/:national_id/surgeries", deps.History.AddSurgery)
	patients.DELETE("/:national_id/surgeries/:id", deps.History.DeleteEntry("surgeries"))
	patients.POST("/:national_id/hospitalizations", deps.History.AddHospitalization)
	patients.DELETE("/:national_id/hospitalizations/:id", deps.History.DeleteEntry("hospitalizations"))
	patients.POST("/:national_id/vaccinations", deps.History.AddVaccination)
	patients.DELETE("/:national_id/vaccinations/:id", deps.History.DeleteEntry("vaccinations"))
	patients.POST("/:national_id/family-history", deps.History.AddFamilyHistory)
	patients.DELETE("/:national_id/family-history/:id", deps.History.DeleteEntry("family-history"))
	patients.POST("/:national_id/disabilities", deps.History.AddDisability)
	patients.DELETE("/:national_id/disabilities/:id", deps.History.DeleteEntry("disabilities"))
	patients.POST("/:national_id/emergency-directives", deps.History.AddEmergencyDirective)
	patients.DELETE("/:national_id/emergency-directives/:id", deps.History.DeleteEntry("emergency-directives"))
	patients.POST("/:national_id/lifestyle", deps.History.AddLifestyle)
	patients.DELETE("/:national_id/lifestyle/:id", deps.History.DeleteEntry("lifestyle"))
	patients.POST("/:national_id/insurance", deps.History.AddInsurance)
	patients.DELETE("/:national_id/insurance/:id", deps.History.DeleteEntry("insurance"))

	patients.POST("/:national_id/visits", deps.Visits.AddVisit)
	patients.GET("/:national_id/visits", deps.Visits.ListVisits)
	patients.POST("/:national_id/lab-results", deps.Visits.AddLabResult)
	patients.GET("/:national_id/lab-results", deps.Visits.ListLabResults)
	patients.POST("/:national_id/imaging-results", deps.Visits.AddImagingResult)
	patients.GET("/:national_id/imaging-results", deps.Visits.ListImagingResults)

	return r
}
