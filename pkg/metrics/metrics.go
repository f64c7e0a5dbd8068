package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ApplicationsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mosala_applications_submitted_total",
		Help: "Need applications created with status PENDING.",
	})

	ApplicationsReviewed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mosala_applications_reviewed_total",
		Help: "Review decisions committed, by decision.",
	}, []string{"decision"})

	ProjectsArchived = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mosala_projects_archived_total",
		Help: "Projects auto-archived by the closure rule.",
	})

	DecisionEmails = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mosala_decision_emails_total",
		Help: "Decision email dispatch outcomes (sent, skipped, failed).",
	}, []string{"outcome"})

	EquityAnomalies = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mosala_equity_anomalous_projects",
		Help: "Projects whose equity allocation currently exceeds 100%.",
	})
)
