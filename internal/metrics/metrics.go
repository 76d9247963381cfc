// Package metrics exposes Prometheus metrics for the catalog. Counts of
// stored rows are read live from the database at scrape time through a
// custom collector, so the gauges never drift from the store.
package metrics

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"rideboard/internal/db"
)

var (
	submissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rideboard_submissions_total",
			Help: "Public submissions accepted, by kind (event or suggestion).",
		},
		[]string{"kind"},
	)

	moderationDecisionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rideboard_moderation_decisions_total",
			Help: "Moderation decisions taken, by entity and action.",
		},
		[]string{"entity", "action"},
	)

	initOnce sync.Once
)

// Init registers all collectors. Safe to call more than once; only the
// first call registers.
func Init(database *db.DB) {
	initOnce.Do(func() {
		prometheus.MustRegister(submissionsTotal)
		prometheus.MustRegister(moderationDecisionsTotal)
		prometheus.MustRegister(newCatalogCollector(database))
	})
}

// RecordSubmission increments the public submission counter for a kind.
func RecordSubmission(kind string) {
	submissionsTotal.WithLabelValues(kind).Inc()
}

// RecordModerationDecision increments the moderation counter for an
// entity ("event" or "suggestion") and action ("approved" or "rejected").
func RecordModerationDecision(entity, action string) {
	moderationDecisionsTotal.WithLabelValues(entity, action).Inc()
}

// catalogCollector reports row counts from the database on every scrape.
type catalogCollector struct {
	db *db.DB

	eventsDesc             *prometheus.Desc
	pendingSuggestionsDesc *prometheus.Desc
}

func newCatalogCollector(database *db.DB) *catalogCollector {
	return &catalogCollector{
		db: database,
		eventsDesc: prometheus.NewDesc(
			"rideboard_events",
			"Number of events in the catalog, by status.",
			[]string{"status"},
			nil,
		),
		pendingSuggestionsDesc: prometheus.NewDesc(
			"rideboard_pending_suggestions",
			"Number of video suggestions awaiting review.",
			nil,
			nil,
		),
	}
}

func (c *catalogCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.eventsDesc
	ch <- c.pendingSuggestionsDesc
}

func (c *catalogCollector) Collect(ch chan<- prometheus.Metric) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	counts, err := c.db.CountEventsByStatus(ctx)
	if err != nil {
		slog.Error("metrics: counting events failed", "error", err)
	} else {
		for status, n := range counts {
			ch <- prometheus.MustNewConstMetric(
				c.eventsDesc, prometheus.GaugeValue, float64(n), status,
			)
		}
	}

	pending, err := c.db.CountPendingSuggestions(ctx)
	if err != nil {
		slog.Error("metrics: counting pending suggestions failed", "error", err)
		return
	}
	ch <- prometheus.MustNewConstMetric(
		c.pendingSuggestionsDesc, prometheus.GaugeValue, float64(pending),
	)
}
