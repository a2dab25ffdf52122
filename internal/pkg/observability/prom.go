package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ServiceName = "eag"
)

var (
	CatalogSearches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "catalog", "searches_total"),
		Help: "Catalog searches by whether they returned any activity",
	}, []string{"result"})
	CatalogSearchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "catalog", "search_duration_seconds"),
		Help:    "Duration of catalog searches in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	})
	PopularityPublishFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "popularity", "publish_failures_total"),
		Help: "Popularity increments that could not be published",
	})
	PopularityConsumeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "popularity", "consume_duration_seconds"),
		Help:    "Duration of popularity increment consumption in seconds",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10),
	})
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "submission", "total"),
		Help: "Accepted submissions by initial status",
	}, []string{"status"})
	ModerationActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "moderation", "actions_total"),
		Help: "Moderation actions by kind",
	}, []string{"action"})
	SessionChanges = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "session", "changes_total"),
		Help: "Session sign-ins and sign-outs",
	}, []string{"kind"})
	CatalogActivities = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "catalog", "activities"),
		Help: "Activities in the catalog by status, as of the last stats run",
	}, []string{"status"})
	CatalogGaps = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "catalog", "gaps"),
		Help: "Facet values under the gap threshold, as of the last stats run",
	})
	WorkerStatsDuration = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "worker", "stats_duration_seconds"),
		Help: "Duration of the last stats worker run in seconds",
	})
)
