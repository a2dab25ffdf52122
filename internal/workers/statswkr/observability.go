package statswkr

import (
	"time"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/pkg/observability"
	"eag.dev/backend/internal/util/catalogstats"
)

func observeStatsDuration(f func() error) error {
	start := time.Now()
	defer func() {
		observability.WorkerStatsDuration.Set(time.Since(start).Seconds())
	}()
	return f()
}

func publishGauges(stats *catalogstats.Stats) {
	observability.CatalogActivities.WithLabelValues(constant.StatusApproved).Set(float64(stats.Total))
	observability.CatalogActivities.WithLabelValues(constant.StatusPending).Set(float64(stats.Pending))
	observability.CatalogGaps.Set(float64(len(stats.Gaps)))
}
