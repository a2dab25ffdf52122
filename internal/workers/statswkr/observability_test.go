package statswkr

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/pkg/observability"
	"eag.dev/backend/internal/util/catalogstats"
)

func TestPublishGauges(t *testing.T) {
	publishGauges(&catalogstats.Stats{
		Total:   12,
		Pending: 3,
		Gaps:    []*catalogstats.Gap{{Tag: "Art"}, {Tag: "25+"}},
	})

	assert.Equal(t, 12.0, testutil.ToFloat64(observability.CatalogActivities.WithLabelValues(constant.StatusApproved)))
	assert.Equal(t, 3.0, testutil.ToFloat64(observability.CatalogActivities.WithLabelValues(constant.StatusPending)))
	assert.Equal(t, 2.0, testutil.ToFloat64(observability.CatalogGaps))
}

func TestObserveStatsDurationPassesErrorThrough(t *testing.T) {
	want := errors.New("boom")
	assert.Equal(t, want, observeStatsDuration(func() error { return want }))
}
