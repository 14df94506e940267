package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestExplorationsCompleted_LabelsByReason(t *testing.T) {
	ExplorationsCompleted.Reset()
	ExplorationsCompleted.WithLabelValues("complete").Inc()
	ExplorationsCompleted.WithLabelValues("complete").Inc()
	ExplorationsCompleted.WithLabelValues("seed_not_found").Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(ExplorationsCompleted.WithLabelValues("complete")))
	assert.Equal(t, float64(1), testutil.ToFloat64(ExplorationsCompleted.WithLabelValues("seed_not_found")))
}

func TestActiveExplorations_IncDec(t *testing.T) {
	ActiveExplorations.Set(0)
	ActiveExplorations.Inc()
	ActiveExplorations.Inc()
	ActiveExplorations.Dec()

	assert.Equal(t, float64(1), testutil.ToFloat64(ActiveExplorations))
}
