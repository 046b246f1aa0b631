package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LifecycleOperations counts portfolio mutations by operation and outcome
	LifecycleOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lendtrack_lifecycle_operations_total",
			Help: "Total portfolio lifecycle operations",
		},
		[]string{"operation", "status"},
	)

	// SnapshotSaveFailures counts best-effort persistence failures
	SnapshotSaveFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lendtrack_snapshot_save_failures_total",
			Help: "Portfolio snapshot saves that failed and were absorbed",
		},
	)
)
