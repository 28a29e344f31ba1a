package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "overtime_backend"

var (
	importRows = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "import",
		Name:      "rows_total",
		Help:      "Import rows by kind (checkins, employees) and outcome (written, skipped, failed).",
	}, []string{"kind", "outcome"})
	importFailedChunks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "import",
		Name:      "failed_chunks_total",
		Help:      "Chunks whose write failed without aborting the batch.",
	}, []string{"kind"})
	importBusyAborts = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "import",
		Name:      "busy_aborts_total",
		Help:      "Batches aborted because storage capacity was exhausted.",
	}, []string{"kind"})
	detectedRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "detected_records_total",
		Help:      "Overtime records produced by the rule engine, by rule.",
	}, []string{"rule"})
	reportDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "report",
		Name:      "generation_duration_seconds",
		Help:      "Time spent building a monthly overtime report.",
		Buckets:   prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(importRows, importFailedChunks, importBusyAborts, detectedRecords, reportDuration)
}

// RecordImportRows adds n rows with the given outcome.
func RecordImportRows(kind, outcome string, n int) {
	if n <= 0 {
		return
	}
	importRows.WithLabelValues(kind, outcome).Add(float64(n))
}

func RecordFailedChunk(kind string) {
	importFailedChunks.WithLabelValues(kind).Inc()
}

func RecordBusyAbort(kind string) {
	importBusyAborts.WithLabelValues(kind).Inc()
}

func RecordDetected(rule string) {
	detectedRecords.WithLabelValues(rule).Inc()
}

// ObserveReportDuration records the elapsed time since start.
func ObserveReportDuration(start time.Time) {
	reportDuration.Observe(time.Since(start).Seconds())
}
