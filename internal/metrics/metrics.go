package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "banksynth_events_generated_total",
		Help: "Total number of synthetic events generated, labelled by source system.",
	}, []string{"source"})

	FilesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "banksynth_files_written_total",
		Help: "Total number of partition files written.",
	})

	BytesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "banksynth_bytes_written_total",
		Help: "Total bytes of newline-delimited JSON written to partition files.",
	})

	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "banksynth_events_published_total",
		Help: "Total number of events published to Kafka in stream mode, labelled by status.",
	}, []string{"status"})

	PartitionWriteDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "banksynth_partition_write_duration_seconds",
		Help:    "Wall time spent writing one (day, source) partition.",
		Buckets: prometheus.DefBuckets,
	})
)
