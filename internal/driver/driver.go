package driver

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gyaneshwarpardhi/banksynth/internal/config"
	"github.com/gyaneshwarpardhi/banksynth/internal/record"
	"github.com/gyaneshwarpardhi/banksynth/internal/sink"
)

// Options configures one batch generation run.
type Options struct {
	Out           string
	EndDay        string // YYYY-MM-DD, UTC
	Days          int    // days back, inclusive of EndDay
	TotalEvents   int    // per day, across all sources
	EventsPerFile int
}

// Stats summarizes a completed run.
type Stats struct {
	Days   int
	Events int
	Files  int
}

// SplitEvents divides total across n sources, giving the remainder to the
// first total%n sources. The shares always sum to total exactly.
func SplitEvents(total, n int) []int {
	shares := make([]int, n)
	per, rem := total/n, total%n
	for i := range shares {
		shares[i] = per
		if i < rem {
			shares[i]++
		}
	}
	return shares
}

// Run generates partitions for every requested (day, source) pair, walking
// backwards from the end day. The run is sequential; the first error aborts.
func Run(opts Options, prof *config.Profile, rng *rand.Rand) (Stats, error) {
	end, err := time.ParseInLocation("2006-01-02", opts.EndDay, time.UTC)
	if err != nil {
		return Stats{}, fmt.Errorf("parse day %q: %w", opts.EndDay, err)
	}
	if opts.Days < 1 {
		return Stats{}, fmt.Errorf("days must be at least 1, got %d", opts.Days)
	}

	sources := prof.EnabledSources()
	vocab := prof.RecordVocab()
	w := &sink.Writer{Root: opts.Out, EventsPerFile: opts.EventsPerFile}

	var stats Stats
	for d := 0; d < opts.Days; d++ {
		day := end.AddDate(0, 0, -d)
		dayStr := day.Format("2006-01-02")
		shares := SplitEvents(opts.TotalEvents, len(sources))
		for i, src := range sources {
			factory := record.ForSource(src)
			files, err := w.WritePartition(dayStr, src, shares[i], func() record.Record {
				return factory(rng, vocab, day)
			})
			if err != nil {
				return stats, fmt.Errorf("write partition day=%s source=%s: %w", dayStr, src, err)
			}
			stats.Files += files
			stats.Events += shares[i]
		}
		stats.Days++
		slog.Info("day complete", "day", dayStr, "events", opts.TotalEvents, "out", opts.Out)
	}
	return stats, nil
}
