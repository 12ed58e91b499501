package stream

import (
	"context"
	"log/slog"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/gyaneshwarpardhi/banksynth/internal/config"
	"github.com/gyaneshwarpardhi/banksynth/internal/record"
)

// Publisher delivers one generated event; satisfied by sink.Kafka.
type Publisher interface {
	Publish(ctx context.Context, rec record.Record) error
	Close()
}

// Streamer publishes synthetic events at a fixed rate until its context ends.
// The active profile can be swapped at any time (hot-reload); the publish
// rate is fixed for the lifetime of the run.
type Streamer struct {
	profile atomic.Pointer[config.Profile]
	pub     Publisher
	rng     *rand.Rand
	rate    int
}

// New creates a Streamer publishing rate events per second.
func New(prof *config.Profile, pub Publisher, rng *rand.Rand, rate int) *Streamer {
	s := &Streamer{pub: pub, rng: rng, rate: rate}
	s.profile.Store(prof)
	return s
}

// SwapProfile atomically replaces the active profile.
func (s *Streamer) SwapProfile(p *config.Profile) {
	s.profile.Store(p)
}

// Profile returns the currently active profile.
func (s *Streamer) Profile() *config.Profile {
	return s.profile.Load()
}

// Run blocks, generating events for the current UTC day at the configured
// rate, until ctx is cancelled. Publish failures are logged and skipped.
func (s *Streamer) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(s.rate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			prof := s.profile.Load()
			sources := prof.EnabledSources()
			src := sources[s.rng.Intn(len(sources))]
			day := time.Now().UTC().Truncate(24 * time.Hour)
			rec := record.ForSource(src)(s.rng, prof.RecordVocab(), day)
			if err := s.pub.Publish(ctx, rec); err != nil {
				slog.Warn("publish failed", "source", src, "err", err)
			}
		}
	}
}
