package stream_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/gyaneshwarpardhi/banksynth/internal/config"
	"github.com/gyaneshwarpardhi/banksynth/internal/record"
	"github.com/gyaneshwarpardhi/banksynth/internal/stream"
)

type capturePublisher struct {
	mu   sync.Mutex
	recs []record.Record
}

func (c *capturePublisher) Publish(_ context.Context, rec record.Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.recs = append(c.recs, rec)
	return nil
}

func (c *capturePublisher) Close() {}

func (c *capturePublisher) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.recs)
}

func TestRun_PublishesFromEnabledSources(t *testing.T) {
	prof := config.Default()
	prof.Sources = []string{"payments", "support"}

	pub := &capturePublisher{}
	s := stream.New(prof, pub, rand.New(rand.NewSource(1)), 1000)

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if pub.count() < 10 {
		t.Fatalf("expected at least 10 events at 1000/s over 300ms, got %d", pub.count())
	}
	for _, rec := range pub.recs {
		src := rec.Common().SourceSystem
		if src != record.Payments && src != record.Support {
			t.Errorf("event from disabled source %q", src)
		}
	}
}

func TestSwapProfile_TakesEffect(t *testing.T) {
	prof := config.Default()
	prof.Sources = []string{"payments"}

	pub := &capturePublisher{}
	s := stream.New(prof, pub, rand.New(rand.NewSource(1)), 1000)

	replacement := config.Default()
	replacement.Sources = []string{"erp"}
	s.SwapProfile(replacement)

	if got := s.Profile().Sources[0]; got != "erp" {
		t.Fatalf("active profile source = %q", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	if err := s.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, rec := range pub.recs {
		if rec.Common().SourceSystem != record.ERP {
			t.Errorf("event from %q after swap to erp", rec.Common().SourceSystem)
		}
	}
}
