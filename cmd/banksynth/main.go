package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/gyaneshwarpardhi/banksynth/internal/config"
	"github.com/gyaneshwarpardhi/banksynth/internal/driver"
	"github.com/gyaneshwarpardhi/banksynth/internal/sink"
	"github.com/gyaneshwarpardhi/banksynth/internal/stream"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	envDefaults, err := config.FromEnv()
	if err != nil {
		slog.Error("failed to read environment", "err", err)
		os.Exit(1)
	}

	out := flag.String("out", envDefaults.Out, "Output root folder")
	day := flag.String("day", time.Now().UTC().Format("2006-01-02"), "End day (YYYY-MM-DD, UTC)")
	days := flag.Int("days", 1, "Number of days back, including -day")
	totalEvents := flag.Int("total-events", 60000, "Total events per day across all sources")
	eventsPerFile := flag.Int("events-per-file", 60000, "Max events per output file")
	profilePath := flag.String("profile", envDefaults.Profile, "Path to generation profile YAML (optional)")
	seed := flag.Int64("seed", 0, "Random seed override (0 = profile seed)")
	streamMode := flag.Bool("stream", false, "Publish events continuously to Kafka instead of writing files")
	rate := flag.Int("rate", 0, "Stream mode: events per second (0 = profile value)")
	metricsAddr := flag.String("metrics-addr", envDefaults.MetricsAddr, "Stream mode: status/metrics listen address")
	kafkaBrokers := flag.String("kafka-brokers", strings.Join(envDefaults.KafkaBrokers, ","), "Stream mode: comma-separated Kafka broker list")
	kafkaTopic := flag.String("kafka-topic", envDefaults.KafkaTopic, "Stream mode: Kafka topic")
	flag.Parse()

	// ── Load profile ──────────────────────────────────────────────────────────
	var loader *config.Loader
	var prof *config.Profile
	if *profilePath != "" {
		loader, err = config.NewLoader(*profilePath)
		if err != nil {
			slog.Error("failed to load profile", "err", err)
			os.Exit(1)
		}
		prof = loader.Config()
	} else {
		prof = config.Default()
	}

	// Flags override the profile.
	if *seed != 0 {
		prof.Seed = *seed
	}
	if *rate > 0 {
		prof.Stream.RatePerSec = *rate
	}
	if *metricsAddr != "" {
		prof.Stream.MetricsAddr = *metricsAddr
	}
	if *kafkaBrokers != "" {
		prof.Kafka.Brokers = strings.Split(*kafkaBrokers, ",")
	}
	if *kafkaTopic != "" {
		prof.Kafka.Topic = *kafkaTopic
	}

	if err := config.Validate(prof); err != nil {
		slog.Error("profile validation failed", "err", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(prof.Seed))

	if *streamMode {
		if err := runStream(loader, prof, rng); err != nil {
			slog.Error("stream failed", "err", err)
			os.Exit(1)
		}
		return
	}

	stats, err := driver.Run(driver.Options{
		Out:           *out,
		EndDay:        *day,
		Days:          *days,
		TotalEvents:   *totalEvents,
		EventsPerFile: *eventsPerFile,
	}, prof, rng)
	if err != nil {
		slog.Error("generation failed", "err", err)
		os.Exit(1)
	}
	slog.Info("generation complete", "days", stats.Days, "events", stats.Events, "files", stats.Files)
}

func runStream(loader *config.Loader, prof *config.Profile, rng *rand.Rand) error {
	if len(prof.Kafka.Brokers) == 0 {
		return fmt.Errorf("stream mode requires kafka brokers (-kafka-brokers or BANKSYNTH_KAFKA_BROKERS)")
	}
	pub, err := sink.NewKafka(prof.Kafka.Brokers, prof.Kafka.Topic)
	if err != nil {
		return err
	}
	defer pub.Close()

	streamer := stream.New(prof, pub, rng, prof.Stream.RatePerSec)

	// ── Hot-reload watcher ────────────────────────────────────────────────────
	if loader != nil {
		loader.OnChange(func(p *config.Profile) {
			if err := config.Validate(p); err != nil {
				slog.Warn("hot-reload skipped: profile invalid", "err", err)
				return
			}
			streamer.SwapProfile(p)
			slog.Info("profile hot-reloaded", "sources", len(p.Sources))
		})
		stopWatch, err := loader.Watch()
		if err != nil {
			slog.Warn("profile watcher unavailable (hot-reload disabled)", "err", err)
		} else {
			defer stopWatch()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:         prof.Stream.MetricsAddr,
		Handler:      stream.NewServer(streamer),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("status server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		slog.Info("stream starting", "rate", prof.Stream.RatePerSec, "topic", prof.Kafka.Topic)
		return streamer.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	err = g.Wait()
	slog.Info("stream stopped")
	return err
}
