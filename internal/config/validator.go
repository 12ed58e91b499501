package config

import (
	"fmt"
	"strings"

	"github.com/gyaneshwarpardhi/banksynth/internal/record"
)

// Validate checks the profile for:
//   - Unknown or duplicate source names
//   - Empty vocabulary pools (after defaulting)
//   - Nonsensical stream tunables
func Validate(p *Profile) error {
	var errs []string

	if p.Version == "" {
		errs = append(errs, "version is required")
	}

	seen := make(map[string]bool)
	for i, s := range p.Sources {
		if !record.Known(record.Source(s)) {
			errs = append(errs, fmt.Sprintf("sources[%d]: unknown source %q", i, s))
			continue
		}
		if seen[s] {
			errs = append(errs, fmt.Sprintf("sources[%d]: duplicate source %q", i, s))
		}
		seen[s] = true
	}
	if len(p.Sources) == 0 {
		errs = append(errs, "sources must not be empty")
	}

	v := p.RecordVocab()
	if len(v.Currencies) == 0 {
		errs = append(errs, "vocab: currencies must not be empty")
	}
	if len(v.Countries) == 0 {
		errs = append(errs, "vocab: countries must not be empty")
	}
	if len(v.Merchants) == 0 {
		errs = append(errs, "vocab: merchants must not be empty")
	}

	if p.Stream.RatePerSec <= 0 {
		errs = append(errs, fmt.Sprintf("stream: rate_per_sec must be positive, got %d", p.Stream.RatePerSec))
	}
	if p.Stream.MetricsAddr == "" {
		errs = append(errs, "stream: metrics_addr is required")
	}
	if p.Kafka.Topic == "" {
		errs = append(errs, "kafka: topic is required")
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
