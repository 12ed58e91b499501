package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gyaneshwarpardhi/banksynth/internal/config"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	return path
}

func TestNewLoader_AppliesDefaults(t *testing.T) {
	path := writeProfile(t, "version: v1\n")
	l, err := config.NewLoader(path)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	p := l.Config()
	if p.Seed != 42 {
		t.Errorf("default seed = %d, want 42", p.Seed)
	}
	if len(p.Sources) != 5 {
		t.Errorf("default sources = %v, want all five", p.Sources)
	}
	if p.Stream.RatePerSec != 50 {
		t.Errorf("default rate = %d, want 50", p.Stream.RatePerSec)
	}
	if p.Kafka.Topic != "banksynth.events" {
		t.Errorf("default topic = %q", p.Kafka.Topic)
	}
}

func TestNewLoader_ReadsOverrides(t *testing.T) {
	path := writeProfile(t, `
version: v1
seed: 7
sources: [payments, support]
vocab:
  currencies: [EUR, GBP]
stream:
  rate_per_sec: 200
kafka:
  brokers: [localhost:9092]
  topic: demo.events
`)
	l, err := config.NewLoader(path)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}
	p := l.Config()
	if p.Seed != 7 {
		t.Errorf("seed = %d", p.Seed)
	}
	if len(p.Sources) != 2 || p.Sources[0] != "payments" {
		t.Errorf("sources = %v", p.Sources)
	}
	v := p.RecordVocab()
	if len(v.Currencies) != 2 || v.Currencies[0] != "EUR" {
		t.Errorf("currencies = %v", v.Currencies)
	}
	if len(v.Merchants) == 0 {
		t.Error("merchants should fall back to defaults")
	}
	if p.Kafka.Topic != "demo.events" {
		t.Errorf("topic = %q", p.Kafka.Topic)
	}
}

func TestNewLoader_MissingFile(t *testing.T) {
	if _, err := config.NewLoader(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReload_PicksUpChanges(t *testing.T) {
	path := writeProfile(t, "version: v1\nseed: 1\n")
	l, err := config.NewLoader(path)
	if err != nil {
		t.Fatalf("NewLoader: %v", err)
	}

	var observed int64
	l.OnChange(func(p *config.Profile) { observed = p.Seed })

	if err := os.WriteFile(path, []byte("version: v1\nseed: 99\n"), 0o644); err != nil {
		t.Fatalf("rewrite profile: %v", err)
	}
	p, err := l.Reload()
	if err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if p.Seed != 99 {
		t.Errorf("reloaded seed = %d", p.Seed)
	}
	if observed != 99 {
		t.Errorf("OnChange saw seed = %d", observed)
	}
}
