package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds environment-variable defaults. Flags take precedence over these,
// and these take precedence over the built-in defaults.
type Env struct {
	Out          string   `env:"BANKSYNTH_OUT" envDefault:"data/raw"`
	Profile      string   `env:"BANKSYNTH_PROFILE"`
	KafkaBrokers []string `env:"BANKSYNTH_KAFKA_BROKERS" envSeparator:","`
	KafkaTopic   string   `env:"BANKSYNTH_KAFKA_TOPIC"`
	MetricsAddr  string   `env:"BANKSYNTH_METRICS_ADDR"`
}

// FromEnv loads defaults from the environment.
func FromEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
