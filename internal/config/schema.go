package config

import (
	"github.com/gyaneshwarpardhi/banksynth/internal/record"
)

// Profile is the top-level YAML generation profile.
type Profile struct {
	Version string     `yaml:"version" json:"version"`
	Seed    int64      `yaml:"seed" json:"seed"`
	Sources []string   `yaml:"sources" json:"sources"`
	Vocab   VocabConf  `yaml:"vocab" json:"vocab"`
	Stream  StreamConf `yaml:"stream" json:"stream"`
	Kafka   KafkaConf  `yaml:"kafka" json:"kafka"`
}

// VocabConf overrides the categorical pools factories draw from.
// Empty pools fall back to the built-in defaults.
type VocabConf struct {
	Currencies     []string `yaml:"currencies" json:"currencies"`
	Countries      []string `yaml:"countries" json:"countries"`
	Merchants      []string `yaml:"merchants" json:"merchants"`
	Counterparties []string `yaml:"counterparties" json:"counterparties"`
	ZelleAliases   []string `yaml:"zelle_aliases" json:"zelle_aliases"`
}

// StreamConf holds tunables for continuous publishing mode.
type StreamConf struct {
	RatePerSec  int    `yaml:"rate_per_sec" json:"rate_per_sec"`
	MetricsAddr string `yaml:"metrics_addr" json:"metrics_addr"`
}

// KafkaConf holds the stream-mode producer target.
type KafkaConf struct {
	Brokers []string `yaml:"brokers" json:"brokers"`
	Topic   string   `yaml:"topic" json:"topic"`
}

// Default returns a profile with every default applied, equivalent to
// loading an empty profile file.
func Default() *Profile {
	p := &Profile{Version: "v1"}
	applyDefaults(p)
	return p
}

func applyDefaults(p *Profile) {
	if p.Seed == 0 {
		p.Seed = 42
	}
	if len(p.Sources) == 0 {
		for _, s := range record.AllSources() {
			p.Sources = append(p.Sources, string(s))
		}
	}
	if p.Stream.RatePerSec == 0 {
		p.Stream.RatePerSec = 50
	}
	if p.Stream.MetricsAddr == "" {
		p.Stream.MetricsAddr = ":9102"
	}
	if p.Kafka.Topic == "" {
		p.Kafka.Topic = "banksynth.events"
	}
}

// EnabledSources returns the configured sources in allocation order.
func (p *Profile) EnabledSources() []record.Source {
	out := make([]record.Source, 0, len(p.Sources))
	for _, s := range p.Sources {
		out = append(out, record.Source(s))
	}
	return out
}

// RecordVocab maps the profile pools onto the factory vocabulary,
// falling back to defaults for any pool left empty.
func (p *Profile) RecordVocab() record.Vocab {
	v := record.DefaultVocab()
	if len(p.Vocab.Currencies) > 0 {
		v.Currencies = p.Vocab.Currencies
	}
	if len(p.Vocab.Countries) > 0 {
		v.Countries = p.Vocab.Countries
	}
	if len(p.Vocab.Merchants) > 0 {
		v.Merchants = p.Vocab.Merchants
	}
	if len(p.Vocab.Counterparties) > 0 {
		v.Counterparties = p.Vocab.Counterparties
	}
	if len(p.Vocab.ZelleAliases) > 0 {
		v.Aliases = p.Vocab.ZelleAliases
	}
	return v
}
