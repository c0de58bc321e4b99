// Package config loads the relay process's configuration: a flat,
// env-driven Config (mirroring the teacher's config/config.go) plus an
// optional layered YAML file for the broadcast-queue tuning knobs
// (mirroring the teacher's server/config/config.go double-tagged
// style).
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds every relay setting. Addr, when left unset, is resolved
// from Debug per spec.md §6 (127.0.0.1:8080 in debug, 0.0.0.0:8080 in
// release).
type Config struct {
	Addr  string `envconfig:"ADDR"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	// ClientSendBuffer bounds each client's outbound queue depth
	// (spec.md §9 Open Question 2, adopted as SPEC_FULL.md §4.9.1).
	ClientSendBuffer int `envconfig:"CLIENT_SEND_BUFFER" default:"32"`

	// InboundBuffer bounds each client's inbound channel (spec.md §5).
	InboundBuffer int `envconfig:"INBOUND_BUFFER" default:"1000"`

	// QueueTuningFile, if set, points at a YAML file overriding the two
	// buffer sizes above without touching the environment.
	QueueTuningFile string `envconfig:"QUEUE_TUNING_FILE"`
}

// QueueTuning is the optional YAML-overridable subset of Config.
type QueueTuning struct {
	ClientSendBuffer int `yaml:"client_send_buffer" json:"client_send_buffer"`
	InboundBuffer    int `yaml:"inbound_buffer" json:"inbound_buffer"`
}

// Load reads a local .env (if present), then environment variables,
// then an optional queue-tuning YAML file, and returns the merged
// Config.
func Load() (*Config, error) {
	// Missing .env is not an error — envconfig.Process still runs
	// against whatever is already in the environment.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("relay", &cfg); err != nil {
		return nil, fmt.Errorf("process environment: %w", err)
	}

	if cfg.Addr == "" {
		if cfg.Debug {
			cfg.Addr = "127.0.0.1:8080"
		} else {
			cfg.Addr = "0.0.0.0:8080"
		}
	}

	if cfg.QueueTuningFile != "" {
		tuning, err := loadQueueTuning(cfg.QueueTuningFile)
		if err != nil {
			return nil, err
		}
		if tuning != nil {
			if tuning.ClientSendBuffer > 0 {
				cfg.ClientSendBuffer = tuning.ClientSendBuffer
			}
			if tuning.InboundBuffer > 0 {
				cfg.InboundBuffer = tuning.InboundBuffer
			}
		}
	}

	return &cfg, nil
}

func loadQueueTuning(path string) (*QueueTuning, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read queue tuning file %s: %w", path, err)
	}

	var tuning QueueTuning
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return nil, fmt.Errorf("parse queue tuning file %s: %w", path, err)
	}
	return &tuning, nil
}
