// Package config loads server settings from an optional YAML file with
// environment-variable overrides. Environment always wins, so a config
// file is never required for the lab default setup.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Env var names recognized by Load.
const (
	EnvAuditLog = "ITSM_AUDIT_LOG"
	EnvCaseDB   = "ITSM_CASE_DB"
	EnvHTTPAddr = "ITSM_HTTP_ADDR"
)

// DefaultFile is the config file probed when no path is given.
const DefaultFile = "itsmd.yaml"

// Config holds all server settings.
type Config struct {
	// AuditLog is the JSONL audit sink path.
	AuditLog string `yaml:"audit_log"`
	// CaseDB selects the sqlite case store when non-empty; empty means
	// the in-memory store.
	CaseDB string `yaml:"case_db"`
	// HTTPAddr enables the streamable HTTP transport (with /health)
	// when non-empty; empty means stdio.
	HTTPAddr string `yaml:"http_addr"`
}

// Default returns the lab defaults.
func Default() Config {
	return Config{AuditLog: "./itsm_audit.jsonl"}
}

// Load reads the config file at path, then applies env overrides.
// An empty path probes DefaultFile and silently skips it when absent;
// an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file — defaults plus env.
	default:
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAuditLog); v != "" {
		cfg.AuditLog = v
	}
	if v := os.Getenv(EnvCaseDB); v != "" {
		cfg.CaseDB = v
	}
	if v := os.Getenv(EnvHTTPAddr); v != "" {
		cfg.HTTPAddr = v
	}
}
