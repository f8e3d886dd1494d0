package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	// Run from an empty dir so the default file probe misses.
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AuditLog != "./itsm_audit.jsonl" {
		t.Errorf("AuditLog = %q, want default", cfg.AuditLog)
	}
	if cfg.CaseDB != "" || cfg.HTTPAddr != "" {
		t.Errorf("CaseDB/HTTPAddr should default empty, got %q/%q", cfg.CaseDB, cfg.HTTPAddr)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "itsmd.yaml")
	content := "audit_log: /var/log/itsm.jsonl\ncase_db: /var/lib/itsm/cases.db\nhttp_addr: 127.0.0.1:8000\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AuditLog != "/var/log/itsm.jsonl" {
		t.Errorf("AuditLog = %q", cfg.AuditLog)
	}
	if cfg.CaseDB != "/var/lib/itsm/cases.db" {
		t.Errorf("CaseDB = %q", cfg.CaseDB)
	}
	if cfg.HTTPAddr != "127.0.0.1:8000" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "itsmd.yaml")
	if err := os.WriteFile(path, []byte("audit_log: /from/file.jsonl\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	t.Setenv(EnvAuditLog, "/from/env.jsonl")
	t.Setenv(EnvCaseDB, "/from/env.db")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AuditLog != "/from/env.jsonl" {
		t.Errorf("AuditLog = %q, env must win", cfg.AuditLog)
	}
	if cfg.CaseDB != "/from/env.db" {
		t.Errorf("CaseDB = %q, env must win", cfg.CaseDB)
	}
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load with an explicit missing path should error")
	}
}

func TestLoad_MalformedYAMLErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("audit_log: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load with malformed YAML should error")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(orig) })
}
