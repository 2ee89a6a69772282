package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func TestBuildDefaults(t *testing.T) {
	cfg, err := Build("", nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.SwapSign {
		t.Errorf("Expected swap_sign default false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("Expected log_level default info, got %q", cfg.LogLevel)
	}
	if cfg.Extension != ".pdf" {
		t.Errorf("Expected extension default .pdf, got %q", cfg.Extension)
	}
}

func TestBuildConfigFile(t *testing.T) {
	content := "swap_sign: true\nlog_level: debug\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !cfg.SwapSign || cfg.LogLevel != "debug" {
		t.Errorf("Config file values not applied: %+v", cfg)
	}
	if cfg.Extension != ".pdf" {
		t.Errorf("Defaults must survive for unset keys, got %q", cfg.Extension)
	}
}

func TestBuildFlagOverride(t *testing.T) {
	content := "swap_sign: false\n"
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create config file: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Bool("swap-sign", false, "")
	flags.String("log-level", "", "")
	if err := flags.Parse([]string{"--swap-sign", "--log-level", "warn"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := Build(path, flags)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !cfg.SwapSign {
		t.Errorf("Expected flag to override config file for swap_sign")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log_level warn, got %q", cfg.LogLevel)
	}
}
