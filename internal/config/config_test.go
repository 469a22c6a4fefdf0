package config

import "testing"

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogPath != "" || cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("unexpected app defaults: %+v", cfg.App)
	}
	if cfg.App.ShowFooter || cfg.App.PrintOnly || cfg.Logging.Trace {
		t.Fatalf("boolean flags should default to false: %+v", cfg)
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	env := []string{
		"QUICKRUN_CONFIG=/tmp/alt.conf",
		"QUICKRUN_WIDTH=120",
		"QUICKRUN_FOOTER=true",
		"QUICKRUN_PRINT=1",
		"QUICKRUN_TRACE=true",
		"QUICKRUN_LOG_FILE=/tmp/quickrun.log",
	}
	cfg, err := LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.CatalogPath != "/tmp/alt.conf" {
		t.Fatalf("env config path ignored: %q", cfg.App.CatalogPath)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("env width ignored: %d", cfg.App.Width)
	}
	if !cfg.App.ShowFooter || !cfg.App.PrintOnly || !cfg.Logging.Trace {
		t.Fatalf("env booleans ignored: %+v", cfg)
	}
	if cfg.Logging.FilePath != "/tmp/quickrun.log" {
		t.Fatalf("env log file ignored: %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsFlagsBeatEnv(t *testing.T) {
	env := []string{"QUICKRUN_WIDTH=120", "QUICKRUN_CONFIG=/tmp/env.conf"}
	cfg, err := LoadArgs([]string{"-width", "80", "-config", "/tmp/flag.conf"}, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("flag should beat env, got width %d", cfg.App.Width)
	}
	if cfg.App.CatalogPath != "/tmp/flag.conf" {
		t.Fatalf("flag should beat env, got config %q", cfg.App.CatalogPath)
	}
}

func TestLoadArgsRejectsNegativeDimensions(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("negative width should be rejected")
	}
	if _, err := LoadArgs([]string{"-height", "-2"}, nil); err == nil {
		t.Fatalf("negative height should be rejected")
	}
}

func TestLoadArgsIgnoresMalformedEnvNumbers(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"QUICKRUN_WIDTH=abc", "QUICKRUN_FOOTER=maybe"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.ShowFooter {
		t.Fatalf("malformed env should fall back to defaults: %+v", cfg.App)
	}
}

func TestLoadArgsRecordsFlagsForTracing(t *testing.T) {
	cfg, err := LoadArgs([]string{"-footer", "-width", "90"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["footer"] != "true" || cfg.Flags["width"] != "90" {
		t.Fatalf("flag snapshot wrong: %v", cfg.Flags)
	}
	if len(cfg.Args) != 3 || cfg.Args[0] != "-footer" {
		t.Fatalf("args snapshot wrong: %v", cfg.Args)
	}
}
