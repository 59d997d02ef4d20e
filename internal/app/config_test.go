package app

import (
	"flag"
	"io"
	"testing"
	"time"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	if err := fs.Parse([]string{"--import", "setup.txt", "-tick", "50ms"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Import != "setup.txt" {
		t.Fatalf("Import = %q", cfg.Import)
	}
	if cfg.Tick != 50*time.Millisecond {
		t.Fatalf("Tick = %v", cfg.Tick)
	}
}

func TestConfigUnknownFlagErrors(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("life", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	// The caller falls back to defaults when this errors.
	if err := fs.Parse([]string{"--frobnicate"}); err == nil {
		t.Fatal("unknown flag should error")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Tick != 100*time.Millisecond {
		t.Fatalf("default tick = %v, want 100ms", cfg.Tick)
	}
	if cfg.MessageHold != 2*time.Second {
		t.Fatalf("default message hold = %v, want 2s", cfg.MessageHold)
	}
	if cfg.Import != "" {
		t.Fatalf("default import = %q, want empty", cfg.Import)
	}
}
