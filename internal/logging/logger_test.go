// Campwise - Summer Day-Camp Planning Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/campwise

package logging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// restoreGlobal puts the default logger back after a test replaces it.
func restoreGlobal(t *testing.T) {
	t.Helper()
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Caller {
		t.Error("Caller should default to false")
	}
	if !cfg.Timestamp {
		t.Error("Timestamp should default to true")
	}
}

func TestInit_JSON(t *testing.T) {
	restoreGlobal(t)
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})

	Info().Int("camps", 12).Msg("catalog loaded")

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"camps":12`, `"message":"catalog loaded"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %s missing %s", out, want)
		}
	}
}

func TestInit_Console(t *testing.T) {
	restoreGlobal(t)
	var buf bytes.Buffer
	Init(Config{Level: "info", Format: "console", Output: &buf})

	Warn().Msg("season not configured")
	if strings.Contains(buf.String(), `"level"`) {
		t.Errorf("console output looks like JSON: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "season not configured") {
		t.Errorf("missing message: %s", buf.String())
	}
}

func TestInit_LevelFilters(t *testing.T) {
	restoreGlobal(t)
	var buf bytes.Buffer
	Init(Config{Level: "warn", Output: &buf})

	Debug().Msg("hidden debug")
	Info().Msg("hidden info")
	Err(errors.New("boom")).Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("below-level messages written: %s", out)
	}
	if !strings.Contains(out, `"error":"boom"`) {
		t.Errorf("error field missing: %s", out)
	}
	if GetLevel() != zerolog.WarnLevel {
		t.Errorf("GetLevel() = %v, want warn", GetLevel())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"fatal", zerolog.FatalLevel},
		{"disabled", zerolog.Disabled},
		{"off", zerolog.Disabled},
		{" DEBUG ", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := parseLevel(tt.input); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidLevel(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"debug", "INFO", "warning", "off"} {
		if !ValidLevel(ok) {
			t.Errorf("ValidLevel(%q) = false", ok)
		}
	}
	for _, bad := range []string{"", "verbose", "panic"} {
		if ValidLevel(bad) {
			t.Errorf("ValidLevel(%q) = true", bad)
		}
	}
}

func TestSetLevelString(t *testing.T) {
	restoreGlobal(t)

	SetLevelString("error")
	if GetLevel() != zerolog.ErrorLevel {
		t.Errorf("GetLevel() = %v, want error", GetLevel())
	}
}

func TestWithComponent(t *testing.T) {
	restoreGlobal(t)
	var buf bytes.Buffer
	SetLogger(NewTestLogger(&buf))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := WithComponent("planner")
	logger.Info().Msg("ready")

	if !strings.Contains(buf.String(), `"component":"planner"`) {
		t.Errorf("component missing: %s", buf.String())
	}
}
