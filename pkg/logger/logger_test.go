package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	log := Init(Options{Level: "verbose", Output: &buf})

	if log.GetLevel() != zerolog.InfoLevel {
		t.Errorf("unknown level must fall back to info, got %v", log.GetLevel())
	}

	log.Debug().Msg("hidden")
	log.Info().Msg("visible")
	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug output must be suppressed at info level")
	}
	if !strings.Contains(buf.String(), "visible") {
		t.Error("info output missing")
	}
}

func TestInit_FirstConfigurationWins(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	var buf bytes.Buffer
	first := Init(Options{Level: "error", Output: &buf})
	second := Init(Options{Level: "debug", Output: &buf})

	if first.GetLevel() != zerolog.ErrorLevel || second.GetLevel() != zerolog.ErrorLevel {
		t.Errorf("repeated Init must keep the first configuration, got %v / %v",
			first.GetLevel(), second.GetLevel())
	}
}

func TestGet_PanicsBeforeInit(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	defer func() {
		if recover() == nil {
			t.Error("Get before Init must panic")
		}
	}()
	Get()
}
