package log

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestUseRoutesEntries(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	Use(zap.New(core))
	t.Cleanup(func() { log = nil })

	Debugw("hidden")
	Infow("session parsed", "beats", 42)
	Warnw("line skipped", "line", 3)
	Errorw("analysis failed", "err", "boom")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}
	if entries[0].Message != "session parsed" || entries[0].ContextMap()["beats"] != int64(42) {
		t.Fatalf("first entry = %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel || entries[2].Level != zapcore.ErrorLevel {
		t.Fatalf("levels = %v, %v", entries[1].Level, entries[2].Level)
	}
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { log = nil })
	for _, debug := range []bool{false, true} {
		if err := Init(debug); err != nil {
			t.Fatalf("Init(%v): %v", debug, err)
		}
		if GetSugaredLogger() == nil {
			t.Fatal("logger not set")
		}
	}
}

func TestGetSugaredLoggerFallback(t *testing.T) {
	log = nil
	t.Cleanup(func() { log = nil })
	if GetSugaredLogger() == nil {
		t.Fatal("fallback logger is nil")
	}
}
