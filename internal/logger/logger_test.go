package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sparques/irladder/internal/config"
	"github.com/sparques/irladder/remote"
)

var _ remote.Logger = (*Log)(nil)

func TestNewLoggerLevel(t *testing.T) {
	if _, err := NewLogger(config.LogConf{Level: "loud"}); err == nil {
		t.Error("NewLogger(loud) error = nil, want error")
	}

	var buf bytes.Buffer
	log, err := newLogger(config.LogConf{Level: "warn"}, &buf)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if log.GetLevel() != "warning" {
		t.Errorf("GetLevel() = %q, want warning", log.GetLevel())
	}

	log.Info("hidden")
	log.With(Fields{"module": "remote"}).Warn("shown")
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "module=remote") {
		t.Errorf("output = %q, want warn line with module field", out)
	}
}

func TestModule(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(config.LogConf{Level: "debug"}, &buf)
	if err != nil {
		t.Fatal(err)
	}

	var l Logger = log
	l.Module("emitter").Debugf("frame %d", 7)
	out := buf.String()
	if !strings.Contains(out, "module=emitter") || !strings.Contains(out, "frame 7") {
		t.Errorf("output = %q, want debug line tagged module=emitter", out)
	}
}
