package specrend

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestDiscardHandler(t *testing.T) {
	var h slog.Handler = discard{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("discard.Enabled(%v) = true", level)
		}
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(discard); !ok {
		t.Error("WithAttrs should stay silent")
	}
	if _, ok := h.WithGroup("g").(discard); !ok {
		t.Error("WithGroup should stay silent")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn} {
		if l.Enabled(context.Background(), level) {
			t.Errorf("default logger should not be enabled for %v", level)
		}
	}
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	SetLogger(custom)

	if Logger() != custom {
		t.Error("Logger() did not return the custom logger set via SetLogger")
	}

	// An out-of-gamut sample is traced at debug level.
	p, err := NewPipeline(NTSC)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Convert(520); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "desaturated out-of-gamut sample") || !strings.Contains(out, "nm=520") {
		t.Errorf("expected a gamut trace for 520 nm, got: %s", out)
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	SetLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
	SetLogger(nil)

	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent logger")
	}
}

func TestWithLoggerOverridesPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := NewPipeline(SMPTE, WithLogger(l))
	if err != nil {
		t.Fatal(err)
	}
	_ = p.ConvertChromaticity(Chromaticity{})

	if !strings.Contains(buf.String(), "black sample") {
		t.Errorf("expected a black-sample trace, got: %s", buf.String())
	}
}
