package vpath

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError), "nothing is logged by default")

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	p := NewPath(NewSegmentAt(0.0, 0.0))
	test.Error(t, p.ArcThrough(5.0, 0.0, 10.0, 0.0))
	test.T(t, p.String(), "M0 0L10 0")
	test.That(t, strings.Contains(buf.String(), "arc through collinear points"), buf.String())

	SetLogger(nil)
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError))
}
