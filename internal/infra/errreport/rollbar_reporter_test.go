package errreport

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"booksy/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/fx/fxtest"
)

func TestNew_WithoutTokenIsNoop(t *testing.T) {
	reporter := New(Params{
		Lc:     fxtest.NewLifecycle(t),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	assert.IsType(t, noopReporter{}, reporter)
	assert.NotPanics(t, func() {
		reporter.Report(context.Background(), errors.New("boom"), map[string]any{"path": "/api"})
		reporter.Close()
	})
}
