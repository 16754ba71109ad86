// Package errreport forwards unexpected server errors to Rollbar.
package errreport

import (
	"context"
	"log/slog"
	"os"

	"booksy/config"
	"booksy/internal/domain/service"

	"github.com/rollbar/rollbar-go"
	rollbarerrors "github.com/rollbar/rollbar-go/errors"
	"go.uber.org/fx"
)

type rollbarReporter struct{}

type noopReporter struct{}

func (noopReporter) Report(context.Context, error, map[string]any) {}

func (noopReporter) Close() {}

// Params holds dependencies for the error reporter, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New configures the Rollbar notifier when rollbar.token is set.
func New(params Params) service.ErrorReporter {
	if params.Config.Rollbar == nil || params.Config.Rollbar.Token == "" {
		params.Logger.Info("Rollbar not configured, error reporting disabled")

		return noopReporter{}
	}

	host, _ := os.Hostname()

	rollbar.SetToken(params.Config.Rollbar.Token)
	rollbar.SetEnvironment(params.Config.Env.Env)
	rollbar.SetCodeVersion(params.Config.Env.Version)
	rollbar.SetServerHost(host)
	rollbar.SetStackTracer(rollbarerrors.StackTracer)
	rollbar.SetEnabled(true)

	reporter := rollbarReporter{}
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			reporter.Close()

			return nil
		},
	})

	return reporter
}

// Report queues err with fields as custom data.
func (rollbarReporter) Report(_ context.Context, err error, fields map[string]any) {
	if fields == nil {
		fields = map[string]any{}
	}

	rollbar.Error(err, fields)
}

// Close blocks until queued reports are delivered.
func (rollbarReporter) Close() {
	rollbar.Wait()
}
