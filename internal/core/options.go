package core

import (
	"context"
	"time"
)

// Logger is the structured logging surface used by the bridges. Arguments
// are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// MetricsRecorder receives the outcome and latency of each bridge operation.
type MetricsRecorder interface {
	Observe(ctx context.Context, operation string, success bool, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) Observe(context.Context, string, bool, time.Duration) {}

// Clock supplies the current time for latency measurement.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// Operation names reported to MetricsRecorder.
const (
	OpTeamSave        = "team.save"
	OpTeamDelete      = "team.delete"
	OpTeamRetrieve    = "team.retrieve"
	OpTeamRetrieveAll = "team.retrieve_all"

	OpPlayerSave        = "player.save"
	OpPlayerDelete      = "player.delete"
	OpPlayerRetrieve    = "player.retrieve"
	OpPlayerRetrieveAll = "player.retrieve_all"

	// OpTeamLookup is the team snapshot refresh. A failed observation means a
	// store error was swallowed and the player was left without a team.
	OpTeamLookup = "player.team_lookup"
)

type serviceOptions struct {
	logger  Logger
	metrics MetricsRecorder
	clock   Clock
}

func defaultServiceOptions() serviceOptions {
	return serviceOptions{
		logger:  noopLogger{},
		metrics: noopMetrics{},
		clock:   ClockFunc(time.Now),
	}
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceOptions)

// WithLogger routes bridge diagnostics to logger. Nil keeps the no-op logger.
func WithLogger(logger Logger) ServiceOption {
	return func(o *serviceOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics reports bridge operations to recorder.
func WithMetrics(recorder MetricsRecorder) ServiceOption {
	return func(o *serviceOptions) {
		if recorder != nil {
			o.metrics = recorder
		}
	}
}

// WithClock overrides the time source used for latency measurement.
func WithClock(clock Clock) ServiceOption {
	return func(o *serviceOptions) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// observe reports an operation and logs failures at debug level; callers
// surface the error themselves.
func (o serviceOptions) observe(ctx context.Context, op string, started time.Time, err error) {
	o.metrics.Observe(ctx, op, err == nil, o.clock.Now().Sub(started))
	if err != nil {
		o.logger.Debug("operation failed", "operation", op, "error", err)
	}
}
