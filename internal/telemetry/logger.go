// Package telemetry wires up the simulation's structured logging and
// Prometheus metrics. It replaces the reference implementation's tagged
// printf lines (e.g. "SIMNET [%s]: ...") with zap fields, and its informal
// counters with real gauges and counters.
package telemetry

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process-wide logger. Production simulation runs use
// the console encoder at info level; callers needing JSON output for
// ingestion can swap the encoder without touching call sites.
func NewLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		// Logger construction failing means the process cannot report
		// anything useful; fall back to a no-op logger rather than panic.
		return zap.NewNop()
	}
	return logger
}
