// Command simnet runs the in-process proof-of-work ledger simulation: a
// handful of nodes mining, broadcasting, tampering, and recovering from
// downtime, driven through four scripted scenarios with no flags of its own.
package main

import (
	"go.uber.org/zap"

	"github.com/empower1labs/ledgersim/internal/scenario"
	"github.com/empower1labs/ledgersim/internal/telemetry"
)

func main() {
	logger := telemetry.NewLogger()
	defer logger.Sync()

	logger.Info("starting ledger simulation")

	results := scenario.Suite(logger)

	for _, r := range results {
		logger.Info("scenario completed",
			zap.String("scenario", r.Name),
			zap.Bool("passed", r.Passed),
			zap.String("details", r.Details),
		)
	}

	logger.Info("ledger simulation complete")
}
