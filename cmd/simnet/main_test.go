package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	"github.com/empower1labs/ledgersim/internal/scenario"
)

// TestScenarioSuiteCompletes exercises the same entry point main() drives,
// without forking a process, so a panic in any scenario fails the test
// directly instead of just a nonzero exit code.
func TestScenarioSuiteCompletes(t *testing.T) {
	logger := zaptest.NewLogger(t)
	results := scenario.Suite(logger)
	assert.Len(t, results, 4)
}
