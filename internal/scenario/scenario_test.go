package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestSuiteRunsAllFourScenarios(t *testing.T) {
	logger := zaptest.NewLogger(t)
	results := Suite(logger)

	require.Len(t, results, 4)
	names := []string{"nominal", "tamper-rejection", "majority-attack", "availability"}
	for i, want := range names {
		assert.Equal(t, want, results[i].Name)
	}
}

func TestSuiteNominalReachesConsensus(t *testing.T) {
	logger := zaptest.NewLogger(t)
	results := Suite(logger)
	assert.True(t, results[0].Passed, results[0].Details)
}

func TestSuiteTamperNeverReachesConsensus(t *testing.T) {
	logger := zaptest.NewLogger(t)
	results := Suite(logger)
	assert.True(t, results[1].Passed, results[1].Details)
}

func TestSuiteAvailabilityRecovers(t *testing.T) {
	logger := zaptest.NewLogger(t)
	results := Suite(logger)
	assert.True(t, results[3].Passed, results[3].Details)
}
