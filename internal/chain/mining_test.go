package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empower1labs/ledgersim/internal/params"
)

func TestMineProducesValidProof(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	require.NoError(t, b.AppendEvent(1, "payload"))

	ok := Mine(b, params.Difficulty, nil)
	require.True(t, ok)
	assert.True(t, b.ProofOfWorkOK(params.Difficulty))
}

func TestMineRespectsShutdown(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	calls := 0
	shutdown := func() bool {
		calls++
		return true
	}

	// A difficulty no honest nonce search will casually satisfy forces the
	// loop to its first shutdown check at the tenth nonce. The shutdown check
	// runs before the 1% lucky-find roll, so the shutdown function must have
	// been consulted.
	Mine(b, 64, shutdown)
	assert.GreaterOrEqual(t, calls, 1)
}
