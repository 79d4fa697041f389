package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/empower1labs/ledgersim/internal/chainerrors"
	"github.com/empower1labs/ledgersim/internal/merkle"
	"github.com/empower1labs/ledgersim/internal/params"
)

func TestNewBlockEmptyMerkleRoot(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	assert.Equal(t, merkle.EmptyRoot, b.MerkleRoot)
	assert.Len(t, b.Hash, params.HashSize)
}

func TestAppendEventChangesHash(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	before := b.Hash
	require.NoError(t, b.AppendEvent(1, `{"from":"Alice","to":"Bob","amount":10}`))
	assert.NotEqual(t, before, b.Hash)
	assert.Len(t, b.Events, 1)
	assert.Equal(t, b.Events[0].Digest, b.MerkleRoot)
}

func TestAppendEventTwoEventsMerkleRoot(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	require.NoError(t, b.AppendEvent(1, "a"))
	require.NoError(t, b.AppendEvent(1, "b"))
	want := merkle.Root([]string{b.Events[0].Digest, b.Events[1].Digest})
	assert.Equal(t, want, b.MerkleRoot)
}

func TestAppendEventBlockFull(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	for i := 0; i < params.MaxEventsPerBlock; i++ {
		require.NoError(t, b.AppendEvent(0, "x"))
	}
	err := b.AppendEvent(0, "overflow")
	assert.ErrorIs(t, err, chainerrors.ErrBlockFull)
	assert.Len(t, b.Events, params.MaxEventsPerBlock)
}

func TestAppendEventRejectsOversizedData(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	err := b.AppendEvent(1, strings.Repeat("x", MaxEventDataBytes+1))
	assert.ErrorIs(t, err, chainerrors.ErrEventDataTooLarge)
}

func TestCloneIsDeepAndDetached(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	require.NoError(t, b.AppendEvent(1, "payload"))
	b.Next = newBlock(2, b.Hash)

	clone := b.Clone()
	assert.Nil(t, clone.Next)
	assert.Equal(t, b.Hash, clone.Hash)
	assert.Equal(t, b.MerkleRoot, clone.MerkleRoot)
	require.Len(t, clone.Events, len(b.Events))

	clone.Events[0].Data = "mutated"
	assert.NotEqual(t, b.Events[0].Data, clone.Events[0].Data)
}

func TestProofOfWorkOK(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	b.Hash = "00abc"
	assert.True(t, b.ProofOfWorkOK(2))
	assert.False(t, b.ProofOfWorkOK(3))
}

func TestValidateEventsAllPass(t *testing.T) {
	b := newBlock(1, params.ZeroHash)
	require.NoError(t, b.AppendEvent(1, "x"))
	require.NoError(t, b.AppendEvent(2, "y"))
	assert.True(t, b.ValidateEvents())
}
