package chain

import (
	"fmt"
	"strconv"
	"time"

	"github.com/empower1labs/ledgersim/internal/chainerrors"
	"github.com/empower1labs/ledgersim/internal/digest"
	"github.com/empower1labs/ledgersim/internal/merkle"
	"github.com/empower1labs/ledgersim/internal/params"
)

// Block is the unit of commitment: a header, an ordered list of events, and
// the nonce that satisfies proof of work once mined. A Block is mutable only
// while it is staging (not yet linked into a chain); once linked, callers
// MUST treat it as read-only.
type Block struct {
	Index        int
	Timestamp    time.Time
	PreviousHash string
	Events       []Event
	Nonce        int
	MerkleRoot   string
	Hash         string
	Next         *Block
}

// newBlock returns an empty staging block. Its MerkleRoot is the empty-block
// sentinel until the first event append or an explicit recompute; its Hash
// is computed from the header at once.
func newBlock(index int, previousHash string) *Block {
	b := &Block{
		Index:        index,
		Timestamp:    time.Now(),
		PreviousHash: previousHash,
		Events:       make([]Event, 0, params.InitialEventCapacity),
		MerkleRoot:   merkle.EmptyRoot,
	}
	b.recomputeHash()
	return b
}

// AppendEvent appends a new event to the block, recomputing MerkleRoot and
// Hash. It reports chainerrors.ErrBlockFull once the block holds
// params.MaxEventsPerBlock events; the caller is responsible for detaching,
// mining, and retrying against a fresh staging block.
func (b *Block) AppendEvent(eventType int, data string) error {
	if len(data) > MaxEventDataBytes {
		return fmt.Errorf("%w: %d bytes", chainerrors.ErrEventDataTooLarge, len(data))
	}
	if len(b.Events) >= params.MaxEventsPerBlock {
		return chainerrors.ErrBlockFull
	}
	b.Events = append(b.Events, newEvent(eventType, data, time.Now()))
	b.recomputeRoot()
	b.recomputeHash()
	return nil
}

// Clone returns a deep copy of the block, detached from any chain: its Next
// link is always nil, and its event slice shares no backing array with the
// source. Clones are the unit of exchange between the mining loop, the node
// worker, and broadcast.
func (b *Block) Clone() *Block {
	clone := &Block{
		Index:        b.Index,
		Timestamp:    b.Timestamp,
		PreviousHash: b.PreviousHash,
		Nonce:        b.Nonce,
		MerkleRoot:   b.MerkleRoot,
		Hash:         b.Hash,
	}
	clone.Events = make([]Event, len(b.Events))
	copy(clone.Events, b.Events)
	return clone
}

// ProofOfWorkOK reports whether the block's hash has at least difficulty
// leading '0' characters.
func (b *Block) ProofOfWorkOK(difficulty int) bool {
	if difficulty > len(b.Hash) {
		return false
	}
	for i := 0; i < difficulty; i++ {
		if b.Hash[i] != '0' {
			return false
		}
	}
	return true
}

// ValidateEvents reports whether every event in the block passes
// validateEvent. The simulation's policy is permissive, but the hook is
// preserved so a stricter policy can be substituted without touching callers.
func (b *Block) ValidateEvents() bool {
	for _, e := range b.Events {
		if !validateEvent(e) {
			return false
		}
	}
	return true
}

// recomputeRoot rebuilds MerkleRoot from the current event digests.
func (b *Block) recomputeRoot() {
	if len(b.Events) == 0 {
		b.MerkleRoot = merkle.EmptyRoot
		return
	}
	leaves := make([]string, len(b.Events))
	for i, e := range b.Events {
		leaves[i] = e.Digest
	}
	b.MerkleRoot = merkle.Root(leaves)
}

// recomputeHash rebuilds Hash from the header fields. Callers performing
// proof of work call this once per nonce attempt.
func (b *Block) recomputeHash() {
	b.Hash = digest.SumString(headerDigestInput(b))
}

func headerDigestInput(b *Block) string {
	return strconv.Itoa(b.Index) + b.Timestamp.Format(TimestampLayout) +
		b.PreviousHash + b.MerkleRoot + strconv.Itoa(b.Nonce)
}
