// Package chain implements the single-writer-per-node ledger: Merkle-rooted
// blocks linked from a genesis block to a tip, plus the staging block being
// filled with events ahead of the next proof-of-work commit.
package chain

import (
	"errors"
	"sync"

	"github.com/empower1labs/ledgersim/internal/chainerrors"
	"github.com/empower1labs/ledgersim/internal/params"
)

// Chain is a node's private ledger. All mutating operations hold mu from
// first read of chain state to last write; callers outside this package
// never touch a Chain's fields directly.
type Chain struct {
	mu          sync.Mutex
	genesis     *Block
	tip         *Block
	blockCount  int
	miningBlock *Block
	difficulty  int
	shutdown    func() bool
}

// New builds a chain with an unmined genesis block (genesis is exempt from
// proof of work) and a fresh staging block.
// shutdown is polled by the mining loop invoked from AppendEvent; pass nil
// if the caller never needs to cancel a block-full mining stall.
func New(shutdown func() bool) *Chain {
	genesis := newBlock(0, params.ZeroHash)

	c := &Chain{
		genesis:    genesis,
		tip:        genesis,
		blockCount: 1,
		difficulty: params.Difficulty,
		shutdown:   shutdown,
	}
	c.miningBlock = newBlock(c.blockCount, genesis.Hash)
	return c
}

// Tip returns the current tip block. The returned pointer must not be
// mutated by the caller.
func (c *Chain) Tip() *Block {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tip
}

// BlockCount returns the number of committed blocks, genesis included.
func (c *Chain) BlockCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.blockCount
}

// StagingSnapshot returns a detached clone of the current staging block, for
// a mining worker to work on independently of the chain lock.
func (c *Chain) StagingSnapshot() *Block {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.miningBlock.Clone()
}

// Commit splices a successfully mined block onto the tip if the tip has not
// moved since the block's previous_hash was recorded, reports true, and
// installs a fresh staging block. If the tip has moved (a peer's block won
// the race), it reports false and leaves the chain untouched; the caller
// discards the mined block.
func (c *Chain) Commit(mined *Block) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tip.Hash != mined.PreviousHash {
		return false
	}
	c.tip.Next = mined
	c.tip = mined
	c.blockCount++
	c.miningBlock = newBlock(c.blockCount, mined.Hash)
	return true
}

// AppendEvent appends an event to the current staging block. If the staging
// block is full, it is detached and mined under proof of work with the chain
// lock released, then spliced onto the tip if the tip has not moved in the
// meantime (otherwise silently discarded as a lost race), and the event is
// retried against the resulting staging block.
func (c *Chain) AppendEvent(eventType int, data string) error {
	c.mu.Lock()
	err := c.miningBlock.AppendEvent(eventType, data)
	if err == nil {
		c.mu.Unlock()
		return nil
	}
	if !isBlockFull(err) {
		c.mu.Unlock()
		return err
	}

	full := c.miningBlock
	c.miningBlock = newBlock(c.blockCount, c.tip.Hash)
	c.mu.Unlock()

	if Mine(full, c.difficulty, c.shutdown) {
		c.mu.Lock()
		if c.tip.Hash == full.PreviousHash {
			c.tip.Next = full
			c.tip = full
			c.blockCount++
			c.miningBlock = newBlock(c.blockCount, full.Hash)
		}
		c.mu.Unlock()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.miningBlock.AppendEvent(eventType, data)
}

// Confirm finalizes the current staging block without mining it and splices
// it onto the tip unconditionally. It is used by the unit tests (the
// scenario driver never calls it) and is the only path that commits a block
// without proof of work.
func (c *Chain) Confirm() {
	c.mu.Lock()
	defer c.mu.Unlock()

	committed := c.miningBlock
	committed.recomputeRoot()
	committed.recomputeHash()

	c.tip.Next = committed
	c.tip = committed
	c.blockCount++
	c.miningBlock = newBlock(c.blockCount, committed.Hash)
}

// Walk returns the blocks from genesis to tip, in order. The returned slice
// length always equals BlockCount.
func (c *Chain) Walk() []*Block {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.walkLocked()
}

func (c *Chain) walkLocked() []*Block {
	blocks := make([]*Block, 0, c.blockCount)
	for b := c.genesis; b != nil; b = b.Next {
		blocks = append(blocks, b)
	}
	return blocks
}

// ContainsHash reports whether some block from genesis to tip has the given
// hash.
func (c *Chain) ContainsHash(hash string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for b := c.genesis; b != nil; b = b.Next {
		if b.Hash == hash {
			return true
		}
	}
	return false
}

// findByHashLocked returns the block with the given hash, or nil. Caller
// must hold mu.
func (c *Chain) findByHashLocked(hash string) *Block {
	for b := c.genesis; b != nil; b = b.Next {
		if b.Hash == hash {
			return b
		}
	}
	return nil
}

// Receive validates and, if it extends the tip, adopts a block broadcast by
// a peer. It reports chainerrors.ErrBlockRejected when the block fails proof
// of work, event validation, a re-derivation of its merkle root and hash,
// parent linkage, or does not advance the chain; a rejected block is never
// linked in.
func (c *Chain) Receive(block *Block) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !block.ProofOfWorkOK(c.difficulty) || !block.ValidateEvents() {
		return chainerrors.ErrBlockRejected
	}
	rederived := block.Clone()
	rederived.recomputeRoot()
	rederived.recomputeHash()
	if rederived.MerkleRoot != block.MerkleRoot || rederived.Hash != block.Hash {
		return chainerrors.ErrBlockRejected
	}
	parent := c.findByHashLocked(block.PreviousHash)
	if parent == nil {
		return chainerrors.ErrBlockRejected
	}
	if block.Index+1 <= c.blockCount {
		return chainerrors.ErrBlockRejected
	}

	clone := block.Clone()
	parent.Next = clone
	c.tip = clone
	c.blockCount = block.Index + 1
	c.miningBlock = newBlock(c.blockCount, clone.Hash)
	return nil
}

// ReplaceWith discards this chain's blocks and deep-clones src block-by-block
// from genesis to tip, then installs a fresh staging block. It is the
// longest-chain synchronization primitive: src.Walk() takes and releases
// src's lock before c's lock is acquired, so the two chain locks are never
// held at once.
func (c *Chain) ReplaceWith(src *Chain) {
	srcBlocks := src.Walk()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.genesis = srcBlocks[0].Clone()
	c.tip = c.genesis
	c.blockCount = 1
	for _, b := range srcBlocks[1:] {
		clone := b.Clone()
		c.tip.Next = clone
		c.tip = clone
		c.blockCount++
	}
	c.miningBlock = newBlock(c.blockCount, c.tip.Hash)
}

// TamperFirstBlock overwrites the data and digest of the first event in the
// first non-genesis block, without recomputing the block's merkle root or
// hash. The inconsistency is deliberate: the tampered block will fail
// Receive's validation at every peer. It reports false if there is no
// non-genesis block or that block has no events.
func (c *Chain) TamperFirstBlock(fraudulentData string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.genesis.Next
	if target == nil || len(target.Events) == 0 {
		return false
	}
	ev := &target.Events[0]
	if ev.Type != 1 {
		return false
	}
	ev.Data = fraudulentData
	recomputeDigest(ev)
	return true
}

func isBlockFull(err error) bool {
	return errors.Is(err, chainerrors.ErrBlockFull)
}
