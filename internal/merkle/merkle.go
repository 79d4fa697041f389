// Package merkle builds the digest tree used to summarize a block's events.
//
// The construction is a recursive midpoint split, not a canonical
// Bitcoin-style pairwise-reduction tree: a range is split at
// mid = (start+end)/2 into [start, mid] and [mid+1, end], so an odd leaf
// count leaves the extra leaf in the left half and the right half is hashed
// unpaired one level higher (three leaves give hash(hash(a+b)+c)). Both
// halves are non-empty whenever a range holds two or more leaves, so the
// left-twin branch in build is never taken. This module reproduces that shape exactly
// (grounded on original_source/blockchain.c's build_tree), since
// cross-validation against the reference depends on it.
package merkle

import (
	"github.com/empower1labs/ledgersim/internal/digest"
	"github.com/empower1labs/ledgersim/internal/params"
)

// EmptyRoot is the sentinel root for a block with no events.
var EmptyRoot = params.ZeroHash

// Root computes the Merkle root over an ordered list of leaf digests. An
// empty list yields EmptyRoot.
func Root(leaves []string) string {
	if len(leaves) == 0 {
		return EmptyRoot
	}
	return build(leaves, 0, len(leaves)-1)
}

// build returns the hash of the subtree spanning leaves[start:end+1].
func build(leaves []string, start, end int) string {
	if start == end {
		return leaves[start]
	}
	mid := (start + end) / 2
	left := build(leaves, start, mid)
	var right string
	if mid+1 <= end {
		right = build(leaves, mid+1, end)
	} else {
		// No right subtree for this split: duplicate the left child so
		// every internal node still has two children.
		right = left
	}
	return digest.SumString(left + right)
}
