// Package chainerrors collects the sentinel errors shared across the chain
// and network packages, so callers can compare with errors.Is instead of
// string matching.
package chainerrors

import "errors"

// Event and block construction errors.
var (
	ErrEventDataTooLarge = errors.New("event data exceeds maximum size")
	ErrBlockFull         = errors.New("block has reached its maximum event capacity")
)

// Network errors. ErrBlockRejected covers every reason spec.md's
// InvalidPeerBlock kind names (failed proof of work, failed event
// validation, unknown parent, or not advancing the tip) since the policy
// for all of them is identical: silently drop at the receiver.
var (
	ErrNetworkFull   = errors.New("network has reached its maximum node capacity")
	ErrInvalidNodeID = errors.New("node id is out of range")
	ErrBlockRejected = errors.New("peer rejected broadcast block")
)
