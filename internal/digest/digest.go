// Package digest provides the simulation's hash primitive: a pure,
// deterministic function from a byte string to a fixed-width lowercase hex
// digest. It is a non-cryptographic stand-in, grounded on the djb2-style
// accumulate-and-shift hash the reference implementation uses, and exists so
// it can be swapped for a cryptographic digest (crypto/sha256, etc.) without
// touching any caller: every caller depends only on "same input, same
// output" and "different input, practically different output."
package digest

import (
	"fmt"

	"github.com/empower1labs/ledgersim/internal/params"
)

// Size is the fixed output width in hex characters, re-exported from
// params for callers that only need the digest package.
const Size = params.HashSize

// Sum returns the H-character lowercase hex digest of input.
func Sum(input []byte) string {
	var h uint64 = 5381
	for _, c := range input {
		h = ((h << 5) + h) + uint64(c)
	}
	out := fmt.Sprintf("%016x", h)
	if len(out) < Size {
		out += zeros[:Size-len(out)]
	}
	return out[:Size]
}

// SumString is a convenience wrapper over Sum for string inputs.
func SumString(input string) string {
	return Sum([]byte(input))
}

var zeros = func() string {
	b := make([]byte, Size)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}()
