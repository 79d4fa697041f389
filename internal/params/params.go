// Package params holds the compile-time tunables shared by the chain and
// network packages. They mirror the #define block at the top of the
// reference C implementation: fixed constants, not runtime configuration.
package params

const (
	// HashSize is the fixed width, in lowercase hex characters, of every
	// digest produced by internal/digest.
	HashSize = 64

	// MaxEventsPerBlock bounds how many events a single block may carry
	// before AppendEvent reports ErrBlockFull.
	MaxEventsPerBlock = 100

	// InitialEventCapacity is the starting size of a block's event buffer;
	// the buffer then grows by Go's append, whose capacity is not capped at
	// MaxEventsPerBlock (only the event count is).
	InitialEventCapacity = 10

	// MaxNodes bounds how many nodes a Network can register.
	MaxNodes = 10

	// Difficulty is the number of leading '0' hex characters a committed
	// block's hash must have to satisfy proof of work.
	Difficulty = 2

	// ConsensusThreshold is the fraction of active nodes that must hold a
	// block for it to be considered agreed upon by the network.
	ConsensusThreshold = 0.51
)

// ZeroHash is the previous-hash sentinel used by the genesis block: H '0'
// characters.
var ZeroHash = func() string {
	b := make([]byte, HashSize)
	for i := range b {
		b[i] = '0'
	}
	return string(b)
}()
