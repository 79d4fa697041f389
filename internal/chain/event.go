package chain

import (
	"strconv"
	"time"

	"github.com/empower1labs/ledgersim/internal/digest"
)

// MaxEventDataBytes bounds an Event's opaque payload.
const MaxEventDataBytes = 255

// TimestampLayout is the wall-clock format stamped onto each event and used
// when a block's timestamp enters its header digest. It is never used for
// ordering decisions.
const TimestampLayout = "2006-01-02 15:04:05"

// Event is an opaque typed record appended to a block. Its Digest is set the
// moment it is appended; only the tamper path (recomputeDigest) rewrites it
// afterward.
type Event struct {
	Type      int
	Data      string
	Timestamp string
	Digest    string
	Valid     bool
}

func newEvent(eventType int, data string, now time.Time) Event {
	e := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: now.Format(TimestampLayout),
	}
	e.Digest = digest.SumString(eventDigestInput(e))
	e.Valid = validateEvent(e)
	return e
}

func eventDigestInput(e Event) string {
	return strconv.Itoa(e.Type) + e.Data + e.Timestamp
}

// recomputeDigest rehashes an event's current Type, Data and Timestamp. It
// exists solely for the tamper path: unlike newEvent it does not touch
// Timestamp or Valid, so a caller can overwrite Data and update only the
// event's own digest while leaving the block's merkle root and hash stale.
func recomputeDigest(e *Event) {
	e.Digest = digest.SumString(eventDigestInput(*e))
}

// validateEvent is the extension point for payload-specific checks (balances,
// signatures, and the like in a real ledger). The simulation accepts every
// event unconditionally; the hook is kept so a stricter policy can be dropped
// in without touching any caller.
func validateEvent(Event) bool {
	return true
}
