// Package network owns the set of simulated peers: node lifecycle, the
// mining worker loop, block broadcast, longest-chain synchronization, and
// consensus queries. There is no real transport — a "broadcast" is an
// in-process visit over peer handles under the network lock.
package network

import (
	"sync"

	"github.com/empower1labs/ledgersim/internal/chain"
)

// Node owns one chain and, while mining, exactly one worker goroutine.
type Node struct {
	ID          int
	Chain       *chain.Chain
	IsMining    bool
	IsMalicious bool

	mu       sync.Mutex
	active   bool
	workerWG sync.WaitGroup
}

func newNode(id int, isMining, isMalicious bool, shutdown func() bool) *Node {
	return &Node{
		ID:          id,
		Chain:       chain.New(shutdown),
		IsMining:    isMining,
		IsMalicious: isMalicious,
		active:      true,
	}
}

// Active reports whether the node is currently online.
func (n *Node) Active() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

func (n *Node) setActive(active bool) {
	n.mu.Lock()
	n.active = active
	n.mu.Unlock()
}
