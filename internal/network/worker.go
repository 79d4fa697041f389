package network

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/empower1labs/ledgersim/internal/chain"
	"github.com/empower1labs/ledgersim/internal/params"
)

// workerIdle is the pause between mining attempts.
const workerIdle = 50 * time.Millisecond

// tamperChance is the per-iteration probability that a malicious mining node
// attempts to tamper with its own chain.
const tamperChance = 5

// startWorker launches node's mining loop. The loop runs while the node is
// active and the network is not shutting down; StopNode and Shutdown both
// wait on node.workerWG before returning.
func (net *Network) startWorker(node *Node) {
	node.workerWG.Add(1)
	go func() {
		defer node.workerWG.Done()
		net.runWorker(node)
	}()
}

func (net *Network) runWorker(node *Node) {
	for node.Active() && !net.isShuttingDown() {
		candidate := node.Chain.StagingSnapshot()

		ok := chain.Mine(candidate, params.Difficulty, net.isShuttingDown)
		if ok && node.Active() {
			if node.Chain.Commit(candidate) {
				net.logger.Info("block mined",
					zap.Int("node_id", node.ID),
					zap.Int("index", candidate.Index),
					zap.Int("nonce", candidate.Nonce),
					zap.String("hash", candidate.Hash),
				)
				if net.metrics != nil {
					net.metrics.BlocksMined.Inc()
				}
				net.Broadcast(candidate, node.ID)
			} else if net.metrics != nil {
				net.metrics.BlocksDiscarded.Inc()
			}
		}

		if node.IsMalicious && rand.Intn(100) < tamperChance {
			net.tamper(node)
		}

		time.Sleep(workerIdle)
	}
}

// tamper invokes the node's tamper path and logs the attempt. The tampered
// block is left with an inconsistent hash/merkle root on purpose; a peer
// offered it through Chain.Receive rejects it.
func (net *Network) tamper(node *Node) {
	fraudulent := `{"from":"System","to":"Hacker","amount":1000}`
	if !node.Chain.TamperFirstBlock(fraudulent) {
		return
	}
	if net.metrics != nil {
		net.metrics.TamperAttempts.Inc()
	}
	net.logger.Warn("node tampered with its own chain", zap.Int("node_id", node.ID))
}
