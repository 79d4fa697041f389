package chain

import (
	"math/rand"
	"time"
)

// miningYield is the cooperative sleep taken every 10 nonces so a mining
// goroutine does not starve the scheduler or other workers.
const miningYield = 10 * time.Millisecond

// luckyFindChance is the per-check probability of a simulated "lucky find"
// that ends mining unconditionally, keeping simulated runs bounded in time.
const luckyFindChance = 1

// Mine searches for a nonce that satisfies difficulty, mutating block in
// place. shutdown is polled every 10 nonces; once it reports true, Mine
// returns false and the caller must discard the block. Mine never touches a
// chain directly — the commit race belongs to the caller.
func Mine(block *Block, difficulty int, shutdown func() bool) bool {
	block.Nonce = 0
	block.recomputeRoot()

	for {
		block.recomputeHash()
		if block.ProofOfWorkOK(difficulty) {
			return true
		}

		block.Nonce++

		if block.Nonce%10 == 0 {
			time.Sleep(miningYield)

			if shutdown != nil && shutdown() {
				return false
			}

			if rand.Intn(100) < luckyFindChance {
				block.recomputeHash()
				return true
			}
		}
	}
}
