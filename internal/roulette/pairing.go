package roulette

import (
	"sort"

	"github.com/kenams/sport-challenge-roulette/internal/domain"
)

// MaxLevelGap is the preferred maximum level difference inside a pair.
// A larger gap is only accepted when no close-level partner remains.
const MaxLevelGap = 1

// ShuffleFunc permutes n elements via swap. Production passes
// rand.Shuffle; tests pass a fixed permutation for reproducibility.
type ShuffleFunc func(n int, swap func(i, j int))

// PairPlayers partitions the eligible pool into disjoint pairs using a
// level-proximity heuristic with randomized tie-breaking:
//
//  1. shuffle uniformly, so order within equal levels is random;
//  2. stable-sort ascending by level, grouping close skill together;
//  3. repeatedly pop the front player and take the first remaining
//     player within MaxLevelGap levels, falling back to the front of
//     the remainder so nobody is stranded;
//  4. stop when fewer than two players remain.
//
// With an odd pool one player is left unpaired and gets no duel.
func PairPlayers(players []domain.Player, shuffle ShuffleFunc) []domain.Pair {
	if len(players) < 2 {
		return nil
	}

	pool := make([]domain.Player, len(players))
	copy(pool, players)

	if shuffle != nil {
		shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].Level < pool[j].Level
	})

	pairs := make([]domain.Pair, 0, len(pool)/2)
	for len(pool) >= 2 {
		current := pool[0]
		pool = pool[1:]

		// Fallback is the closest available player even if the gap is
		// large; that guarantees termination.
		idx := 0
		for k, candidate := range pool {
			if levelGap(current.Level, candidate.Level) <= MaxLevelGap {
				idx = k
				break
			}
		}

		partner := pool[idx]
		pool = append(pool[:idx], pool[idx+1:]...)

		pairs = append(pairs, domain.Pair{A: current, B: partner})
	}

	return pairs
}

func levelGap(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
