package relation

import (
	"math/rand"
	"sort"
)

func sortByPopularity(products []Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].popularityScore() > products[j].popularityScore()
	})
}

// Window returns the products visible in the fixed-size window starting at
// start. Out-of-range windows clamp rather than error.
func (g Group) Window(start, size int) []Product {
	if size <= 0 || start >= len(g.Products) {
		return nil
	}
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > len(g.Products) {
		end = len(g.Products)
	}
	return g.Products[start:end]
}

// MaxStart returns the largest valid window start for the given window size,
// so the final window is always full when enough products exist.
func (g Group) MaxStart(size int) int {
	if size <= 0 {
		return 0
	}
	max := len(g.Products) - size
	if max < 0 {
		return 0
	}
	return max
}

// Shuffled returns a copy of the group with its products reordered. Only the
// receiving group is affected; sibling groups keep their order.
func (g Group) Shuffled(rng *rand.Rand) Group {
	shuffled := make([]Product, len(g.Products))
	copy(shuffled, g.Products)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return Group{Title: g.Title, Products: shuffled, Reason: g.Reason}
}
