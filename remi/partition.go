package remi

import "sort"

// partitionCandidate tracks one candidate partition of a prefix of the
// selection: how many cards it covers, how many melds it used, and the
// melds themselves.
type partitionCandidate struct {
	cardsUsed int
	meldCount int
	melds     []Meld
}

// better reports whether candidate c beats other by the Partitioner's
// objective: maximise cardsUsed first, then meldCount.
func (c partitionCandidate) better(other partitionCandidate) bool {
	if c.cardsUsed != other.cardsUsed {
		return c.cardsUsed > other.cardsUsed
	}
	return c.meldCount > other.meldCount
}

// PartitionMelds implements §4.4's authoritative DP over prefixes: given
// an ordered selection of n cards, it returns disjoint contiguous
// sub-sequences (in the caller's order) that are each a valid Set or Run,
// maximising first the number of cards covered, then the number of
// melds. It runs in O(n^2) and is safe for the n<=15 hands this package
// deals with; it is not a general subset search (see FindBestCombination
// for that, offline-hint use only).
func PartitionMelds(cards []Card) []Meld {
	n := len(cards)
	best := make([]partitionCandidate, n+1)
	best[0] = partitionCandidate{}

	for i := 1; i <= n; i++ {
		best[i] = best[i-1] // option A: skip card i-1

		lo := i - MaxMeldSize
		if lo < 0 {
			lo = 0
		}
		for j := lo; j <= i-MinMeldSize; j++ {
			if j < 0 {
				continue
			}
			span := cards[j:i]
			meldType, ok := GetMeldType(span)
			if !ok {
				continue
			}
			meld, _ := NewMeld(span, "")
			meld.Type = meldType
			candidate := partitionCandidate{
				cardsUsed: best[j].cardsUsed + len(span),
				meldCount: best[j].meldCount + 1,
				melds:     append(append([]Meld{}, best[j].melds...), meld),
			}
			if candidate.better(best[i]) {
				best[i] = candidate
			}
		}
	}

	return best[n].melds
}

// comboCandidate is one subset of the selection classified as a meld, for
// use by FindBestCombination.
type comboCandidate struct {
	meld  Meld
	score int
}

// FindBestCombination is the non-contiguous hint-finder described in
// §4.4: it enumerates every subset of size 3..n that classifies as a Set
// or Run, sorts by descending meld score, and greedily accepts subsets
// whose cards are still available. It is offline only — never used for
// authoritative validation, since its combinatorial subset enumeration
// does not scale the way the prefix DP does.
func FindBestCombination(cards []Card) []Meld {
	n := len(cards)
	if n == 0 {
		return nil
	}

	var candidates []comboCandidate
	for size := MinMeldSize; size <= n; size++ {
		combos := combinationsOfSize(cards, size)
		for _, combo := range combos {
			meldType, ok := GetMeldType(combo)
			if !ok {
				continue
			}
			meld, _ := NewMeld(combo, "")
			meld.Type = meldType
			candidates = append(candidates, comboCandidate{meld: meld, score: CalculateMeldScore(meld)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	used := make(map[int]bool, n)
	var result []Meld
	for _, cand := range candidates {
		overlaps := false
		for _, c := range cand.meld.Cards {
			if used[c.ID] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for _, c := range cand.meld.Cards {
			used[c.ID] = true
		}
		result = append(result, cand.meld)
	}
	return result
}

// combinationsOfSize returns every size-length subsequence of cards,
// preserving relative order (order matters for Run classification).
func combinationsOfSize(cards []Card, size int) [][]Card {
	n := len(cards)
	if size > n {
		return nil
	}
	var out [][]Card
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	for {
		combo := make([]Card, size)
		for i, ix := range idx {
			combo[i] = cards[ix]
		}
		out = append(out, combo)

		// advance idx like an odometer, rightmost index first
		i := size - 1
		for i >= 0 && idx[i] == n-size+i {
			i--
		}
		if i < 0 {
			break
		}
		idx[i]++
		for k := i + 1; k < size; k++ {
			idx[k] = idx[k-1] + 1
		}
	}
	return out
}
