package scoring

import "sort"

// MaxSelection is the display capacity of a profile: at most six photos make
// the cut.
const MaxSelection = 6

// ScoredPhoto is an immutable per-photo record produced after normalization
// and scoring. A nil Score marks a photo whose analysis failed; it keeps its
// original index in response arrays but never competes for a slot.
type ScoredPhoto struct {
	Index    int           `json:"index"`
	Features PhotoFeatures `json:"features"`
	Role     Role          `json:"role"`
	Score    *int          `json:"score"`
}

// positionWeights reward photos placed early in the role-fill sequence when
// the selected set is re-ranked for display. Positions past the table reuse
// the final taper value.
var positionWeights = [...]float64{1.3, 1.15, 1.05, 1.0, 0.98, 0.95}

// SelectAndOrder picks up to maxCount photos and returns their original
// indices in display order.
//
// When capacity is not a constraint the result is simply every scored photo
// in descending score order. Otherwise selection runs as two explicit passes:
// first a greedy role fill over the priority list with a score backfill, then
// a re-rank of the chosen set by position-weighted score so role-critical
// picks keep their prominence over marginally higher raw scores. Ties break
// by ascending original index throughout, so the result is reproducible.
func SelectAndOrder(photos []ScoredPhoto, maxCount int, priority []Role) []int {
	candidates := make([]ScoredPhoto, 0, len(photos))
	for _, p := range photos {
		if p.Score != nil {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return []int{}
	}
	if len(candidates) <= maxCount {
		return RankByScore(candidates)
	}

	filled := fillRoleSlots(candidates, maxCount, priority)
	return rankByPosition(filled)
}

// fillRoleSlots is the first selection pass: one best photo per priority
// role, then the highest-scoring leftovers until capacity is reached. The
// returned slice is in fill order.
func fillRoleSlots(candidates []ScoredPhoto, maxCount int, priority []Role) []ScoredPhoto {
	taken := make(map[int]bool, maxCount)
	filled := make([]ScoredPhoto, 0, maxCount)

	for _, role := range priority {
		if len(filled) >= maxCount {
			break
		}
		best, ok := bestUnselected(candidates, taken, func(p ScoredPhoto) bool { return p.Role == role })
		if !ok {
			continue
		}
		taken[best.Index] = true
		filled = append(filled, best)
	}

	for len(filled) < maxCount {
		best, ok := bestUnselected(candidates, taken, func(ScoredPhoto) bool { return true })
		if !ok {
			break
		}
		taken[best.Index] = true
		filled = append(filled, best)
	}

	return filled
}

// bestUnselected finds the highest-scoring eligible photo not yet taken,
// preferring the lower original index on score ties.
func bestUnselected(candidates []ScoredPhoto, taken map[int]bool, eligible func(ScoredPhoto) bool) (ScoredPhoto, bool) {
	var best ScoredPhoto
	found := false
	for _, p := range candidates {
		if taken[p.Index] || !eligible(p) {
			continue
		}
		if !found || *p.Score > *best.Score || (*p.Score == *best.Score && p.Index < best.Index) {
			best = p
			found = true
		}
	}
	return best, found
}

// rankByPosition is the second selection pass: each filled photo's score is
// multiplied by the weight of its fill position, and the set is re-sorted by
// that weighted value.
func rankByPosition(filled []ScoredPhoto) []int {
	type weighted struct {
		index int
		value float64
	}
	ranked := make([]weighted, len(filled))
	for pos, p := range filled {
		w := positionWeights[len(positionWeights)-1]
		if pos < len(positionWeights) {
			w = positionWeights[pos]
		}
		ranked[pos] = weighted{index: p.Index, value: float64(*p.Score) * w}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].value != ranked[j].value {
			return ranked[i].value > ranked[j].value
		}
		return ranked[i].index < ranked[j].index
	})

	indices := make([]int, len(ranked))
	for i, r := range ranked {
		indices[i] = r.index
	}
	return indices
}

// RankByScore orders photos by descending score with a deterministic
// ascending-index tie-break and returns their original indices. Photos
// without a score are skipped.
func RankByScore(photos []ScoredPhoto) []int {
	scored := make([]ScoredPhoto, 0, len(photos))
	for _, p := range photos {
		if p.Score != nil {
			scored = append(scored, p)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if *scored[i].Score != *scored[j].Score {
			return *scored[i].Score > *scored[j].Score
		}
		return scored[i].Index < scored[j].Index
	})

	indices := make([]int, len(scored))
	for i, p := range scored {
		indices[i] = p.Index
	}
	return indices
}
