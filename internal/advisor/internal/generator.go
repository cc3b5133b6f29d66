package internal

import (
	"sort"

	"bigtwo/internal/domain"
)

// Candidate is one legal play found in a hand. Strength for ordering is the
// combination's comparison value.
type Candidate struct {
	Cards []domain.Card
	Combo domain.Combination
}

// Strength returns the ordering value of the candidate.
func (c Candidate) Strength() int32 {
	return c.Combo.Value
}

func newCandidate(cards []domain.Card) Candidate {
	return Candidate{Cards: cards, Combo: domain.Classify(cards)}
}

// OpeningCandidates proposes leads for a fresh round: up to three lowest
// singles, up to two lowest pairs and the lowest triple in the hand.
func OpeningCandidates(hand []domain.Card) []Candidate {
	sorted := sortedCopy(hand)
	var out []Candidate

	for i := 0; i < len(sorted) && i < 3; i++ {
		out = append(out, newCandidate([]domain.Card{sorted[i]}))
	}

	groups := rankGroups(sorted)
	pairsFound := 0
	for _, g := range groups {
		if len(g) >= 2 && pairsFound < 2 {
			out = append(out, newCandidate([]domain.Card{g[0], g[1]}))
			pairsFound++
		}
	}
	for _, g := range groups {
		if len(g) >= 3 {
			out = append(out, newCandidate([]domain.Card{g[0], g[1], g[2]}))
			break
		}
	}

	return out
}

// BeatingCandidates searches the hand for combinations of the same type as
// target that strictly outrank it. The search is same-type only: a flush is
// never proposed over a straight even though the validator would accept it.
func BeatingCandidates(hand []domain.Card, target domain.Combination) []Candidate {
	sorted := sortedCopy(hand)

	var all []Candidate
	switch target.Type {
	case domain.Single:
		all = findSingles(sorted)
	case domain.Pair:
		all = findPairs(sorted)
	case domain.Triple:
		all = findTriples(sorted)
	case domain.Straight:
		all = findStraights(sorted)
	case domain.Flush:
		all = findSuitWindows(sorted, domain.Flush)
	case domain.StraightFlush:
		all = findSuitWindows(sorted, domain.StraightFlush)
	case domain.FullHouse:
		all = findFullHouses(sorted)
	case domain.FourPlusOne:
		all = findFourPlusOnes(sorted)
	default:
		return nil
	}

	var beating []Candidate
	for _, cand := range all {
		if cand.Combo.Type == target.Type && cand.Combo.Value > target.Value {
			beating = append(beating, cand)
		}
	}
	return beating
}

func findSingles(sorted []domain.Card) []Candidate {
	out := make([]Candidate, 0, len(sorted))
	for _, c := range sorted {
		out = append(out, newCandidate([]domain.Card{c}))
	}
	return out
}

func findPairs(sorted []domain.Card) []Candidate {
	var out []Candidate
	for i := 0; i < len(sorted)-1; i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[i].Rank != sorted[j].Rank {
				continue
			}
			out = append(out, newCandidate([]domain.Card{sorted[i], sorted[j]}))
		}
	}
	return out
}

func findTriples(sorted []domain.Card) []Candidate {
	var out []Candidate
	for i := 0; i < len(sorted)-2; i++ {
		for j := i + 1; j < len(sorted)-1; j++ {
			for k := j + 1; k < len(sorted); k++ {
				if sorted[i].Rank != sorted[k].Rank {
					continue
				}
				out = append(out, newCandidate([]domain.Card{sorted[i], sorted[j], sorted[k]}))
			}
		}
	}
	return out
}

// findStraights walks runs of five consecutive distinct ranks, taking the
// lowest card of each rank, keeping high suits in hand.
func findStraights(sorted []domain.Card) []Candidate {
	groups := rankGroups(sorted)

	var ranks []int32
	byRank := make(map[int32][]domain.Card, len(groups))
	for _, g := range groups {
		if g[0].Rank == domain.RankTwo {
			continue
		}
		ranks = append(ranks, g[0].Rank)
		byRank[g[0].Rank] = g
	}

	var out []Candidate
	for i := 0; i+5 <= len(ranks); i++ {
		consecutive := true
		for k := 1; k < 5; k++ {
			if ranks[i+k] != ranks[i+k-1]+1 {
				consecutive = false
				break
			}
		}
		if !consecutive {
			continue
		}
		run := make([]domain.Card, 5)
		for k := 0; k < 5; k++ {
			run[k] = byRank[ranks[i+k]][0]
		}
		out = append(out, newCandidate(run))
	}
	return out
}

// findSuitWindows slides a five-card window over each suit's sorted run and
// keeps windows classifying as the wanted shape (Flush or StraightFlush).
func findSuitWindows(sorted []domain.Card, want domain.CombinationType) []Candidate {
	bySuit := make(map[domain.Suit][]domain.Card, 4)
	for _, c := range sorted {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}

	var out []Candidate
	for s := domain.Diamonds; s <= domain.Spades; s++ {
		run := bySuit[s]
		for i := 0; i+5 <= len(run); i++ {
			window := make([]domain.Card, 5)
			copy(window, run[i:i+5])
			cand := newCandidate(window)
			if cand.Combo.Type == want {
				out = append(out, cand)
			}
		}
	}
	return out
}

// findFullHouses pairs every available triple rank with every other pair
// rank, using the lowest cards of each group.
func findFullHouses(sorted []domain.Card) []Candidate {
	groups := rankGroups(sorted)

	var out []Candidate
	for _, trip := range groups {
		if len(trip) < 3 {
			continue
		}
		for _, pair := range groups {
			if len(pair) < 2 || pair[0].Rank == trip[0].Rank {
				continue
			}
			cards := []domain.Card{trip[0], trip[1], trip[2], pair[0], pair[1]}
			out = append(out, newCandidate(cards))
		}
	}
	return out
}

// findFourPlusOnes attaches every spare card as a kicker to each quad.
func findFourPlusOnes(sorted []domain.Card) []Candidate {
	groups := rankGroups(sorted)

	var out []Candidate
	for _, quad := range groups {
		if len(quad) < 4 {
			continue
		}
		for _, kicker := range sorted {
			if kicker.Rank == quad[0].Rank {
				continue
			}
			cards := []domain.Card{quad[0], quad[1], quad[2], quad[3], kicker}
			out = append(out, newCandidate(cards))
		}
	}
	return out
}

// rankGroups buckets a sorted hand by rank, groups ordered by ascending rank
// and cards within a group ascending by value.
func rankGroups(sorted []domain.Card) [][]domain.Card {
	byRank := make(map[int32][]domain.Card)
	var ranks []int32
	for _, c := range sorted {
		if _, ok := byRank[c.Rank]; !ok {
			ranks = append(ranks, c.Rank)
		}
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}
	sort.Slice(ranks, func(i, j int) bool {
		return domain.RankIndex(ranks[i]) < domain.RankIndex(ranks[j])
	})

	out := make([][]domain.Card, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, byRank[r])
	}
	return out
}

func sortedCopy(hand []domain.Card) []domain.Card {
	out := make([]domain.Card, len(hand))
	copy(out, hand)
	domain.SortHand(out)
	return out
}
