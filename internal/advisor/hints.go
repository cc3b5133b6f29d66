// Package advisor derives assistive suggestions from a hand and the table
// state: ranked beat candidates, a single "best small" auto-play and a pass
// decision. It is pure; nothing in here is randomized or stateful.
package advisor

import (
	"sort"
	"strings"

	"bigtwo/internal/advisor/internal"
	"bigtwo/internal/domain"
)

// MaxHints caps how many candidates are surfaced to the player.
const MaxHints = 5

// Hint is one suggested play with a display description and an ordering
// strength (weaker plays first).
type Hint struct {
	Cards       []domain.Card `json:"cards"`
	Description string        `json:"description"`
	Strength    int32         `json:"strength"`
}

// CardHints lists up to MaxHints legal plays for the given hand and table
// state, weakest first. On an open table it proposes cheap leads (lowest
// singles, pairs, triple); against a prior play it searches the hand for
// same-type combinations that beat it. Ties keep discovery order.
func CardHints(hand, lastPlay []domain.Card, playerCount int) []Hint {
	candidates := search(hand, lastPlay)

	hints := make([]Hint, 0, len(candidates))
	for _, cand := range candidates {
		hints = append(hints, Hint{
			Cards:       cand.Cards,
			Description: describe(cand.Combo),
			Strength:    cand.Strength(),
		})
	}

	sort.SliceStable(hints, func(i, j int) bool {
		return hints[i].Strength < hints[j].Strength
	})

	if len(hints) > MaxHints {
		hints = hints[:MaxHints]
	}
	return hints
}

// AutoPlaySuggestion returns the weakest legal play for the hand, or nil
// when nothing can be (or needs to be) played over lastPlay.
func AutoPlaySuggestion(hand, lastPlay []domain.Card, playerCount int) []domain.Card {
	candidates := search(hand, lastPlay)
	if len(candidates) == 0 {
		return nil
	}

	best := candidates[0]
	for _, cand := range candidates[1:] {
		if cand.Strength() < best.Strength() {
			best = cand
		}
	}
	return best.Cards
}

// ShouldAutoPass reports whether the hand has no legal response. It is a
// derived view of AutoPlaySuggestion and can never disagree with it.
func ShouldAutoPass(hand, lastPlay []domain.Card, playerCount int) bool {
	return AutoPlaySuggestion(hand, lastPlay, playerCount) == nil
}

func search(hand, lastPlay []domain.Card) []internal.Candidate {
	if len(hand) == 0 {
		return nil
	}
	if len(lastPlay) == 0 {
		return internal.OpeningCandidates(hand)
	}

	target := domain.Classify(lastPlay)
	if !target.Playable() {
		return nil
	}
	return internal.BeatingCandidates(hand, target)
}

func describe(combo domain.Combination) string {
	names := make([]string, len(combo.Cards))
	for i, c := range combo.Cards {
		names[i] = c.String()
	}
	return combo.Type.String() + ": " + strings.Join(names, " ")
}
