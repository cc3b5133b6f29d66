package domain

import (
	"math/rand"
	"sort"
)

// HandSize is the number of cards dealt to each player.
const HandSize = 13

// NewDeck returns an ordered 52-card deck, one card per (suit, rank) pair.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for r := RankThree; r <= RankTwo; r++ {
		for s := Diamonds; s <= Spades; s++ {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck. The input order is
// left untouched; the output is always a permutation of the input.
func ShuffleDeck(rng *rand.Rand, deck []Card) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// NewShuffledDeck builds a full deck and shuffles it in one step.
func NewShuffledDeck(rng *rand.Rand) []Card {
	return ShuffleDeck(rng, NewDeck())
}

// DealCards deals the deck round-robin, one card at a time, until each of
// numPlayers holds HandSize cards or the deck runs out. With fewer than four
// players the leftover cards are simply unused. Each hand comes back sorted
// ascending by card value. The caller should treat the deck as consumed.
func DealCards(deck []Card, numPlayers int) [][]Card {
	if numPlayers <= 0 {
		return nil
	}
	hands := make([][]Card, numPlayers)
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}

	idx := 0
	for round := 0; round < HandSize; round++ {
		for p := 0; p < numPlayers; p++ {
			if idx >= len(deck) {
				break
			}
			hands[p] = append(hands[p], deck[idx])
			idx++
		}
	}

	for _, hand := range hands {
		SortHand(hand)
	}
	return hands
}

// SortHand orders a hand in place by ascending card value.
func SortHand(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		return CardValue(cards[i]) < CardValue(cards[j])
	})
}

// SortMode selects a hand arrangement for SortCards.
type SortMode int

const (
	// SortAuto is the default arrangement, currently the same as SortByRank.
	SortAuto SortMode = iota
	// SortByRank orders by ascending card value (rank first, suit tiebreak).
	SortByRank
	// SortBySuit groups spades, hearts, diamonds, clubs, each rank ascending.
	SortBySuit
)

// SortCards returns a copy of the cards arranged per the requested mode.
func SortCards(cards []Card, mode SortMode) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	switch mode {
	case SortBySuit:
		return AutoArrangeCards(cards)
	default:
		SortHand(out)
	}
	return out
}

// suitGroupOrder is the display grouping for arranged hands.
var suitGroupOrder = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// AutoArrangeCards groups a hand by suit (spades, hearts, diamonds, clubs)
// with each group rank ascending.
func AutoArrangeCards(cards []Card) []Card {
	out := make([]Card, 0, len(cards))
	for _, s := range suitGroupOrder {
		group := make([]Card, 0, len(cards))
		for _, c := range cards {
			if c.Suit == s {
				group = append(group, c)
			}
		}
		sort.Slice(group, func(i, j int) bool {
			return RankIndex(group[i].Rank) < RankIndex(group[j].Rank)
		})
		out = append(out, group...)
	}
	return out
}

// RemoveCards removes the specified cards from a hand using multiset
// semantics and returns the updated hand. The input slices are not mutated.
func RemoveCards(hand []Card, toRemove []Card) []Card {
	if len(toRemove) == 0 || len(hand) == 0 {
		return append([]Card(nil), hand...)
	}

	removeCounts := make(map[Card]int, len(toRemove))
	for _, card := range toRemove {
		removeCounts[card]++
	}

	updated := make([]Card, 0, len(hand))
	for _, card := range hand {
		if count, ok := removeCounts[card]; ok && count > 0 {
			removeCounts[card] = count - 1
			continue
		}
		updated = append(updated, card)
	}
	return updated
}

// ContainsAll reports whether hand holds every card in subset, with
// multiset semantics.
func ContainsAll(hand []Card, subset []Card) bool {
	counts := make(map[Card]int, len(hand))
	for _, c := range hand {
		counts[c]++
	}
	for _, c := range subset {
		if counts[c] == 0 {
			return false
		}
		counts[c]--
	}
	return true
}
