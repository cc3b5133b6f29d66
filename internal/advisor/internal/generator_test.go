package internal

import (
	"testing"

	"bigtwo/internal/domain"
)

func mk(rank int32, suit domain.Suit) domain.Card {
	return domain.Card{Suit: suit, Rank: rank}
}

func TestOpeningCandidates(t *testing.T) {
	hand := []domain.Card{
		mk(9, domain.Spades),
		mk(3, domain.Diamonds),
		mk(7, domain.Hearts),
		mk(5, domain.Spades),
		mk(3, domain.Clubs),
		mk(7, domain.Clubs),
		mk(5, domain.Hearts),
		mk(7, domain.Diamonds),
	}

	cands := OpeningCandidates(hand)

	// 3 singles + 2 pairs + 1 triple.
	if len(cands) != 6 {
		t.Fatalf("expected 6 candidates, got %d", len(cands))
	}

	singles, pairs, triples := 0, 0, 0
	for _, cand := range cands {
		switch cand.Combo.Type {
		case domain.Single:
			singles++
		case domain.Pair:
			pairs++
		case domain.Triple:
			triples++
		default:
			t.Errorf("unexpected candidate type %v", cand.Combo.Type)
		}
	}
	if singles != 3 || pairs != 2 || triples != 1 {
		t.Errorf("got %d singles, %d pairs, %d triples; want 3, 2, 1", singles, pairs, triples)
	}

	// First single is the overall lowest card.
	if cands[0].Cards[0] != mk(3, domain.Diamonds) {
		t.Errorf("lowest single = %v, want 3♦", cands[0].Cards[0])
	}
}

func TestBeatingCandidatesSingles(t *testing.T) {
	hand := []domain.Card{
		mk(3, domain.Diamonds),
		mk(9, domain.Clubs),
		mk(9, domain.Hearts),
		mk(domain.RankTwo, domain.Spades),
	}
	target := domain.Classify([]domain.Card{mk(8, domain.Diamonds)})

	cands := BeatingCandidates(hand, target)
	if len(cands) != 3 {
		t.Fatalf("expected 3 beating singles, got %d", len(cands))
	}
	for _, cand := range cands {
		if cand.Combo.Value <= target.Value {
			t.Errorf("candidate %v does not beat target", cand.Cards)
		}
	}
}

func TestBeatingCandidatesPairs(t *testing.T) {
	hand := []domain.Card{
		mk(6, domain.Diamonds),
		mk(6, domain.Clubs),
		mk(10, domain.Diamonds),
		mk(10, domain.Hearts),
		mk(10, domain.Spades),
	}
	target := domain.Classify([]domain.Card{mk(8, domain.Hearts), mk(8, domain.Spades)})

	cands := BeatingCandidates(hand, target)
	// All three two-card subsets of the 10s beat a pair of 8s; the 6s do not.
	if len(cands) != 3 {
		t.Fatalf("expected 3 beating pairs, got %d", len(cands))
	}
	for _, cand := range cands {
		if cand.Cards[0].Rank != 10 {
			t.Errorf("unexpected pair %v", cand.Cards)
		}
	}
}

func TestBeatingCandidatesStraight(t *testing.T) {
	target := domain.Classify([]domain.Card{
		mk(4, domain.Diamonds), mk(5, domain.Clubs), mk(6, domain.Hearts),
		mk(7, domain.Spades), mk(8, domain.Diamonds),
	})

	hand := []domain.Card{
		mk(5, domain.Diamonds), mk(6, domain.Diamonds), mk(7, domain.Diamonds),
		mk(8, domain.Clubs), mk(9, domain.Clubs), mk(domain.RankTwo, domain.Hearts),
	}
	cands := BeatingCandidates(hand, target)
	if len(cands) != 1 {
		t.Fatalf("expected 1 beating straight, got %d", len(cands))
	}
	if cands[0].Combo.Type != domain.Straight {
		t.Errorf("candidate type = %v, want Straight", cands[0].Combo.Type)
	}

	// The low 3-4-5-6-7 straight ranks by its 5 and cannot beat 4-5-6-7-8.
	lowHand := []domain.Card{
		mk(3, domain.Diamonds), mk(4, domain.Clubs), mk(5, domain.Hearts),
		mk(6, domain.Spades), mk(7, domain.Hearts),
	}
	if got := BeatingCandidates(lowHand, target); len(got) != 0 {
		t.Errorf("3-4-5-6-7 should not beat 4-5-6-7-8, got %d candidates", len(got))
	}
}

func TestBeatingCandidatesFullHouse(t *testing.T) {
	target := domain.Classify([]domain.Card{
		mk(6, domain.Diamonds), mk(6, domain.Clubs), mk(6, domain.Hearts),
		mk(domain.RankKing, domain.Spades), mk(domain.RankKing, domain.Diamonds),
	})

	hand := []domain.Card{
		mk(9, domain.Diamonds), mk(9, domain.Clubs), mk(9, domain.Hearts),
		mk(4, domain.Spades), mk(4, domain.Diamonds), mk(3, domain.Clubs),
	}
	cands := BeatingCandidates(hand, target)
	if len(cands) != 1 {
		t.Fatalf("expected 1 beating full house, got %d", len(cands))
	}
	if cands[0].Combo.Type != domain.FullHouse {
		t.Errorf("candidate type = %v, want FullHouse", cands[0].Combo.Type)
	}
}

func TestBeatingCandidatesFourPlusOne(t *testing.T) {
	target := domain.Classify([]domain.Card{
		mk(5, domain.Diamonds), mk(5, domain.Clubs), mk(5, domain.Hearts),
		mk(5, domain.Spades), mk(3, domain.Diamonds),
	})

	hand := []domain.Card{
		mk(domain.RankJack, domain.Diamonds), mk(domain.RankJack, domain.Clubs),
		mk(domain.RankJack, domain.Hearts), mk(domain.RankJack, domain.Spades),
		mk(4, domain.Diamonds), mk(8, domain.Clubs),
	}
	cands := BeatingCandidates(hand, target)
	// One quad, two possible kickers.
	if len(cands) != 2 {
		t.Fatalf("expected 2 beating four-plus-ones, got %d", len(cands))
	}
	for _, cand := range cands {
		if cand.Combo.Type != domain.FourPlusOne {
			t.Errorf("candidate type = %v, want FourPlusOne", cand.Combo.Type)
		}
	}
}

func TestBeatingCandidatesFlushWindows(t *testing.T) {
	target := domain.Classify([]domain.Card{
		mk(3, domain.Hearts), mk(6, domain.Hearts), mk(9, domain.Hearts),
		mk(domain.RankJack, domain.Hearts), mk(domain.RankKing, domain.Hearts),
	})

	hand := []domain.Card{
		mk(4, domain.Spades), mk(7, domain.Spades), mk(9, domain.Spades),
		mk(10, domain.Spades), mk(domain.RankQueen, domain.Spades), mk(domain.RankAce, domain.Spades),
	}
	cands := BeatingCandidates(hand, target)
	// Two windows over the six spades; only the ace-topped one beats K♥ high.
	if len(cands) != 1 {
		t.Fatalf("expected 1 beating flush, got %d", len(cands))
	}
	top := cands[0].Cards[len(cands[0].Cards)-1]
	if top != mk(domain.RankAce, domain.Spades) {
		t.Errorf("flush top card = %v, want A♠", top)
	}
}
