package domain

// HandValue returns the tiered comparison score of a five-card hand so that
// cross-shape ordering is a plain integer comparison. For anything that is
// not a valid five-card hand it falls back to the highest card value.
func HandValue(cards []Card) int32 {
	combo := Classify(cards)
	if combo.Count == 5 && combo.Type != Invalid {
		return combo.Value
	}
	return maxCardValue(cards)
}

// IsHigherCombination reports whether a outranks b. Both sets must have the
// same length; the caller is expected to have rejected mismatched lengths.
func IsHigherCombination(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	switch len(a) {
	case 1:
		return CardValue(a[0]) > CardValue(b[0])
	case 2, 3:
		return maxCardValue(a) > maxCardValue(b)
	case 5:
		return HandValue(a) > HandValue(b)
	}
	return false
}

func maxCardValue(cards []Card) int32 {
	maxV := int32(-1)
	for _, c := range cards {
		if v := CardValue(c); v > maxV {
			maxV = v
		}
	}
	return maxV
}
