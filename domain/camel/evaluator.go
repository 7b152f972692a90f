package camel

import "slices"

// HandSize is the number of cards in a hand.
const HandSize = 5

// Classify returns the category of the cards, treating every card as its
// own face value.
func Classify(cards [HandSize]Card) Category {
	var counts [FaceCount]int
	for _, c := range cards {
		counts[c.face]++
	}
	groups := make([]int, 0, HandSize)
	for _, n := range counts {
		if n > 0 {
			groups = append(groups, n)
		}
	}
	slices.Sort(groups)

	switch {
	case slices.Equal(groups, []int{5}):
		return FiveOfAKind
	case slices.Equal(groups, []int{1, 4}):
		return FourOfAKind
	case slices.Equal(groups, []int{2, 3}):
		return FullHouse
	case slices.Equal(groups, []int{1, 1, 3}):
		return ThreeOfAKind
	case slices.Equal(groups, []int{1, 2, 2}):
		return TwoPair
	case slices.Equal(groups, []int{1, 1, 1, 2}):
		return OnePair
	default:
		return HighCard
	}
}

// Evaluate returns the best category reachable under the rules. When the
// hand holds the wildcard, every wildcard card is replaced by each other
// face in turn and the strongest category found wins.
func (r Rules) Evaluate(cards [HandSize]Card) Category {
	best := Classify(cards)
	if !r.joker || !slices.ContainsFunc(cards[:], r.IsWild) {
		return best
	}
	for _, f := range Faces {
		if f == r.wild {
			continue
		}
		subbed := cards
		for i, c := range subbed {
			if r.IsWild(c) {
				subbed[i] = Card{face: f}
			}
		}
		if cat := Classify(subbed); cat > best {
			best = cat
		}
	}
	return best
}

// Tiebreak encodes the card ranks in base 13, first card most significant.
// Within a category it orders hands like a lexicographic comparison of ranks.
func (r Rules) Tiebreak(cards [HandSize]Card) int {
	score := 0
	for _, c := range cards {
		score = score*FaceCount + r.Rank(c)
	}
	return score
}
