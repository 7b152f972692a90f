package camel

import (
	"fmt"
	"math"
	"strings"
)

// MaxBet bounds a single bet so bet * rank sums stay within int range.
const MaxBet = math.MaxInt32

// Hand is five cards with a bet. Category and Tiebreak are computed once
// by NewHand for the rules the hand was built with.
type Hand struct {
	Cards    [HandSize]Card
	Bet      int
	Category Category
	Tiebreak int
}

// NewHand classifies and scores the cards under the given rules.
func NewHand(cards [HandSize]Card, bet int, r Rules) (Hand, error) {
	if bet < 0 || bet > MaxBet {
		return Hand{}, fmt.Errorf("%w: %d", ErrInvalidBet, bet)
	}
	return Hand{
		Cards:    cards,
		Bet:      bet,
		Category: r.Evaluate(cards),
		Tiebreak: r.Tiebreak(cards),
	}, nil
}

// Less reports whether h ranks below o.
func (h Hand) Less(o Hand) bool {
	if h.Category != o.Category {
		return h.Category < o.Category
	}
	return h.Tiebreak < o.Tiebreak
}

// Compare returns -1, 0 or +1 as h ranks below, equal to or above o.
func (h Hand) Compare(o Hand) int {
	switch {
	case h.Less(o):
		return -1
	case o.Less(h):
		return 1
	default:
		return 0
	}
}

// Label returns the card symbols in order, e.g. "32T3K".
func Label(cards [HandSize]Card) string {
	var sb strings.Builder
	for _, c := range cards {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// Label returns the five card symbols of the hand.
func (h Hand) Label() string {
	return Label(h.Cards)
}

func (h Hand) String() string {
	return fmt.Sprintf("%s %d", h.Label(), h.Bet)
}
