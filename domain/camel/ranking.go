package camel

import (
	"io"
	"slices"
)

// RankedHand is a hand with its 1-based position in the sorted puzzle.
type RankedHand struct {
	Hand
	Rank int
}

// Winnings is the bet weighted by the rank.
func (r RankedHand) Winnings() int {
	return r.Bet * r.Rank
}

// Rank sorts the hands from weakest to strongest and numbers them from 1.
// Equal hands keep their input order. The input slice is not modified.
func Rank(hands []Hand) []RankedHand {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, Hand.Compare)

	ranked := make([]RankedHand, len(sorted))
	for i, h := range sorted {
		ranked[i] = RankedHand{Hand: h, Rank: i + 1}
	}
	return ranked
}

// TotalWinnings sums bet * rank over the ranked hands.
func TotalWinnings(ranked []RankedHand) int {
	total := 0
	for _, r := range ranked {
		total += r.Winnings()
	}
	return total
}

// Solver runs the whole pipeline over a puzzle input.
type Solver struct {
	rules Rules
}

type option func(Solver) Solver

// NewSolver returns a Solver using JokerRules unless overridden.
func NewSolver(opts ...option) Solver {
	s := Solver{rules: JokerRules}
	for _, opt := range opts {
		s = opt(s)
	}
	return s
}

func WithRules(r Rules) option {
	return func(s Solver) Solver {
		s.rules = r
		return s
	}
}

// Rules returns the rules the solver evaluates hands with.
func (s Solver) Rules() Rules {
	return s.rules
}

// Solve parses, ranks and scores the puzzle, returning the ranked hands and
// the total winnings.
func (s Solver) Solve(in io.Reader) ([]RankedHand, int, error) {
	hands, err := ParseHands(in, s.rules)
	if err != nil {
		return nil, 0, err
	}
	ranked := Rank(hands)
	return ranked, TotalWinnings(ranked), nil
}
