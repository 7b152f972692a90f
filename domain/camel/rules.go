package camel

import "fmt"

// Rules fixes the rank table used for tiebreaks and the optional wildcard.
type Rules struct {
	name  string
	order [FaceCount]Face // lowest rank first
	wild  Face
	joker bool
	rank  [FaceCount]int
}

func newRules(name string, order [FaceCount]Face, wild Face, joker bool) Rules {
	r := Rules{name: name, order: order, wild: wild, joker: joker}
	for i, f := range order {
		r.rank[f] = i
	}
	return r
}

var (
	// JokerRules ranks J lowest and lets it impersonate any other face.
	JokerRules = newRules("joker",
		[FaceCount]Face{Jack, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Queen, King, Ace},
		Jack, true)
	// StandardRules has no wildcard and ranks J between T and Q.
	StandardRules = newRules("standard", Faces, 0, false)
)

// RulesByName resolves "joker" or "standard".
func RulesByName(name string) (Rules, error) {
	switch name {
	case JokerRules.name:
		return JokerRules, nil
	case StandardRules.name:
		return StandardRules, nil
	default:
		return Rules{}, fmt.Errorf("unknown rules %q", name)
	}
}

func (r Rules) String() string {
	return r.name
}

// Rank returns the position of the card in the rank table, 0 being the lowest.
func (r Rules) Rank(c Card) int {
	return r.rank[c.face]
}

// IsWild reports whether the card acts as a joker under these rules.
func (r Rules) IsWild(c Card) bool {
	return r.joker && c.face == r.wild
}

// Wildcard returns the wildcard face, if any.
func (r Rules) Wildcard() (Face, bool) {
	return r.wild, r.joker
}
