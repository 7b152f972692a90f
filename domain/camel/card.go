package camel

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Face is one of the 13 camel card values. The zero value is Two and the
// enumeration follows the natural (standard rules) order.
type Face uint8

const (
	Two Face = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// FaceCount is the number of distinct faces.
const FaceCount = 13

const faceSymbols = "23456789TJQKA"

// Faces lists every face in natural order.
var Faces = [FaceCount]Face{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// AllCards returns one card of every face in natural order.
func AllCards() [FaceCount]Card {
	var cards [FaceCount]Card
	for i, f := range Faces {
		cards[i] = Card{face: f}
	}
	return cards
}

// Card is a single camel card. Cards carry no suit.
type Card struct {
	face Face
}

// NewCard creates a Card from a face, rejecting values outside the enumeration.
func NewCard(f Face) (Card, error) {
	if f >= FaceCount {
		return Card{}, fmt.Errorf("invalid face %d", f)
	}
	return Card{face: f}, nil
}

// ParseCard converts a single symbol (2-9, T, J, Q, K, A) into a Card.
func ParseCard(r rune) (Card, error) {
	for i, s := range faceSymbols {
		if s == r {
			return Card{face: Face(i)}, nil
		}
	}
	return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, r)
}

// Face returns the face value of the card.
func (c Card) Face() Face {
	return c.face
}

func (f Face) String() string {
	if f >= FaceCount {
		return "?"
	}
	return string(faceSymbols[f])
}

func (c Card) String() string {
	return c.face.String()
}

// Pretty renders the card for terminal output, highlighting the wildcard
// of the given rules.
func (c Card) Pretty(r Rules) string {
	if r.IsWild(c) {
		return pterm.LightMagenta(c.String())
	}
	if c.face >= Jack {
		return pterm.LightRed(c.String())
	}
	return pterm.LightWhite(c.String())
}
