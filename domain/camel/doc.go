// Package camel implements Camel Cards, a poker-like game without suits
// where every hand is five cards and a bet.
//
// # Core Types
//
// Card: a face value 2-9, T, J, Q, K or A.
//
// Rules: the rank table used to break ties and the optional wildcard.
// JokerRules lets J stand in for any other face and ranks it lowest;
// StandardRules has no wildcard.
//
// Hand: five cards, a bet, the category and the tiebreak score.
//
// # Scoring
//
// Hands are ordered by category (high card up to five of a kind) and then
// by tiebreak, a base-13 encoding of the card ranks read left to right.
// Each hand's bet is multiplied by its 1-based position in that order and
// the products are summed into the total winnings.
package camel
