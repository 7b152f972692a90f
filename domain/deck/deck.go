package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"go.dedis.ch/kyber/v4/suites"

	"github.com/luca-patrignani/camel-cards/domain/camel"
)

// CopiesPerFace is how many cards of each face the deck holds.
const CopiesPerFace = 4

// DeckSize is the number of cards in a full deck.
const DeckSize = CopiesPerFace * camel.FaceCount

var suite suites.Suite = suites.MustFind("Ed25519")

// ErrEmpty is returned when the deck cannot deal a full hand.
var ErrEmpty = errors.New("not enough cards left in the deck")

// Deck is a shuffled set of camel cards dealt from the top.
type Deck struct {
	cards  []camel.Card
	stream cipher.Stream
}

// New creates a full deck shuffled with the suite's random stream.
func New() *Deck {
	return newDeck(suite.RandomStream())
}

// NewSeeded creates a full deck whose shuffles are driven by an XOF keyed
// with seed, so the same seed always deals the same cards.
func NewSeeded(seed []byte) *Deck {
	return newDeck(suite.XOF(seed))
}

func newDeck(stream cipher.Stream) *Deck {
	d := &Deck{stream: stream}
	d.Reset()
	return d
}

// Reset refills the deck with every card and shuffles it.
func (d *Deck) Reset() {
	d.cards = d.cards[:0]
	for _, c := range camel.AllCards() {
		for i := 0; i < CopiesPerFace; i++ {
			d.cards = append(d.cards, c)
		}
	}
	d.Shuffle()
}

// Shuffle performs a Fisher-Yates shuffle of the remaining cards.
func (d *Deck) Shuffle() {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := d.uniform(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

// Deal removes a hand of cards from the top of the deck.
func (d *Deck) Deal() ([camel.HandSize]camel.Card, error) {
	var hand [camel.HandSize]camel.Card
	if len(d.cards) < camel.HandSize {
		return hand, ErrEmpty
	}
	copy(hand[:], d.cards[len(d.cards)-camel.HandSize:])
	d.cards = d.cards[:len(d.cards)-camel.HandSize]
	return hand, nil
}

// uniform returns an integer in [0, n) read from the key stream, rejecting
// samples from the biased tail.
func (d *Deck) uniform(n int) int {
	bound := uint64(n)
	limit := ^uint64(0) - ^uint64(0)%bound
	var buf [8]byte
	for {
		clear(buf[:])
		d.stream.XORKeyStream(buf[:], buf[:])
		v := binary.BigEndian.Uint64(buf[:])
		if v < limit {
			return int(v % bound)
		}
	}
}

// Generate writes a random puzzle of n lines to w, with bets in 1..maxBet.
// The deck is reset whenever it runs out of cards.
func Generate(w io.Writer, d *Deck, n int, maxBet int) error {
	if n < 0 || maxBet < 1 {
		return fmt.Errorf("invalid puzzle size %d or max bet %d", n, maxBet)
	}
	for i := 0; i < n; i++ {
		if d.Remaining() < camel.HandSize {
			d.Reset()
		}
		hand, err := d.Deal()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s %d\n", camel.Label(hand), d.uniform(maxBet)+1); err != nil {
			return err
		}
	}
	return nil
}
