package camel

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCards reads exactly five card symbols.
func ParseCards(s string) ([HandSize]Card, error) {
	var cards [HandSize]Card
	runes := []rune(s)
	if len(runes) != HandSize {
		return cards, fmt.Errorf("%w: want %d cards, got %q", ErrMalformedLine, HandSize, s)
	}
	for i, r := range runes {
		c, err := ParseCard(r)
		if err != nil {
			return cards, err
		}
		cards[i] = c
	}
	return cards, nil
}

// ParseLine parses "<cards> <bet>", e.g. "32T3K 765".
func ParseLine(line string, r Rules) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	cards, err := ParseCards(fields[0])
	if err != nil {
		return Hand{}, err
	}
	bet, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: %q", ErrInvalidBet, fields[1])
	}
	return NewHand(cards, int(bet), r)
}

// ParseHands parses a whole puzzle, one hand per line. Blank lines are
// skipped and errors carry the 1-based line number.
func ParseHands(in io.Reader, r Rules) ([]Hand, error) {
	var hands []Hand
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := ParseLine(line, r)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		hands = append(hands, h)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading hands: %w", err)
	}
	return hands, nil
}
