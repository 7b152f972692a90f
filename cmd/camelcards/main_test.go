package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/luca-patrignani/camel-cards/domain/camel"
)

const example = "32T3K 765\nT55J5 684\nKK677 28\nKTJJT 220\nQQQJA 483\n"

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := execute(cmd)
	return out.String(), errOut.String(), err
}

func TestSolveStdin(t *testing.T) {
	out, _, err := run(t, example, "solve")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "5905" {
		t.Fatalf("expected 5905, got %q", out)
	}
}

func TestSolveStandardRules(t *testing.T) {
	out, _, err := run(t, example, "solve", "--rules", "standard")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "6440" {
		t.Fatalf("expected 6440, got %q", out)
	}
}

func TestSolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte(example), 0o600); err != nil {
		t.Fatal(err)
	}
	out, errOut, err := run(t, "", "solve", "--table", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "5905" {
		t.Fatalf("expected 5905, got %q", out)
	}
	if !strings.Contains(errOut, "Four of a kind") {
		t.Fatalf("expected ranking table on stderr, got %q", errOut)
	}
	if !strings.Contains(errOut, "Wildcard: J") {
		t.Fatalf("expected wildcard caption on stderr, got %q", errOut)
	}
}

func TestSolveMalformed(t *testing.T) {
	_, _, err := run(t, "32T3K seven\n", "solve")
	if err == nil {
		t.Fatal("expected error for malformed bet")
	}
}

func TestSolveReportsCommandErrors(t *testing.T) {
	tests := [][]string{
		{"solve", "a", "b"},
		{"solve", "--bogus"},
		{"shuffle"},
		{"solve", filepath.Join(t.TempDir(), "missing.txt")},
	}
	for _, args := range tests {
		_, errOut, err := run(t, "", args...)
		if err == nil {
			t.Fatalf("%v: expected error", args)
		}
		if !strings.Contains(errOut, "camelcards failed") {
			t.Fatalf("%v: expected %q logged on stderr, got %q", args, err, errOut)
		}
	}
}

func TestSolveStandardTableHasNoWildcard(t *testing.T) {
	_, errOut, err := run(t, example, "solve", "--rules", "standard", "--table")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(errOut, "Wildcard") {
		t.Fatalf("expected no wildcard caption, got %q", errOut)
	}
}

func TestSolveUnknownRules(t *testing.T) {
	_, _, err := run(t, example, "solve", "--rules", "wild")
	if err == nil {
		t.Fatal("expected error for unknown rules")
	}
}

func TestGenerateThenSolve(t *testing.T) {
	puzzle, _, err := run(t, "", "generate", "--hands", "50", "--seed", "camel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	hands, err := camel.ParseHands(strings.NewReader(puzzle), camel.JokerRules)
	if err != nil {
		t.Fatal(err)
	}
	if len(hands) != 50 {
		t.Fatalf("expected 50 hands, got %d", len(hands))
	}
	again, _, err := run(t, "", "generate", "--hands", "50", "--seed", "camel")
	if err != nil {
		t.Fatal(err)
	}
	if again != puzzle {
		t.Fatal("expected seeded puzzles to match")
	}
	if _, _, err := run(t, puzzle, "solve"); err != nil {
		t.Fatalf("generated puzzle failed to solve: %v", err)
	}
}
