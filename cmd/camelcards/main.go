package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/luca-patrignani/camel-cards/domain/camel"
	"github.com/luca-patrignani/camel-cards/domain/deck"
)

func main() {
	if err := execute(newRootCmd()); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree and logs any failure, including cobra's
// own argument and flag errors.
func execute(root *cobra.Command) error {
	err := root.Execute()
	if err != nil {
		newLogger(root.ErrOrStderr(), false).Error("camelcards failed", "error", err)
	}
	return err
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(level).WithWriter(w))
	return slog.New(handler)
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "camelcards",
		Short:         "Rank Camel Cards hands and compute the total winnings",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	logger := func(cmd *cobra.Command) *slog.Logger {
		return newLogger(cmd.ErrOrStderr(), verbose)
	}
	root.AddCommand(newSolveCmd(logger), newGenerateCmd(logger))
	return root
}

func newSolveCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var rulesName string
	var table bool
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the total winnings of a puzzle read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)
			rules, err := camel.RulesByName(rulesName)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening puzzle: %w", err)
				}
				defer f.Close()
				in = f
			}

			ranked, total, err := camel.NewSolver(camel.WithRules(rules)).Solve(in)
			if err != nil {
				return fmt.Errorf("parsing puzzle: %w", err)
			}
			log.Debug("puzzle ranked", "hands", len(ranked), "rules", rules.String())

			if table {
				out, err := renderRanking(ranked, rules)
				if err != nil {
					return fmt.Errorf("rendering ranking: %w", err)
				}
				fmt.Fprint(cmd.ErrOrStderr(), out)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), total)
			return err
		},
	}
	cmd.Flags().StringVarP(&rulesName, "rules", "r", camel.JokerRules.String(), "rule set: joker or standard")
	cmd.Flags().BoolVarP(&table, "table", "t", false, "render the ranked hands")
	return cmd
}

func newGenerateCmd(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var hands, maxBet int
	var seed string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random puzzle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)
			d := deck.New()
			if seed != "" {
				d = deck.NewSeeded([]byte(seed))
			}
			log.Debug("generating puzzle", "hands", hands, "maxBet", maxBet, "seeded", seed != "")
			if err := deck.Generate(cmd.OutOrStdout(), d, hands, maxBet); err != nil {
				return fmt.Errorf("generating puzzle: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&hands, "hands", "n", 1000, "number of hands")
	cmd.Flags().IntVar(&maxBet, "max-bet", 1000, "largest bet")
	cmd.Flags().StringVar(&seed, "seed", "", "seed for a reproducible puzzle")
	return cmd
}
