package main

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/camel-cards/domain/camel"
)

func prettyHand(h camel.Hand, r camel.Rules) string {
	var sb strings.Builder
	for _, c := range h.Cards {
		sb.WriteString(c.Pretty(r))
	}
	return sb.String()
}

func renderRanking(ranked []camel.RankedHand, r camel.Rules) (string, error) {
	data := pterm.TableData{{"Rank", "Hand", "Category", "Bet", "Winnings"}}
	for _, h := range ranked {
		data = append(data, []string{
			strconv.Itoa(h.Rank),
			prettyHand(h.Hand, r),
			h.Category.String(),
			strconv.Itoa(h.Bet),
			strconv.Itoa(h.Winnings()),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(data).Srender()
	if err != nil {
		return "", err
	}
	caption := "Total winnings: " + strconv.Itoa(camel.TotalWinnings(ranked))
	if wild, ok := r.Wildcard(); ok {
		caption += " | Wildcard: " + wild.String()
	}
	return table + "\n" + pterm.LightGreen(caption) + "\n", nil
}
