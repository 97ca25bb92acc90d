// Package renderer formats ledger events and end-of-run reports. Event
// lines are plain text meant for streaming output; reports are markdown
// strings the caller renders to the terminal.
package renderer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/brlima/carteira"
)

// brl formats an amount in Brazilian reais.
func brl(v float64) string {
	cents := int64(math.Round(v * 100))
	return money.New(cents, money.BRL).Display()
}

// quantity formats a unit count with no trailing zeros.
func quantity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Disposal formats one realized-profit event with the running totals, in
// the statement-log style of the tool's output.
func Disposal(e carteira.DisposalEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SOLD %-7s %s %14s\n", e.Asset, e.Date, brl(e.Profit))
	fmt.Fprintf(&b, "Profit:       %14s\n", brl(e.TotalProfit))
	fmt.Fprintf(&b, "Distributions:%14s\n\n", brl(e.TotalDistributions))
	return b.String()
}

// Distribution formats one distribution-income event with the running totals.
func Distribution(e carteira.DistributionEvent) string {
	var b strings.Builder
	fmt.Fprintf(&b, "DIV  %-7s %s %14s\n", e.Asset, e.Date, brl(e.Amount))
	fmt.Fprintf(&b, "Profit:       %14s\n", brl(e.TotalProfit))
	fmt.Fprintf(&b, "Distributions:%14s\n\n", brl(e.TotalDistributions))
	return b.String()
}

// Summary renders the end-of-run totals as markdown.
func Summary(s carteira.Summary) string {
	var b strings.Builder
	b.WriteString("## Totals\n\n")
	b.WriteString("| | |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Realized profit | %s |\n", brl(s.TotalProfit))
	fmt.Fprintf(&b, "| Distribution income | %s |\n", brl(s.TotalDistributions))
	return b.String()
}

// Positions renders the ledger's open positions as a markdown table.
// Fully closed positions are skipped.
func Positions(l *carteira.Ledger) string {
	var b strings.Builder
	b.WriteString("## Positions\n\n")
	b.WriteString("| Asset | Quantity | Average cost | Total cost |\n")
	b.WriteString("|---|---:|---:|---:|\n")

	for asset, p := range l.Positions() {
		if p.Quantity == 0 {
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			asset, quantity(p.Quantity), brl(p.AverageCost), brl(p.TotalCost))
	}
	return b.String()
}

// Trades renders per-asset negotiation summaries as a markdown table.
func Trades(summaries []carteira.TradeSummary) string {
	var b strings.Builder
	b.WriteString("## Trades\n\n")
	b.WriteString("| Asset | Bought | Sold | Total bought | Total sold | Net invested |\n")
	b.WriteString("|---|---:|---:|---:|---:|---:|\n")

	for _, s := range summaries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			s.Asset, s.BoughtQty, s.SoldQty,
			s.Bought.StringFixed(2), s.Sold.StringFixed(2), s.NetInvested.StringFixed(2))
	}
	return b.String()
}
