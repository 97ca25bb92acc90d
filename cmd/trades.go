package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/brlima/carteira"
	"github.com/brlima/carteira/renderer"
)

// tradesCmd holds the flags for the 'trades' subcommand.
type tradesCmd struct {
	dir string
}

func (*tradesCmd) Name() string     { return "trades" }
func (*tradesCmd) Synopsis() string { return "summarize the negotiation feed per asset" }
func (*tradesCmd) Usage() string {
	return `cart trades [-dir <statements>]

  Decodes the negotiation feed of every xlsx statement under the directory
  and prints per-asset totals: units and value bought and sold, and the net
  amount invested.
`
}

func (c *tradesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", ".", "Directory containing the B3 xlsx statement exports.")
}

func (c *tradesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trades, err := newDecoder().LoadTrades(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements from %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Trades(carteira.SummarizeTrades(trades)))
	return subcommands.ExitSuccess
}
