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

// positionsCmd holds the flags for the 'positions' subcommand.
type positionsCmd struct {
	dir string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "display the open positions with their average cost" }
func (*positionsCmd) Usage() string {
	return `cart positions [-dir <statements>]

  Replays the movement feed and prints the resulting open positions:
  quantity held, average acquisition cost and total cost basis per asset.
`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", ".", "Directory containing the B3 xlsx statement exports.")
}

func (c *positionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	movements, err := newDecoder().LoadMovements(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements from %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}

	ledger := carteira.NewLedger(nil)
	if err := ledger.ApplyAll(movements); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Positions(ledger))
	return subcommands.ExitSuccess
}
