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

// reportCmd holds the flags for the 'report' subcommand.
type reportCmd struct {
	dir string
}

func (*reportCmd) Name() string { return "report" }
func (*reportCmd) Synopsis() string {
	return "replay the movement feed and report realized profit and distributions"
}
func (*reportCmd) Usage() string {
	return `cart report [-dir <statements>]

  Decodes every xlsx statement under the directory, folds the movement feed
  through the average-cost ledger in chronological order, and prints one
  line per disposal and per distribution, followed by the run totals.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.dir, "dir", ".", "Directory containing the B3 xlsx statement exports.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	movements, err := newDecoder().LoadMovements(c.dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading statements from %q: %v\n", c.dir, err)
		return subcommands.ExitFailure
	}

	ledger := carteira.NewLedger(consoleReporter{w: os.Stdout})
	if err := ledger.ApplyAll(movements); err != nil {
		// A contract violation in the feed aborts the run.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Summary(ledger.Summary()))
	return subcommands.ExitSuccess
}
