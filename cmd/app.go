package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/brlima/carteira"
	"github.com/brlima/carteira/b3"
	"github.com/brlima/carteira/renderer"
)

// SetupLogging configures the global logger. Diagnostics go to stderr so
// report output on stdout stays clean.
func SetupLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}

// newDecoder creates a statement decoder wired to the global logger.
func newDecoder() *b3.Decoder {
	return b3.NewDecoder(log.Logger)
}

// printMarkdown renders a markdown report to the terminal. If the terminal
// renderer cannot be built, the raw markdown is printed instead.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// consoleReporter streams ledger events to w as they happen.
type consoleReporter struct {
	w io.Writer
}

func (r consoleReporter) Disposal(e carteira.DisposalEvent) {
	fmt.Fprint(r.w, renderer.Disposal(e))
}

func (r consoleReporter) Distribution(e carteira.DistributionEvent) {
	fmt.Fprint(r.w, renderer.Distribution(e))
}
