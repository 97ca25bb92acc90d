package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"github.com/brlima/carteira/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()
	cmd.SetupLogging(*verbose)

	os.Exit(int(commander.Execute(context.Background())))
}
