// Package cmd implements the CLI application to report on B3 statement
// exports.
package cmd

import "github.com/google/subcommands"

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "reports")
	c.Register(&positionsCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")
}
