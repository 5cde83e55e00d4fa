// Command budgetctl prints projections and the wishlist analysis from the
// configured database.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"

	"budgetcast/internal/logger"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(&projectCmd{}, "projections")
	commander.Register(&historyCmd{}, "projections")
	commander.Register(&wishlistCmd{}, "wishlist")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
