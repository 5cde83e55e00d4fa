package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type projectCmd struct {
	months int
	json   bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "project the coming months" }
func (*projectCmd) Usage() string {
	return `project [-months N] [-json]

  Prints income, expenses and the running balance month by month, starting
  with the current month. The horizon defaults to the projection_months setting.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 0, "number of months to project (1-120)")
	f.BoolVar(&c.json, "json", false, "print JSON instead of a table")
}

func (c *projectCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	var months *int
	if c.months != 0 {
		months = &c.months
	}
	series, err := a.projections.Forward(ctx, months)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := printJSON(os.Stdout, series); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(projectionMarkdown("Projection", series, a.currency(ctx)))
	return subcommands.ExitSuccess
}

type historyCmd struct {
	json bool
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "replay past months up to today" }
func (*historyCmd) Usage() string {
	return `history [-json]

  Prints every month from the earliest record through the current month.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print JSON instead of a table")
}

func (c *historyCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	series, err := a.projections.History(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error projecting: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := printJSON(os.Stdout, series); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(projectionMarkdown("History", series, a.currency(ctx)))
	return subcommands.ExitSuccess
}

type wishlistCmd struct {
	json bool
}

func (*wishlistCmd) Name() string     { return "wishlist" }
func (*wishlistCmd) Synopsis() string { return "show when wishlist items become affordable" }
func (*wishlistCmd) Usage() string {
	return `wishlist [-json]

  Prints each unpurchased wishlist item with the month it becomes affordable.
`
}

func (c *wishlistCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print JSON instead of a table")
}

func (c *wishlistCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := openApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	analysis, err := a.projections.AnalyzeWishlist(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error analyzing wishlist: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.json {
		if err := printJSON(os.Stdout, analysis); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(wishlistMarkdown(analysis, a.currency(ctx), a.dateFormat(ctx)))
	return subcommands.ExitSuccess
}
