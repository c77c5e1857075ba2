package main

import (
	"fmt"

	"github.com/fwojciec/filmoscope"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	count, err := deps.Articles.CountArticles(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", filmoscope.ErrorMessage(err))
		return err
	}

	maxID, err := deps.Articles.MaxID(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", filmoscope.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "articles: %d\n", count)
	fmt.Fprintf(deps.Stdout, "max id:   %d\n", maxID)

	return nil
}
