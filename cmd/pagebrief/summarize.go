package main

import (
	"fmt"

	"github.com/fwojciec/pagebrief"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	if c.Stream {
		for chunk, err := range deps.Service.SummarizeStream(deps.Ctx, c.URL) {
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
				return err
			}
			fmt.Fprint(deps.Stdout, chunk)
		}
		fmt.Fprintln(deps.Stdout)
		return nil
	}

	summary, err := deps.Service.Summarize(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, summary)
	return nil
}
