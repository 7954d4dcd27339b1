package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/fs"
)

// Run executes the brochure command.
func (c *BrochureCmd) Run(deps *Dependencies) error {
	var brochure string

	if c.Stream {
		var sb strings.Builder
		for chunk, err := range deps.Service.BrochureStream(deps.Ctx, c.Company, c.URL) {
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
				return err
			}
			fmt.Fprint(deps.Stdout, chunk)
			sb.WriteString(chunk)
		}
		fmt.Fprintln(deps.Stdout)
		brochure = sb.String()
	} else {
		var err error
		brochure, err = deps.Service.Brochure(deps.Ctx, c.Company, c.URL)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
			return err
		}
		fmt.Fprintln(deps.Stdout, brochure)
	}

	if c.Out == "" {
		return nil
	}

	path, err := fs.NewWriter(c.Out).Write(c.Company, brochure)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagebrief.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stderr, "Saved to %s\n", path)
	return nil
}
