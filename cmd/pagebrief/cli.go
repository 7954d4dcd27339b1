package main

import (
	"context"
	"io"

	"github.com/fwojciec/pagebrief"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Service pagebrief.BriefService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Model      string `help:"Gemini model to use"`
	Verbose    bool   `short:"v" help:"Log pipeline progress to stderr"`
	StaticOnly bool   `help:"Never launch a browser; static HTTP fetches only"`
	NoCache    bool   `help:"Disable the local page cache"`
	MaxPages   int    `help:"Maximum sub-pages to aggregate for brochures"`
	MaxChars   int    `help:"Aggregated content budget in characters"`

	Summarize SummarizeCmd `cmd:"" help:"Summarize a single web page"`
	Brochure  BrochureCmd  `cmd:"" help:"Generate a company brochure from a landing page"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL    string `arg:"" help:"Page URL"`
	Stream bool   `short:"s" help:"Print output as it is generated"`
}

// BrochureCmd is the "brochure" subcommand.
type BrochureCmd struct {
	Company string `arg:"" help:"Company name"`
	URL     string `arg:"" help:"Landing page URL"`
	Stream  bool   `short:"s" help:"Print output as it is generated"`
	Out     string `short:"o" help:"Directory to save the brochure markdown to"`
}
