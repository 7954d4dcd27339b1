package pagebrief

import (
	"context"
	"iter"
)

// BriefService generates prose from web pages.
type BriefService interface {
	// Summarize returns a markdown summary of a single page.
	Summarize(ctx context.Context, url string) (string, error)

	// SummarizeStream is like Summarize but yields the summary
	// incrementally as it is generated.
	SummarizeStream(ctx context.Context, url string) iter.Seq2[string, error]

	// Brochure returns a markdown company brochure built from the landing
	// page and its relevant sub-pages.
	Brochure(ctx context.Context, company, url string) (string, error)

	// BrochureStream is like Brochure but yields the brochure
	// incrementally as it is generated.
	BrochureStream(ctx context.Context, company, url string) iter.Seq2[string, error]
}
