// Package brief orchestrates page aggregation and prose generation.
// It coordinates fetching, content extraction, link classification and
// prompt assembly for the summarize and brochure workflows.
package brief

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagebrief"
)

// Aggregator defaults.
const (
	// DefaultMaxPages bounds how many relevant sub-pages are fetched in
	// addition to the seed.
	DefaultMaxPages = 10

	// DefaultMinTextLen is the extracted-text length below which a static
	// fetch is considered thin and retried with the rendered fetcher.
	DefaultMinTextLen = 200
)

// Aggregator builds an aggregated document from a seed page and, optionally,
// the relevant sub-pages linked from it. Sub-page failures degrade; only the
// seed page is required to succeed.
type Aggregator struct {
	Static     pagebrief.Fetcher
	Rendered   pagebrief.Fetcher // optional; enables thin-content retry
	Extractor  pagebrief.Extractor
	Links      pagebrief.LinkSelector
	Converter  pagebrief.Converter
	Classifier pagebrief.LinkClassifier
	Limiter    pagebrief.DomainLimiter // optional
	Logger     *slog.Logger            // optional

	MaxPages    int             // <= 0 means DefaultMaxPages
	MaxChars    int             // <= 0 means pagebrief.DefaultMaxChars
	MinTextLen  int             // <= 0 means DefaultMinTextLen
	RetryDelays []time.Duration // nil means DefaultRetryDelays
}

// Aggregate fetches the seed page and assembles a Document from its content.
// When followLinks is true it also classifies the seed's links and appends
// relevant sub-pages, in classifier order, until the page or character budget
// is exhausted. A seed failure is returned as-is; sub-page failures are
// logged and skipped.
func (a *Aggregator) Aggregate(ctx context.Context, seedURL string, followLinks bool) (*pagebrief.Document, error) {
	if strings.TrimSpace(seedURL) == "" {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "seed URL required")
	}

	seedHTML, seedText, err := a.fetchPage(ctx, seedURL)
	if err != nil {
		return nil, fmt.Errorf("seed page %s: %w", seedURL, err)
	}

	doc := pagebrief.NewDocument(a.MaxChars)
	seen := make(map[uint64]bool)
	a.appendSection(doc, seen, seedURL, seedText)

	if !followLinks || doc.Full() {
		return doc, nil
	}

	relevant := a.relevantLinks(ctx, seedURL, seedHTML)

	maxPages := a.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}

	fetched := 0
	for _, link := range relevant {
		if fetched >= maxPages || doc.Full() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		_, text, err := a.fetchPage(ctx, link.URL)
		if err != nil {
			a.log("sub-page skipped", "url", link.URL, "category", link.Category, "err", err)
			continue
		}
		fetched++

		a.appendSection(doc, seen, link.URL, text)
	}

	return doc, nil
}

// relevantLinks extracts the seed page's links and asks the classifier which
// ones matter. Any failure along the way degrades to no sub-pages.
func (a *Aggregator) relevantLinks(ctx context.Context, seedURL, seedHTML string) []pagebrief.ClassifiedLink {
	candidates, err := a.Links.ExtractLinks(seedHTML, seedURL)
	if err != nil {
		a.log("link extraction failed", "url", seedURL, "err", err)
		return nil
	}
	if len(candidates) == 0 {
		return nil
	}

	relevant, err := a.Classifier.Classify(ctx, seedURL, candidates)
	if err != nil {
		a.log("link classification failed", "url", seedURL, "err", err)
		return nil
	}
	return relevant
}

// fetchPage fetches a URL and returns its raw HTML and extracted markdown
// text. A static fetch that yields thin content is retried with the rendered
// fetcher when one is configured.
func (a *Aggregator) fetchPage(ctx context.Context, pageURL string) (html, text string, err error) {
	html, err = a.fetchWith(ctx, a.Static, pageURL)
	if err != nil {
		if a.Rendered == nil {
			return "", "", err
		}
		a.log("static fetch failed, rendering", "url", pageURL, "err", err)
		html, err = a.fetchWith(ctx, a.Rendered, pageURL)
		if err != nil {
			return "", "", err
		}
	}

	text, err = a.extractText(html)
	if err != nil {
		return "", "", err
	}

	minLen := a.MinTextLen
	if minLen <= 0 {
		minLen = DefaultMinTextLen
	}
	if len(text) < minLen && a.Rendered != nil {
		rendered, rerr := a.fetchWith(ctx, a.Rendered, pageURL)
		if rerr != nil {
			a.log("rendered retry failed", "url", pageURL, "err", rerr)
			return html, text, nil
		}
		renderedText, rerr := a.extractText(rendered)
		if rerr == nil && len(renderedText) > len(text) {
			return rendered, renderedText, nil
		}
	}

	return html, text, nil
}

// fetchWith rate limits and fetches with backoff retry.
func (a *Aggregator) fetchWith(ctx context.Context, fetcher pagebrief.Fetcher, pageURL string) (string, error) {
	if a.Limiter != nil {
		u, err := url.Parse(pageURL)
		if err != nil {
			return "", pagebrief.Errorf(pagebrief.EINVALID, "invalid URL %q", pageURL)
		}
		if err := a.Limiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}

	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetchFn := func(ctx context.Context, url string) (string, error) {
		return fetcher.Fetch(ctx, url)
	}
	return FetchWithRetryDelays(ctx, pageURL, fetchFn, nil, delays)
}

// extractText runs extraction and markdown conversion on raw HTML.
func (a *Aggregator) extractText(html string) (string, error) {
	extracted, err := a.Extractor.Extract(html)
	if err != nil {
		return "", err
	}
	return a.Converter.Convert(extracted.ContentHTML)
}

// appendSection appends text to the document unless identical content was
// already appended from another URL.
func (a *Aggregator) appendSection(doc *pagebrief.Document, seen map[uint64]bool, sourceURL, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	hash := xxhash.Sum64String(text)
	if seen[hash] {
		a.log("duplicate content skipped", "url", sourceURL)
		return
	}
	seen[hash] = true
	doc.Append(sourceURL, text)
}

func (a *Aggregator) log(msg string, args ...any) {
	if a.Logger != nil {
		a.Logger.Info(msg, args...)
	}
}
