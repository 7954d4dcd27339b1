// Package goquery implements outbound-link collection using CSS selection
// over parsed HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagebrief"
)

// Ensure LinkSelector implements pagebrief.LinkSelector at compile time.
var _ pagebrief.LinkSelector = (*LinkSelector)(nil)

// LinkSelector collects every outbound anchor from a page. External hosts
// are kept: whether a link is worth following is the classifier's decision.
type LinkSelector struct{}

// NewLinkSelector creates a new LinkSelector.
func NewLinkSelector() *LinkSelector {
	return &LinkSelector{}
}

// ExtractLinks parses HTML and returns outbound links in document order.
// Relative hrefs are resolved against baseURL. Links are deduplicated by
// resolved URL, keeping the first occurrence and its anchor text.
func (s *LinkSelector) ExtractLinks(html string, baseURL string) ([]pagebrief.Link, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagebrief.Errorf(pagebrief.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]bool)
	var links []pagebrief.Link

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}

		// Skip non-HTTP links (javascript:, mailto:, etc.)
		if isNonHTTPLink(href) {
			return
		}

		resolved := resolveURL(base, href)
		if resolved == "" {
			return
		}

		if seen[resolved] {
			return
		}
		seen[resolved] = true

		links = append(links, pagebrief.Link{
			URL:  resolved,
			Text: strings.TrimSpace(sel.Text()),
		})
	})

	return links, nil
}

// resolveURL resolves a relative URL against a base URL.
// Returns empty string if the href cannot be parsed or if the resolved URL
// is self-referential (same as base URL after stripping fragment).
// Fragments are stripped from the resolved URL for deduplication purposes.
func resolveURL(base *url.URL, href string) string {
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	resolved := base.ResolveReference(ref)
	resolved.Fragment = "" // Strip fragment for deduplication

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}

	// Filter self-referential links (e.g., anchor-only links pointing to same page)
	result := resolved.String()
	baseNoFragment := *base
	baseNoFragment.Fragment = ""
	if result == baseNoFragment.String() {
		return ""
	}
	return result
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
