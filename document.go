package pagebrief

import "unicode/utf8"

// DefaultMaxChars is the default aggregation budget in bytes of section text.
const DefaultMaxChars = 80000

// Section is one page's contribution to an aggregated document.
type Section struct {
	SourceURL string
	Text      string
}

// Document holds content aggregated from a seed page and its relevant
// sub-pages. Sections appear in priority order: the seed page is always
// first and is never truncated ahead of sub-page content.
//
// Invariant: TotalChars equals the sum of section text lengths and never
// exceeds the budget the document was created with.
type Document struct {
	Sections   []Section
	TotalChars int

	maxChars int
}

// NewDocument creates an empty document with the given character budget.
// A budget of zero or less falls back to DefaultMaxChars.
func NewDocument(maxChars int) *Document {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Document{maxChars: maxChars}
}

// MaxChars returns the document's character budget.
func (d *Document) MaxChars() int {
	return d.maxChars
}

// Full reports whether the budget is exhausted.
func (d *Document) Full() bool {
	return d.TotalChars >= d.maxChars
}

// Append adds a section, truncating its text to the remaining allowance.
// It returns true when the budget is now exhausted, which tells the caller
// to stop fetching further pages. A section that no longer fits at all is
// dropped. Empty text is ignored.
func (d *Document) Append(sourceURL, text string) (full bool) {
	if text == "" {
		return d.Full()
	}

	remaining := d.maxChars - d.TotalChars
	if remaining <= 0 {
		return true
	}

	if len(text) > remaining {
		text = truncateToRuneBoundary(text, remaining)
		if text == "" {
			return true
		}
	}

	d.Sections = append(d.Sections, Section{SourceURL: sourceURL, Text: text})
	d.TotalChars += len(text)
	return d.Full()
}

// truncateToRuneBoundary cuts s to at most n bytes without splitting a rune.
func truncateToRuneBoundary(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
