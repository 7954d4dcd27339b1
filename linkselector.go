package pagebrief

// Link represents an outbound anchor discovered on a page.
type Link struct {
	// URL is the absolute URL after resolution against the page URL.
	URL string

	// Text is the trimmed anchor text.
	Text string
}

// LinkSelector collects outbound links from HTML.
type LinkSelector interface {
	// ExtractLinks parses HTML and returns outbound links in document
	// order, de-duplicated by URL. Relative hrefs are resolved against
	// baseURL; javascript:, mailto:, tel: and anchor-only links are
	// skipped. External hosts are kept; relevance is the classifier's
	// call, not the selector's.
	ExtractLinks(html string, baseURL string) ([]Link, error)
}
