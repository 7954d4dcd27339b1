package pagebrief

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
//
// Extraction is best effort: malformed HTML degrades to partial content and
// a page with no body text yields an empty result, never an error.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
