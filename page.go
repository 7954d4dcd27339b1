package pagebrief

// FetchStrategy selects how a page is retrieved.
type FetchStrategy string

// Fetch strategies.
const (
	// StrategyStatic issues a direct HTTP GET.
	StrategyStatic FetchStrategy = "static"

	// StrategyRendered drives a headless browser and waits for
	// client-side rendering before serializing the DOM.
	StrategyRendered FetchStrategy = "rendered"
)

// Page represents a fetched web page. It is immutable once fetched and
// discarded after extraction.
type Page struct {
	URL      string
	HTML     string
	Strategy FetchStrategy
}
