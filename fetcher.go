package pagebrief

import "context"

// Fetcher retrieves raw HTML from URLs. One implementation exists per
// FetchStrategy; strategy selection is the aggregator's responsibility.
//
// Fetchers do not retry. Retry policy belongs to the caller.
type Fetcher interface {
	// Fetch retrieves the HTML for the URL.
	// The context controls timeout and cancellation.
	//
	// Errors carry a fetch code: ENETWORK, ETIMEOUT, EBLOCKED or ERENDER.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any underlying resources (e.g., a browser process).
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
