// Package trafilatura implements boilerplate-stripping content extraction
// using go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pagebrief"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagebrief.Extractor at compile time.
var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content with boilerplate
// (nav, scripts, styles, ads) removed. Extraction is best effort: malformed
// input and pages with no readable body yield an empty result, not an error.
func (e *Extractor) Extract(rawHTML string) (*pagebrief.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagebrief.ExtractResult{}, nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		// Unextractable page degrades to empty content rather than
		// failing the pipeline.
		return &pagebrief.ExtractResult{}, nil
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, pagebrief.Errorf(pagebrief.EINTERNAL, "rendering extracted content: %v", err)
		}
	}

	return &pagebrief.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
