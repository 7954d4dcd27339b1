package mock

import "github.com/fwojciec/pagebrief"

var _ pagebrief.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagebrief.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*pagebrief.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*pagebrief.ExtractResult, error) {
	return e.ExtractFn(html)
}
