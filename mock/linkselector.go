package mock

import "github.com/fwojciec/pagebrief"

var _ pagebrief.LinkSelector = (*LinkSelector)(nil)

// LinkSelector is a mock implementation of pagebrief.LinkSelector.
type LinkSelector struct {
	ExtractLinksFn func(html, baseURL string) ([]pagebrief.Link, error)
}

func (s *LinkSelector) ExtractLinks(html, baseURL string) ([]pagebrief.Link, error) {
	return s.ExtractLinksFn(html, baseURL)
}
