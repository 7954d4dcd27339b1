package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.BriefService = (*BriefService)(nil)

// BriefService is a mock implementation of pagebrief.BriefService.
type BriefService struct {
	SummarizeFn       func(ctx context.Context, url string) (string, error)
	SummarizeStreamFn func(ctx context.Context, url string) iter.Seq2[string, error]
	BrochureFn        func(ctx context.Context, company, url string) (string, error)
	BrochureStreamFn  func(ctx context.Context, company, url string) iter.Seq2[string, error]
}

func (s *BriefService) Summarize(ctx context.Context, url string) (string, error) {
	return s.SummarizeFn(ctx, url)
}

func (s *BriefService) SummarizeStream(ctx context.Context, url string) iter.Seq2[string, error] {
	return s.SummarizeStreamFn(ctx, url)
}

func (s *BriefService) Brochure(ctx context.Context, company, url string) (string, error) {
	return s.BrochureFn(ctx, company, url)
}

func (s *BriefService) BrochureStream(ctx context.Context, company, url string) iter.Seq2[string, error] {
	return s.BrochureStreamFn(ctx, company, url)
}
