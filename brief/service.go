package brief

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/pagebrief"
	"github.com/google/uuid"
)

var _ pagebrief.BriefService = (*Service)(nil)

// Service runs the summarize and brochure workflows end to end: aggregate
// page content, build a prompt, generate prose.
type Service struct {
	Aggregator *Aggregator
	Generator  pagebrief.Generator
	Logger     *slog.Logger // optional
}

// Summarize fetches a single page and returns a markdown summary of it.
// No sub-pages are followed.
func (s *Service) Summarize(ctx context.Context, url string) (string, error) {
	return s.generate(ctx, url, pagebrief.TaskSummarize, "", false)
}

// SummarizeStream is like Summarize but streams the summary as it is
// generated. Aggregation errors are delivered through the sequence.
func (s *Service) SummarizeStream(ctx context.Context, url string) iter.Seq2[string, error] {
	return s.generateStream(ctx, url, pagebrief.TaskSummarize, "", false)
}

// Brochure aggregates the company's landing page with its relevant
// sub-pages and returns a markdown brochure.
func (s *Service) Brochure(ctx context.Context, company, url string) (string, error) {
	return s.generate(ctx, url, pagebrief.TaskBrochure, company, true)
}

// BrochureStream is like Brochure but streams the brochure as it is
// generated. Aggregation errors are delivered through the sequence.
func (s *Service) BrochureStream(ctx context.Context, company, url string) iter.Seq2[string, error] {
	return s.generateStream(ctx, url, pagebrief.TaskBrochure, company, true)
}

func (s *Service) generate(ctx context.Context, url string, task pagebrief.Task, company string, followLinks bool) (string, error) {
	logger := s.runLogger()
	begin := time.Now()

	prompt, err := s.buildPrompt(ctx, logger, url, task, company, followLinks)
	if err != nil {
		return "", err
	}

	text, err := s.Generator.Complete(ctx, prompt)
	if err != nil {
		logger.Info("generation failed", "task", string(task), "err", err)
		return "", err
	}

	logger.Info("generated",
		"task", string(task),
		"url", url,
		"bytes", len(text),
		"duration", time.Since(begin),
	)
	return text, nil
}

func (s *Service) generateStream(ctx context.Context, url string, task pagebrief.Task, company string, followLinks bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		logger := s.runLogger()

		prompt, err := s.buildPrompt(ctx, logger, url, task, company, followLinks)
		if err != nil {
			yield("", err)
			return
		}

		for chunk, err := range s.Generator.Stream(ctx, prompt) {
			if !yield(chunk, err) {
				return
			}
		}
	}
}

func (s *Service) buildPrompt(ctx context.Context, logger *slog.Logger, url string, task pagebrief.Task, company string, followLinks bool) (pagebrief.Prompt, error) {
	doc, err := s.Aggregator.Aggregate(ctx, url, followLinks)
	if err != nil {
		logger.Info("aggregation failed", "url", url, "err", err)
		return pagebrief.Prompt{}, err
	}

	logger.Info("aggregated",
		"url", url,
		"pages", len(doc.Sections),
		"chars", doc.TotalChars,
	)
	return pagebrief.BuildPrompt(doc, task, company), nil
}

// runLogger returns a logger carrying a fresh run ID, so all log lines of a
// single invocation can be correlated.
func (s *Service) runLogger() *slog.Logger {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return logger.With("run_id", uuid.NewString())
}
