// Package gemini implements the LLM-backed interfaces (pagebrief.Generator
// and pagebrief.LinkClassifier) using Google Gemini.
package gemini

import (
	"context"
	"iter"

	"github.com/fwojciec/pagebrief"
	"google.golang.org/genai"
)

// Generation defaults.
const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
)

// Ensure Generator implements pagebrief.Generator at compile time.
var _ pagebrief.Generator = (*Generator)(nil)

// Generator implements pagebrief.Generator using Google Gemini.
type Generator struct {
	client      *genai.Client
	model       string
	temperature float32
	maxTokens   int32
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float32) GeneratorOption {
	return func(g *Generator) {
		g.temperature = t
	}
}

// WithMaxTokens overrides the output token limit.
func WithMaxTokens(n int32) GeneratorOption {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

// NewGenerator creates a new Generator. An empty model falls back to
// pagebrief.DefaultModel.
func NewGenerator(client *genai.Client, model string, opts ...GeneratorOption) *Generator {
	if model == "" {
		model = pagebrief.DefaultModel
	}
	g := &Generator{
		client:      client,
		model:       model,
		temperature: defaultTemperature,
		maxTokens:   defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Complete blocks until the model has produced the full text.
func (g *Generator) Complete(ctx context.Context, prompt pagebrief.Prompt) (string, error) {
	if prompt.User == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "prompt user text required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents(prompt), g.config(prompt))
	if err != nil {
		return "", mapError(err)
	}
	if result == nil {
		return "", pagebrief.Errorf(pagebrief.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// Stream yields the generated text as ordered fragments. The sequence ends
// when the model signals completion or on the first error; abandoning the
// iteration stops the underlying stream.
func (g *Generator) Stream(ctx context.Context, prompt pagebrief.Prompt) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if prompt.User == "" {
			yield("", pagebrief.Errorf(pagebrief.EINVALID, "prompt user text required"))
			return
		}

		for resp, err := range g.client.Models.GenerateContentStream(ctx, g.model, contents(prompt), g.config(prompt)) {
			if err != nil {
				yield("", mapError(err))
				return
			}
			fragment := resp.Text()
			if fragment == "" {
				continue
			}
			if !yield(fragment, nil) {
				return
			}
		}
	}
}

// contents wraps the user message for the API.
func contents(prompt pagebrief.Prompt) []*genai.Content {
	return []*genai.Content{{
		Parts: []*genai.Part{{Text: prompt.User}},
	}}
}

// config builds the generation config, carrying the system message.
func (g *Generator) config(prompt pagebrief.Prompt) *genai.GenerateContentConfig {
	temp := g.temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: g.maxTokens,
	}
	if prompt.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: prompt.System}},
		}
	}
	return cfg
}
