package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/pagebrief"
	"google.golang.org/genai"
)

// Classification defaults.
const (
	// DefaultMaxCandidates caps how many links are offered to the model,
	// keeping the prompt within context limits on link-heavy pages.
	DefaultMaxCandidates = 100

	// DefaultMaxRelevant caps how many classified links survive filtering.
	DefaultMaxRelevant = 10
)

const classifySystemPrompt = "You are provided with a list of links found on a webpage. " +
	"You decide which of the links are most relevant to include in a brochure about the company, " +
	"such as links to an About page, a Company page, or Careers/Jobs pages. " +
	"Exclude navigational noise: login pages, Terms of Service, Privacy policies, " +
	"social media profiles and email links. " +
	`Respond in JSON as in this example:
{
    "links": [
        {"category": "about page", "url": "https://full.url/goes/here/about"},
        {"category": "careers page", "url": "https://another.full.url/careers"}
    ]
}
If no relevant links are found, respond with {"links": []}.`

// Ensure Classifier implements pagebrief.LinkClassifier at compile time.
var _ pagebrief.LinkClassifier = (*Classifier)(nil)

// Classifier implements pagebrief.LinkClassifier using Google Gemini.
// The model's reply is treated as untrusted input: it is parsed strictly,
// filtered against the offered candidate set, and capped.
type Classifier struct {
	client        *genai.Client
	model         string
	maxCandidates int
	maxRelevant   int
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithMaxCandidates caps how many candidate links are sent to the model.
func WithMaxCandidates(n int) ClassifierOption {
	return func(c *Classifier) {
		c.maxCandidates = n
	}
}

// WithMaxRelevant caps how many relevant links are returned.
func WithMaxRelevant(n int) ClassifierOption {
	return func(c *Classifier) {
		c.maxRelevant = n
	}
}

// NewClassifier creates a new Classifier. An empty model falls back to
// pagebrief.DefaultModel.
func NewClassifier(client *genai.Client, model string, opts ...ClassifierOption) *Classifier {
	if model == "" {
		model = pagebrief.DefaultModel
	}
	c := &Classifier{
		client:        client,
		model:         model,
		maxCandidates: DefaultMaxCandidates,
		maxRelevant:   DefaultMaxRelevant,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify asks the model which candidate links belong in a brochure.
// Hallucinated URLs never survive: the parsed reply is filtered to the
// exact candidate set, de-duplicated and capped. An unparseable reply is
// an EPARSE error; callers treat any error here as "no relevant links".
func (c *Classifier) Classify(ctx context.Context, seedURL string, candidates []pagebrief.Link) ([]pagebrief.ClassifiedLink, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if len(candidates) > c.maxCandidates {
		candidates = candidates[:c.maxCandidates]
	}

	temp := float32(0.2)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: classifySystemPrompt}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema:   classifySchema(),
	}

	prompt := BuildClassifyPrompt(seedURL, candidates)
	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		cfg,
	)
	if err != nil {
		return nil, mapError(err)
	}
	if result == nil {
		return nil, pagebrief.Errorf(pagebrief.EINTERNAL, "gemini returned nil result")
	}

	parsed, err := ParseClassifyReply(result.Text())
	if err != nil {
		return nil, err
	}

	return pagebrief.FilterClassified(parsed, candidates, c.maxRelevant), nil
}

// BuildClassifyPrompt builds the user prompt listing candidate links.
func BuildClassifyPrompt(seedURL string, candidates []pagebrief.Link) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Here is the list of links on the website %s - ", seedURL)
	sb.WriteString("please decide which of these are relevant web links for a brochure about the company. ")
	sb.WriteString("Respond with the full https URLs in JSON format.\n")
	sb.WriteString("Links:\n")
	for _, cand := range candidates {
		if cand.Text != "" {
			fmt.Fprintf(&sb, "%s (%s)\n", cand.URL, cand.Text)
		} else {
			sb.WriteString(cand.URL + "\n")
		}
	}
	return sb.String()
}

// ParseClassifyReply parses the model's JSON reply. Markdown code fences are
// tolerated; anything else unparseable yields an EPARSE error so the caller
// can degrade to an empty relevant set.
func ParseClassifyReply(raw string) ([]pagebrief.ClassifiedLink, error) {
	raw = stripCodeFence(raw)
	if strings.TrimSpace(raw) == "" {
		return nil, pagebrief.Errorf(pagebrief.EPARSE, "empty classification reply")
	}

	var reply struct {
		Links []struct {
			Category string `json:"category"`
			URL      string `json:"url"`
		} `json:"links"`
	}
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, pagebrief.Errorf(pagebrief.EPARSE, "unparseable classification reply: %v", err)
	}

	out := make([]pagebrief.ClassifiedLink, 0, len(reply.Links))
	for _, l := range reply.Links {
		if l.URL == "" {
			continue
		}
		out = append(out, pagebrief.ClassifiedLink{URL: l.URL, Category: l.Category})
	}
	return out, nil
}

// classifySchema constrains the model to the expected JSON shape.
func classifySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"links": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": {Type: genai.TypeString},
						"url":      {Type: genai.TypeString},
					},
					Required: []string{"url"},
				},
			},
		},
		Required: []string{"links"},
	}
}

// stripCodeFence removes a surrounding markdown code fence if present.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
