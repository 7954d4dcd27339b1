package pagebrief

import "strings"

// DefaultModel is the model used when the caller does not specify one.
const DefaultModel = "gemini-2.5-flash"

// Config holds the credentials and defaults loaded once at process start.
// Its validity must be established before any fetch or LLM work begins.
type Config struct {
	// APIKey is the Gemini API credential.
	APIKey string

	// Model overrides DefaultModel when non-empty.
	Model string
}

// Validate returns an ECONFIG error if the configuration is unusable.
func (c Config) Validate() error {
	key := strings.TrimSpace(c.APIKey)
	if key == "" {
		return Errorf(ECONFIG, "API key required; set GEMINI_API_KEY")
	}
	if key != c.APIKey || strings.ContainsAny(key, "\n\r") {
		return Errorf(ECONFIG, "API key contains whitespace; check your .env file")
	}
	return nil
}

// ModelOrDefault returns the configured model, falling back to DefaultModel.
func (c Config) ModelOrDefault() string {
	if c.Model != "" {
		return c.Model
	}
	return DefaultModel
}
