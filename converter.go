package pagebrief

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Empty input yields an empty string, not an error.
	Convert(html string) (string, error)
}
