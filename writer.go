package pagebrief

// BrochureWriter persists generated brochures.
type BrochureWriter interface {
	// Write stores the brochure content under a name derived from the
	// company title and returns the path it was written to.
	Write(title, content string) (string, error)
}
