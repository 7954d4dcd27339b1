// Package fs persists generated markdown to disk.
package fs

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/fwojciec/pagebrief"
)

var _ pagebrief.BrochureWriter = (*Writer)(nil)

// Writer writes generated briefs as markdown files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Write saves markdown content under a name derived from the given title
// (e.g., "Acme Corp" → acme_corp_brochure.md) and returns the full path.
func (w *Writer) Write(title, content string) (string, error) {
	if strings.TrimSpace(title) == "" {
		return "", pagebrief.Errorf(pagebrief.EINVALID, "title required")
	}

	path := filepath.Join(w.baseDir, Filename(title))

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", pagebrief.Errorf(pagebrief.EINTERNAL, "creating %s: %v", w.baseDir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", pagebrief.Errorf(pagebrief.EINTERNAL, "writing %s: %v", path, err)
	}

	return path, nil
}

// Filename derives a safe markdown filename from a title.
// Non-alphanumeric runes collapse to underscores.
func Filename(title string) string {
	var sb strings.Builder
	prevUnderscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevUnderscore = false
		} else if !prevUnderscore {
			sb.WriteRune('_')
			prevUnderscore = true
		}
	}
	name := strings.Trim(sb.String(), "_")
	if name == "" {
		name = "untitled"
	}
	return name + "_brochure.md"
}
