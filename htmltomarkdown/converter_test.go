package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Converter implements pagebrief.Converter at compile time.
var _ pagebrief.Converter = (*htmltomarkdown.Converter)(nil)

func TestConverter_Convert_Headings(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert("<h1>About Acme</h1><p>We make widgets.</p>")

	require.NoError(t, err)
	assert.Contains(t, md, "# About Acme")
	assert.Contains(t, md, "We make widgets.")
}

func TestConverter_Convert_Links(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert(`<p>See our <a href="https://example.com/careers">careers page</a>.</p>`)

	require.NoError(t, err)
	assert.Contains(t, md, "[careers page](https://example.com/careers)")
}

func TestConverter_Convert_EmptyInput(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert("   \n ")

	require.NoError(t, err)
	assert.Empty(t, md)
}

func TestConverter_Convert_PlainTextPassesThrough(t *testing.T) {
	t.Parallel()

	md, err := htmltomarkdown.NewConverter().Convert("just text")

	require.NoError(t, err)
	assert.Equal(t, "just text", md)
}
