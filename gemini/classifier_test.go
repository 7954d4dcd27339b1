package gemini_test

import (
	"testing"

	"github.com/fwojciec/pagebrief"
	"github.com/fwojciec/pagebrief/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildClassifyPrompt_ListsCandidates(t *testing.T) {
	t.Parallel()

	candidates := []pagebrief.Link{
		{URL: "https://example.com/about", Text: "About"},
		{URL: "https://example.com/careers", Text: ""},
	}

	prompt := gemini.BuildClassifyPrompt("https://example.com", candidates)

	assert.Contains(t, prompt, "https://example.com/about (About)")
	assert.Contains(t, prompt, "https://example.com/careers\n")
	assert.Contains(t, prompt, "brochure")
}

func TestParseClassifyReply_ValidJSON(t *testing.T) {
	t.Parallel()

	raw := `{"links":[{"category":"about page","url":"https://example.com/about"},{"category":"careers page","url":"https://example.com/careers"}]}`

	links, err := gemini.ParseClassifyReply(raw)

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "https://example.com/about", links[0].URL)
	assert.Equal(t, "about page", links[0].Category)
}

func TestParseClassifyReply_ToleratesCodeFence(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"links\":[{\"category\":\"about page\",\"url\":\"https://example.com/about\"}]}\n```"

	links, err := gemini.ParseClassifyReply(raw)

	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "https://example.com/about", links[0].URL)
}

func TestParseClassifyReply_EmptyLinks(t *testing.T) {
	t.Parallel()

	links, err := gemini.ParseClassifyReply(`{"links":[]}`)

	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestParseClassifyReply_SkipsEntriesWithoutURL(t *testing.T) {
	t.Parallel()

	links, err := gemini.ParseClassifyReply(`{"links":[{"category":"about page"}]}`)

	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestParseClassifyReply_MalformedIsParseError(t *testing.T) {
	t.Parallel()

	_, err := gemini.ParseClassifyReply("The relevant links are /about and /careers.")

	require.Error(t, err)
	assert.Equal(t, pagebrief.EPARSE, pagebrief.ErrorCode(err))
}

func TestParseClassifyReply_EmptyReplyIsParseError(t *testing.T) {
	t.Parallel()

	_, err := gemini.ParseClassifyReply("")

	require.Error(t, err)
	assert.Equal(t, pagebrief.EPARSE, pagebrief.ErrorCode(err))
}
