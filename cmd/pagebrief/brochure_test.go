package main_test

import (
	"bytes"
	"context"
	"iter"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagebrief"
	main "github.com/fwojciec/pagebrief/cmd/pagebrief"
	"github.com/fwojciec/pagebrief/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrochureCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the brochure", func(t *testing.T) {
		t.Parallel()

		service := &mock.BriefService{
			BrochureFn: func(_ context.Context, company, url string) (string, error) {
				if company == "Acme" && url == "https://acme.test" {
					return "# Acme\n\nWidgets for everyone.", nil
				}
				return "", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Service: service,
		}

		cmd := &main.BrochureCmd{Company: "Acme", URL: "https://acme.test"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Widgets for everyone.")
	})

	t.Run("saves the brochure when an output directory is given", func(t *testing.T) {
		t.Parallel()

		service := &mock.BriefService{
			BrochureFn: func(_ context.Context, company, url string) (string, error) {
				return "# Acme\n\nWidgets for everyone.", nil
			},
		}

		dir := t.TempDir()
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Service: service,
		}

		cmd := &main.BrochureCmd{Company: "Acme", URL: "https://acme.test", Out: dir}
		err := cmd.Run(deps)

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(dir, "acme_brochure.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Acme\n\nWidgets for everyone.", string(content))
		assert.Contains(t, stderr.String(), "Saved to")
	})

	t.Run("saves the full streamed brochure", func(t *testing.T) {
		t.Parallel()

		service := &mock.BriefService{
			BrochureStreamFn: func(_ context.Context, company, url string) iter.Seq2[string, error] {
				return func(yield func(string, error) bool) {
					for _, chunk := range []string{"# Acme\n\n", "Widgets ", "for everyone."} {
						if !yield(chunk, nil) {
							return
						}
					}
				}
			},
		}

		dir := t.TempDir()
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Service: service,
		}

		cmd := &main.BrochureCmd{Company: "Acme", URL: "https://acme.test", Stream: true, Out: dir}
		err := cmd.Run(deps)

		require.NoError(t, err)
		content, err := os.ReadFile(filepath.Join(dir, "acme_brochure.md"))
		require.NoError(t, err)
		assert.Equal(t, "# Acme\n\nWidgets for everyone.", string(content))
	})

	t.Run("stream errors abort without saving", func(t *testing.T) {
		t.Parallel()

		service := &mock.BriefService{
			BrochureStreamFn: func(_ context.Context, company, url string) iter.Seq2[string, error] {
				return func(yield func(string, error) bool) {
					yield("", pagebrief.Errorf(pagebrief.ERATELIMIT, "rate limit exceeded"))
				}
			},
		}

		dir := t.TempDir()
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Service: service,
		}

		cmd := &main.BrochureCmd{Company: "Acme", URL: "https://acme.test", Stream: true, Out: dir}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "rate limit exceeded")
		_, statErr := os.Stat(filepath.Join(dir, "acme_brochure.md"))
		assert.True(t, os.IsNotExist(statErr))
	})
}
