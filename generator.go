package pagebrief

import (
	"context"
	"iter"
)

// Generator sends a prompt to an LLM and returns the generated text.
type Generator interface {
	// Complete blocks until the model has produced the full text.
	//
	// Errors carry an LLM code: EAUTH, ERATELIMIT, EINVALIDMODEL or
	// ETRANSPORT.
	Complete(ctx context.Context, prompt Prompt) (string, error)

	// Stream yields the generated text as a finite sequence of fragments
	// in delivery order. Concatenating every fragment reconstructs the
	// text Complete would have produced for an equivalent prompt.
	//
	// The sequence is not restartable. Abandoning iteration early
	// releases the underlying connection; a non-nil error ends the
	// sequence.
	Stream(ctx context.Context, prompt Prompt) iter.Seq2[string, error]
}
