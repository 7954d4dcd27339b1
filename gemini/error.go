package gemini

import (
	"context"
	"errors"
	"net/http"

	"github.com/fwojciec/pagebrief"
	"google.golang.org/genai"
)

// mapError translates a genai failure into an application error code.
// Unrecognized failures are transport-level from the caller's perspective.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return pagebrief.Errorf(pagebrief.ETIMEOUT, "LLM call timed out: %v", err)
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return pagebrief.Errorf(pagebrief.EAUTH, "LLM auth failed: %s", apiErr.Message)
		case http.StatusTooManyRequests:
			return pagebrief.Errorf(pagebrief.ERATELIMIT, "LLM rate limited: %s", apiErr.Message)
		case http.StatusNotFound:
			return pagebrief.Errorf(pagebrief.EINVALIDMODEL, "unknown model: %s", apiErr.Message)
		}
	}

	return pagebrief.Errorf(pagebrief.ETRANSPORT, "LLM call failed: %v", err)
}
