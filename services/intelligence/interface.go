package ai

import (
	"context"
	"errors"
)

// ErrGatewayUnavailable signals that the language model cannot be reached at
// all (missing credentials, failed client construction). Callers disable the
// assistant features instead of failing every turn.
var ErrGatewayUnavailable = errors.New("language model gateway unavailable")

// Gateway is the stateless wrapper around the external language model. It is
// the dominant latency source in every turn; callers bound calls with their
// own context deadlines.
type Gateway interface {
	// Complete sends a prompt and returns the model's text verbatim.
	Complete(ctx context.Context, prompt string) (string, error)

	// CompleteStructured sends a prompt expected to yield JSON and
	// unmarshals it into out. Malformed output is an error.
	CompleteStructured(ctx context.Context, prompt string, out any) error

	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)
}
