// Package classifier defines the boundary to the trained AI-vs-human model.
// The model itself (tokenizer, weights, inference runtime) lives behind an
// HTTP sidecar; this package only knows how to ask it for a probability.
package classifier

import "context"

// Classifier scores a text for likelihood of AI authorship. Implementations
// must be safe for concurrent use; a single instance is created at startup
// and shared across requests.
type Classifier interface {
	Infer(ctx context.Context, text string) (float64, error)
}

// Clamp forces a raw model output into [0, 1]. The sidecar is expected to
// return a probability, but out-of-range values must not reach callers.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
