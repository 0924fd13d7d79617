package engine

import "context"

// ModelClient abstracts the external rewrite capability. Implementations wrap
// OpenAI-compatible services; the stub serves keyless development and tests.
//
// Complete is the single cancellable operation in the system: the orchestrator
// bounds it with a deadline derived from the remaining request budget. No
// implementation retries — a failed call is terminal for the request.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
