package domain

import "context"

// Completer is the capability every provider client implements.
type Completer interface {
	// Complete issues one bounded completion call and folds every failure
	// mode into the returned response's Error field. It never returns nil
	// and never panics.
	Complete(ctx context.Context, prompt string) *CompletionResponse

	// Name returns the provider identifier.
	Name() string
}
