// Package advisor proposes a generation mix (solar/wind/generator) to
// close a quote's generation gap. Proposals are advisory: every number
// shown to the user still flows through the quote assembler, and a
// deterministic heuristic stands in whenever no model is configured or
// a model call fails. A quote never blocks on an LLM.
package advisor

import "context"

// Provider generates a model response for a prompt. jsonMode asks the
// model for a JSON object response.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt, systemPrompt string, jsonMode bool) (string, error)
}
