package triggers

import (
	"fmt"

	"github.com/tmc/langchaingo/llms"

	"github.com/rickchristie/condense"
)

// DefaultTokenizerModel is the model name used for token counting
// unless overridden with [TokenThreshold.WithModel].
const DefaultTokenizerModel = "gpt-4"

// TokenThreshold fires once the approximate token count of the
// history content reaches a threshold. Counting uses LangChainGo's
// tiktoken-backed CountTokens, so the numbers track OpenAI-style
// tokenization; treat them as an estimate, not billing-accurate
// accounting.
//
// Counting stops as soon as the threshold is crossed, so the cost of
// a ShouldFire call is bounded by the threshold rather than by the
// history size.
//
// Example:
//
//	// Condense once the history holds roughly 8k tokens
//	trigger, err := triggers.NewTokenThreshold(8000)
type TokenThreshold struct {
	maxTokens int
	model     string
}

// NewTokenThreshold creates a TokenThreshold trigger. Returns
// condense.ErrInvalidConfiguration if maxTokens <= 0.
func NewTokenThreshold(maxTokens int) (*TokenThreshold, error) {
	if maxTokens <= 0 {
		return nil, fmt.Errorf(
			"%w: max_tokens must be positive, got %d",
			condense.ErrInvalidConfiguration, maxTokens,
		)
	}
	return &TokenThreshold{
		maxTokens: maxTokens,
		model:     DefaultTokenizerModel,
	}, nil
}

// WithModel sets the model name used to select the tokenizer.
// Returns the trigger for chaining.
func (t *TokenThreshold) WithModel(name string) *TokenThreshold {
	t.model = name
	return t
}

// ShouldFire implements condense.Trigger.
func (t *TokenThreshold) ShouldFire(state condense.State) bool {
	total := 0
	for _, event := range state.History() {
		total += llms.CountTokens(t.model, event.Content)
		if total >= t.maxTokens {
			return true
		}
	}
	return false
}

// Compile-time check.
var _ condense.Trigger = (*TokenThreshold)(nil)
