package condense

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// Model is the LLM collaborator consumed by the LLM-backed condenser.
//
// It is the GenerateContent subset of LangChainGo's llms.Model, so any
// LangChainGo-backed model (openai.LLM, anthropic.LLM, ollama.LLM, ...)
// satisfies it directly. The generated text is read from
// Choices[0].Content of the response.
//
// Calls are synchronous and blocking; any retry or timeout behavior
// belongs to the model implementation, not to this package.
type Model interface {
	// GenerateContent generates a completion from a sequence of
	// role/content messages.
	GenerateContent(
		ctx context.Context,
		messages []llms.MessageContent,
		options ...llms.CallOption,
	) (
		*llms.ContentResponse,
		error,
	)
}
