package condensers

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/tmc/langchaingo/llms"

	"github.com/rickchristie/condense"
)

// LLM summarizes an event sequence into a single synthetic assistant
// event by making exactly one call to the injected model. The full
// input, in order, is sent as a role/content message list; the model's
// response text becomes the content of the returned event.
//
// LLM is not idempotent — re-condensing a summary produces a summary
// of the summary.
//
// # Failure
//
// If the model call fails, or the response carries no choices, the
// failure is logged once and returned as a *condense.CondensationError
// wrapping the original error. No retry happens at this layer; retries,
// if any, belong to the model implementation.
//
// Example:
//
//	condenser := condensers.NewLLM(model)
type LLM struct {
	model  condense.Model
	logger *logrus.Logger
}

// NewLLM creates an LLM condenser backed by the given model.
func NewLLM(model condense.Model) *LLM {
	return &LLM{
		model:  model,
		logger: logrus.StandardLogger(),
	}
}

// WithLogger sets the logger used for condensation failures.
// Returns the condenser for chaining.
func (c *LLM) WithLogger(logger *logrus.Logger) *LLM {
	c.logger = logger
	return c
}

// Condense implements condense.Condenser.
//
// An empty input returns empty output without a model call; there is
// nothing to summarize.
func (c *LLM) Condense(
	ctx context.Context,
	events []condense.Event,
) ([]condense.Event, error) {
	if len(events) == 0 {
		return events, nil
	}

	messages := make([]llms.MessageContent, 0, len(events))
	for _, event := range events {
		messages = append(messages, llms.MessageContent{
			Role: chatMessageType(event.Role),
			Parts: []llms.ContentPart{
				llms.TextContent{Text: event.Content},
			},
		})
	}

	response, err := c.model.GenerateContent(ctx, messages)
	if err != nil {
		return nil, c.fail(err)
	}
	if len(response.Choices) == 0 {
		return nil, c.fail(
			errors.New("model returned no choices"),
		)
	}

	summary := response.Choices[0].Content
	return []condense.Event{
		{Role: condense.RoleAssistant, Content: summary},
	}, nil
}

// fail logs the condensation failure once and wraps it.
func (c *LLM) fail(err error) error {
	c.logger.WithError(err).Error("condensing events failed")
	return &condense.CondensationError{Err: err}
}

// chatMessageType maps an event role onto the LangChainGo message
// type used on the wire.
func chatMessageType(role condense.Role) llms.ChatMessageType {
	switch role {
	case condense.RoleUser:
		return llms.ChatMessageTypeHuman
	case condense.RoleAssistant:
		return llms.ChatMessageTypeAI
	case condense.RoleSystem:
		return llms.ChatMessageTypeSystem
	case condense.RoleTool:
		return llms.ChatMessageTypeTool
	default:
		return llms.ChatMessageTypeGeneric
	}
}

// Compile-time check.
var _ condense.Condenser = (*LLM)(nil)
