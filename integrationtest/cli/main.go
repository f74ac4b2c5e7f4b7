// Package main is an interactive demo of rolling condensation: type
// messages, watch the condensed view evolve, and see a diff of the
// transcript every time the condenser fires.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/tmc/langchaingo/llms"

	"github.com/rickchristie/condense"
	"github.com/rickchristie/condense/condensers"
	"github.com/rickchristie/condense/triggers"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorDim    = "\033[2m"
)

// minLength is the history length at which condensation kicks in.
const minLength = 6

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr,
			"%sError: %v%s\n",
			colorRed, err, colorReset)
		os.Exit(1)
	}
}

func run() error {
	registry := condense.NewRegistry()
	err := condensers.RegisterBuiltins(
		registry,
		map[string]condense.Model{
			condensers.DefaultModelName: &scriptedModel{},
		},
	)
	if err != nil {
		return err
	}

	configYAML := "type: llm"
	if len(os.Args) > 1 {
		configYAML = strings.Join(os.Args[1:], "\n")
	}
	cfg, err := condense.ParseConfig([]byte(configYAML))
	if err != nil {
		return err
	}
	condenser, err := registry.Build(cfg)
	if err != nil {
		return err
	}

	trigger, err := triggers.NewHistoryLength(minLength)
	if err != nil {
		return err
	}
	rolling := condense.NewRolling(condenser, trigger)
	state := condense.NewBasicState()

	rl, err := readline.New(
		colorCyan + "you> " + colorReset,
	)
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Printf(
		"%sCondenser %q active; condensation starts at %d "+
			"events. Type a message, or 'q' to quit.%s\n",
		colorDim, cfg.Type, minLength, colorReset,
	)

	var previous []condense.Event
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" {
			return nil
		}

		state.Append(
			condense.Event{
				Role:    condense.RoleUser,
				Content: line,
			},
			condense.Event{
				Role: condense.RoleAssistant,
				Content: fmt.Sprintf(
					"Noted: %s", line,
				),
			},
		)

		view, err := rolling.CondensedHistory(
			context.Background(), state,
		)
		if err != nil {
			return err
		}

		if previous != nil && condensed(state) {
			printDiff(previous, view)
		}
		printTranscript(view, len(state.History()))
		previous = view
	}
}

// condensed reports whether any condensation batches have been
// recorded so far.
func condensed(state condense.State) bool {
	meta := state.ExtraData()[condense.DefaultMetadataKey]
	batches, ok := meta.([]map[string]any)
	return ok && len(batches) > 0
}

func printTranscript(view []condense.Event, historyLen int) {
	fmt.Printf(
		"%s--- condensed view (%d of %d history events) ---%s\n",
		colorDim, len(view), historyLen, colorReset,
	)
	for _, event := range view {
		color := colorGreen
		if event.Role == condense.RoleUser {
			color = colorCyan
		}
		fmt.Printf(
			"%s[%s]%s %s\n",
			color, event.Role, colorReset, event.Content,
		)
	}
}

// printDiff shows what the last condensation changed, as a unified
// diff between the previous and current condensed views.
func printDiff(before, after []condense.Event) {
	diff, err := difflib.GetUnifiedDiffString(
		difflib.UnifiedDiff{
			A:        transcriptLines(before),
			B:        transcriptLines(after),
			FromFile: "before",
			ToFile:   "after",
			Context:  2,
		},
	)
	if err != nil || diff == "" {
		return
	}
	fmt.Printf(
		"%s--- condensation diff ---%s\n%s%s%s",
		colorYellow, colorReset, colorDim, diff, colorReset,
	)
}

func transcriptLines(events []condense.Event) []string {
	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, fmt.Sprintf(
			"[%s] %s\n", event.Role, event.Content,
		))
	}
	return lines
}

// scriptedModel is an offline Model that fabricates a one-line summary
// from the messages it receives, so the demo needs no API key.
type scriptedModel struct{}

func (m *scriptedModel) GenerateContent(
	_ context.Context,
	messages []llms.MessageContent,
	_ ...llms.CallOption,
) (*llms.ContentResponse, error) {
	topics := make([]string, 0, len(messages))
	for _, msg := range messages {
		if msg.Role != llms.ChatMessageTypeHuman {
			continue
		}
		for _, part := range msg.Parts {
			if tc, ok := part.(llms.TextContent); ok {
				topics = append(topics, tc.Text)
			}
		}
	}
	summary := fmt.Sprintf(
		"The user discussed: %s.",
		strings.Join(topics, "; "),
	)
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{
			{Content: summary},
		},
	}, nil
}
