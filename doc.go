// Package condense manages bounded conversational memory for LLM-driven
// agents: it decides which prior events are kept verbatim, summarized,
// or dropped before each model call, and when that reduction runs.
//
// The package separates WHAT to keep ([Condenser]) from WHEN to act
// ([Trigger]). A [RollingCondenser] combines the two over an
// append-only session [State], amortizing the cost of the possibly
// expensive condense step while still returning a complete view of
// history on every call.
//
// # Quick Start
//
//	// 1. Build a registry with the built-in strategies
//	registry := condense.NewRegistry()
//	err := condensers.RegisterBuiltins(registry, map[string]condense.Model{
//	    "default": llm, // any LangChainGo model
//	})
//
//	// 2. Select a strategy from configuration
//	cfg, _ := condense.ParseConfig([]byte("type: lastk\nk: 10"))
//	condenser, err := registry.Build(cfg)
//
//	// 3. Wrap it with a trigger
//	trigger, _ := triggers.NewHistoryLength(40)
//	rolling := condense.NewRolling(condenser, trigger)
//
//	// 4. Drive it from the agent control loop
//	state := condense.NewBasicState()
//	for {
//	    state.Append(nextEvents()...)
//	    view, err := rolling.CondensedHistory(ctx, state)
//	    // ... send view to the model ...
//	}
//
// Strategy implementations live in the condensers package, trigger
// implementations in the triggers package. Both can be extended: any
// type satisfying [Condenser] or [Trigger] plugs in, and custom
// strategies can be registered on a [Registry] at runtime.
package condense
