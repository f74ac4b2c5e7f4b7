// Package condensers provides the standard Condenser implementations
// for the condense package.
//
// # Strategies
//
//   - [NoOp]: returns input unchanged
//   - [LastK]: keeps all user events plus the last K non-user events
//   - [LLM]: summarizes the whole history into one assistant event
//
// [RegisterBuiltins] wires all of the above into a condense.Registry
// under the names "noop", "lastk", and "llm", with per-variant JSON
// Schema validation of the configured params.
package condensers
