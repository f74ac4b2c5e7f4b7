// Package triggers provides the standard Trigger implementations for
// the condense package.
//
// # Triggers
//
//   - [Always]: constant true
//   - [HistoryLength]: fires once the history reaches a minimum length
//   - [TokenThreshold]: fires once the approximate token count of the
//     history content reaches a threshold
package triggers
