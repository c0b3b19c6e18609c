// Package dialog runs the question-and-answer flow on a terminal. Prompts
// re-ask until the answer is valid; typing "cancel" or closing the input
// aborts the current flow with ErrCancelled.
package dialog
