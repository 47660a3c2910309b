// Package orchestrator coordinates conversation turns: it routes a user
// utterance to the relevant delegate personas, dispatches them
// concurrently, merges their contributions deterministically and writes
// the exchange back into the tourist profile exactly once per turn.
package orchestrator
