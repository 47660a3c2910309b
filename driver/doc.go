// Package driver runs the conversation loop for one user session: a
// three-state machine (awaiting input, processing, terminated) that
// feeds utterances to the orchestrator strictly one turn at a time,
// handles the quit and clear commands, and recovers from turn-level
// failures without killing the session.
package driver
