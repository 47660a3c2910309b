// Package logging provides structured logging for the advisor and its
// capability tools. It exposes a minimal Logger interface, an adapter
// backed by the standard library's slog package, and a richer advisor
// logger with contextual helpers for turns, tool calls and model calls.
package logging
