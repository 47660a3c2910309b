// Package httpapi exposes the advisor over HTTP: one endpoint per
// conversation operation (turn, session clear, profile snapshot) plus a
// health probe. The handler is stateless; all session state lives in
// the orchestrator's profile store.
package httpapi
