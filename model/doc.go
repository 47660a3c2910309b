// Package model defines the provider-agnostic generation interface used
// by delegate adapters and the orchestrator, plus a mock implementation
// for tests. Provider bindings live in the anthropic and openai
// subpackages.
package model
