// Package core contains the shared domain types of tourmesh: the Tourist
// Profile with its typed preferences and append-only memory bank, the bounded
// context projection handed to delegates, the ProfileStore contract, and the
// per-turn / per-tool execution contexts.
package core
