// Package profile provides ProfileStore implementations for tourist
// profiles. The in-memory store is the default backing for chat
// sessions and tests.
package profile
