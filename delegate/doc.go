// Package delegate implements persona adapters: model-backed
// specialists with a charter and a restricted capability roster. The
// orchestrator dispatches routed intents to adapters and merges their
// contributions into one reply.
package delegate
