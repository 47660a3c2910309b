// Package evaluation provides a golden-scenario evaluation harness for the
// tourism advisor. A fixed suite of representative traveler queries is run
// against a turn engine and each reply is scored by a model-backed judge
// across relevance, safety, actionability, completeness, cultural fit and
// tone. Scenarios pass when the overall score meets their minimum bar.
package evaluation
