// Package planner builds the rename plan for one directory listing.
//
// Each file moves through a small state machine (types.go):
//
//	Listed -> Extracted -> Suggested -> Planned
//
// with the terminal skip states SkippedNoContent and SkippedNoSuggestion.
// Execution (Renamed, Unchanged, RenameFailed) happens in the pipeline
// package. Final names are allocated from a NameCounter owned by the Plan,
// so no two planned items share a final name (planner.go).
package planner
