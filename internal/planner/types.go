package planner

import "github.com/srinivassivaratri/namemate/internal/naming"

// State is the processing state of one file.
type State int

const (
	StateListed State = iota
	StateExtracted
	StateSuggested
	StatePlanned
	StateSkippedNoContent
	StateSkippedNoSuggestion
	StateRenamed
	StateUnchanged
	StateRenameFailed
)

var stateNames = [...]string{
	StateListed:              "listed",
	StateExtracted:           "extracted",
	StateSuggested:           "suggested",
	StatePlanned:             "planned",
	StateSkippedNoContent:    "skipped: no content",
	StateSkippedNoSuggestion: "skipped: no suggestion",
	StateRenamed:             "renamed",
	StateUnchanged:           "unchanged",
	StateRenameFailed:        "rename failed",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// Terminal reports whether no further transition can happen from s.
func (s State) Terminal() bool {
	switch s {
	case StateSkippedNoContent, StateSkippedNoSuggestion, StateRenamed, StateUnchanged, StateRenameFailed:
		return true
	}
	return false
}

// FileCandidate is one listed file and everything learned about it.
type FileCandidate struct {
	OriginalName string
	Path         string
	Size         int64

	ExtractedContent  string
	SuggestedBaseName string
	FinalName         string // Set once Planned; always keeps the original extension.

	State State
	Err   error // Set on RenameFailed.
}

// Plan is the ordered result of one planning pass. Items are Planned
// candidates in listing order; Skipped holds the rest.
type Plan struct {
	Directory string
	Items     []*FileCandidate
	Skipped   []*FileCandidate
	Counter   *naming.NameCounter
}

// Changes returns the items whose final name differs from the current one.
func (p *Plan) Changes() []*FileCandidate {
	var out []*FileCandidate
	for _, fc := range p.Items {
		if fc.FinalName != fc.OriginalName {
			out = append(out, fc)
		}
	}
	return out
}

// CountState returns how many candidates (planned or skipped) are in s.
func (p *Plan) CountState(s State) int {
	n := 0
	for _, fc := range p.Items {
		if fc.State == s {
			n++
		}
	}
	for _, fc := range p.Skipped {
		if fc.State == s {
			n++
		}
	}
	return n
}
