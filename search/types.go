// Package search defines core types, options, and sentinel errors for the
// knight's-tour search engine.
package search

import (
	"errors"

	"github.com/katalvlaran/knighttour/board"
)

// Sentinel errors for search configuration. A configuration rejected here
// is never searched; exhaustion itself is a Status, not an error.
var (
	// ErrNilBoard indicates a nil *board.Board was passed to Solve.
	ErrNilBoard = errors.New("search: board is nil")
	// ErrUnknownMode indicates a Mode outside {Natural, NarrowestFirst, Centrifugal}.
	ErrUnknownMode = errors.New("search: unknown move-ordering mode")
	// ErrNegativeLimit indicates Options.Limit < 0.
	ErrNegativeLimit = errors.New("search: trial limit must be non-negative")
	// ErrClosedParity indicates a closed tour was requested on an odd×odd
	// board, where the two knight-move color classes have unequal counts.
	ErrClosedParity = errors.New("search: closed tour impossible on odd×odd board")
	// ErrSymmetryParity indicates the mirrored dimension(s) are not even.
	ErrSymmetryParity = errors.New("search: symmetry requires even mirrored dimension(s)")
	// ErrStartOnAxis indicates the start cell is its own mirror image.
	ErrStartOnAxis = errors.New("search: start position lies on the symmetry axis")
)

// Mode selects the move-ordering heuristic. The set is closed: a mode is
// resolved to an ordering once at configuration time and never reselected
// mid-search.
type Mode int

const (
	// Natural emits candidates in the fixed knight-offset order.
	Natural Mode = iota
	// NarrowestFirst applies Warnsdorff's rule: candidates sorted ascending
	// by onward degree, ties keeping offset order.
	NarrowestFirst
	// Centrifugal sorts candidates descending by squared distance from the
	// board center, consuming edge and corner cells first.
	Centrifugal
)

// String returns the mode name used in CLI flags and reports.
func (m Mode) String() string {
	switch m {
	case NarrowestFirst:
		return "warnsdorff"
	case Centrifugal:
		return "centrifugal"
	default:
		return "natural"
	}
}

// Status is the terminal state of one search run.
type Status int

const (
	// Exhausted means the stack emptied without a solution — a legitimate
	// negative result, not an error.
	Exhausted Status = iota
	// Found means a tour satisfying every requested constraint was found.
	Found
	// LimitReached means the trial budget was spent before completion;
	// distinguishable from Exhausted so callers can retry with more budget.
	LimitReached
)

// String returns a short human-readable status name.
func (st Status) String() string {
	switch st {
	case Found:
		return "found"
	case LimitReached:
		return "limit reached"
	default:
		return "exhausted"
	}
}

// Result is the outcome of one Solve invocation.
type Result struct {
	// Status reports how the search terminated.
	Status Status

	// Path is the tour in user coordinates, ordered by move number.
	// len(Path) == width·height when Status == Found; nil otherwise.
	Path []board.Position

	// Trials is the cumulative move-examination count for this run.
	// Average-time derivations over wall-clock time are the caller's
	// concern.
	Trials int64
}

// StepAction labels a step-trace event.
type StepAction int

const (
	// StepInit is emitted once, after seeding the initial frame.
	StepInit StepAction = iota
	// StepDescend is emitted after marking a cell and pushing its frame.
	StepDescend
	// StepBacktrack is emitted before reverting a cell and popping its frame.
	StepBacktrack
)

// String returns the action label used by trace output.
func (a StepAction) String() string {
	switch a {
	case StepDescend:
		return "descend"
	case StepBacktrack:
		return "backtrack"
	default:
		return "init"
	}
}

// StepEvent describes one engine step for Options.OnStep hooks.
type StepEvent struct {
	// Action is the step kind: init, descend, or backtrack.
	Action StepAction
	// Move is the move number at the acted-on cell.
	Move int
	// Pos is the acted-on cell in user coordinates.
	Pos board.Position
	// Depth is the stack depth at the moment of the event.
	Depth int
}
