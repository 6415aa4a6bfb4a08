package search

// Stats accumulates the move-examination trial counter for one Solve
// invocation. A trial is charged each time an ordering examines a
// candidate offset, valid or not; NarrowestFirst additionally charges the
// per-offset degree computation of each valid candidate.
//
// Stats is injected into the active ordering by the engine — never
// process-global — so repeated runs stay independently measurable.
// Not safe for concurrent use; the search is single-threaded by design.
type Stats struct {
	// Trials is the cumulative number of examined candidate offsets.
	Trials int64
}

// Record adds n trials. Complexity: O(1).
func (s *Stats) Record(n int) { s.Trials += int64(n) }
