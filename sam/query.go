package sam

import (
	"github.com/coregx/suffixautomaton/internal/conv"
)

// Traverse walks the transition DAG from the root, consuming the runes
// of t in order. It returns the state reached, or InvalidState as soon
// as a required transition is missing. An unknown symbol is a normal
// negative result, never an error.
//
// The empty string reaches the root.
func (a *Automaton) Traverse(t string) StateID {
	s := Root
	for _, c := range t {
		next, ok := a.states[s].transitions[c]
		if !ok {
			return InvalidState
		}
		s = next
	}
	return s
}

// Contains reports whether t is a substring of the consumed prefix.
// Does not require Finalize.
func (a *Automaton) Contains(t string) bool {
	return a.Traverse(t) != InvalidState
}

// IsSuffix reports whether t is a suffix of the consumed prefix.
//
// Requires Finalize: terminal marks do not exist before it, so calling
// early is a usage error and returns ErrNotFinalized. The empty string
// is a suffix (the root is marked terminal by Finalize).
func (a *Automaton) IsSuffix(t string) (bool, error) {
	if !a.frozen {
		return false, ErrNotFinalized
	}
	s := a.Traverse(t)
	if s == InvalidState {
		return false, nil
	}
	return a.states[s].terminal, nil
}

// DistinctSubstrings returns the number of distinct non-empty
// substrings of the consumed prefix.
//
// Each non-root state s contributes the substrings only it represents:
// length(s) - length(link(s)) of them. No traversal is needed and no
// Finalize is required; this is a property of the constructed DAG.
func (a *Automaton) DistinctSubstrings() uint64 {
	var total uint64
	for i := 1; i < len(a.states); i++ {
		s := &a.states[i]
		total += uint64(s.length - a.states[s.link].length)
	}
	return total
}

// OccurrenceCount returns the number of occurrences of t in the
// consumed prefix, counting overlaps. A string that never occurs
// yields 0. The empty string occurs Len() times by this accounting
// (once per symbol position).
//
// The count is the size of the end-position set of the state t reaches.
// Those sizes are computed by a single pass over the suffix link tree
// and cached; the pass reruns lazily after new symbols have been
// appended, and eagerly inside Finalize so that a frozen automaton
// never mutates under concurrent readers.
func (a *Automaton) OccurrenceCount(t string) uint64 {
	s := a.Traverse(t)
	if s == InvalidState {
		return 0
	}
	if a.countsDirty {
		a.recomputeCounts()
	}
	return a.counts[s]
}

// recomputeCounts rebuilds the end-position set sizes.
//
// Every primary state starts at 1 (it was "last" once, contributing
// the position at which it was created); clones start at 0. Processing
// states from longest to shortest then folds each count into its
// suffix link: a state's end-position set is the union of its link
// tree children's sets plus its own intrinsic position.
func (a *Automaton) recomputeCounts() {
	counts := make([]uint64, len(a.states))
	for i := range a.states {
		if a.states[i].primary {
			counts[i] = 1
		}
	}

	// Counting sort by length. Lengths never exceed the number of
	// consumed symbols, so buckets are O(n).
	for _, s := range a.statesByLength() {
		if s == Root {
			continue
		}
		counts[a.states[s].link] += counts[s]
	}

	a.counts = counts
	a.countsDirty = false
}

// statesByLength returns all state IDs ordered by decreasing length.
func (a *Automaton) statesByLength() []StateID {
	buckets := make([]int, a.n+1)
	for i := range a.states {
		buckets[a.states[i].length]++
	}
	// Prefix sums from the longest bucket down.
	pos := 0
	for l := a.n; l >= 0; l-- {
		c := buckets[l]
		buckets[l] = pos
		pos += c
	}
	order := make([]StateID, len(a.states))
	for i := range a.states {
		l := a.states[i].length
		order[buckets[l]] = StateID(conv.IntToUint32(i))
		buckets[l]++
	}
	return order
}
