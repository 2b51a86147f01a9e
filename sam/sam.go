// Package sam implements an online suffix automaton: the minimal
// deterministic automaton recognizing every substring of a string,
// built incrementally one symbol at a time.
//
// The automaton is a DAG of transitions overlaid on a tree of suffix
// links. States live in a flat arena and are addressed by StateID, so
// rewriting a link or a transition during construction is an index
// assignment rather than pointer surgery. Transitions are rune-keyed
// maps, which keeps the alphabet open: any rune can be fed to Extend
// without a fixed-size table.
//
// Construction is single-writer. After Finalize the automaton is
// frozen and safe for unlimited concurrent read-only queries.
package sam

import (
	"github.com/coregx/suffixautomaton/internal/conv"
)

// StateID uniquely identifies an automaton state.
// This is a 32-bit unsigned integer for compact representation.
type StateID uint32

const (
	// Root is the initial state. It represents the empty string and is
	// the only state with no suffix link.
	Root StateID = 0

	// InvalidState represents an invalid/uninitialized state ID.
	// It doubles as the "no such state" result of traversals.
	InvalidState StateID = 0xFFFFFFFF
)

// State represents one equivalence class of end positions: the set of
// substrings of the consumed prefix that occur at exactly the same
// ending indices. The class is fully described by the length of its
// longest member and its suffix link.
type State struct {
	length      int
	link        StateID
	transitions map[rune]StateID
	terminal    bool

	// primary marks states that were "last" at some point during
	// construction. They seed the end-position counts with 1; clones
	// seed with 0.
	primary bool
}

// Length returns the length of the longest substring in this state's
// equivalence class.
func (s *State) Length() int {
	return s.length
}

// Link returns the suffix link target, or InvalidState for the root.
func (s *State) Link() StateID {
	return s.link
}

// Terminal reports whether this state was marked terminal by Finalize.
// Always false before the first Finalize call.
func (s *State) Terminal() bool {
	return s.terminal
}

// Transition returns the target of the outgoing transition on c.
// The second result is false if no such transition exists.
func (s *State) Transition(c rune) (StateID, bool) {
	id, ok := s.transitions[c]
	return id, ok
}

// TransitionCount returns the number of outgoing transitions.
func (s *State) TransitionCount() int {
	return len(s.transitions)
}

// Automaton is an online suffix automaton. The zero value is not
// usable; construct with New.
//
// Example:
//
//	a := sam.New()
//	if err := a.ExtendString("aab"); err != nil {
//	    log.Fatal(err)
//	}
//	a.Finalize()
//	ok, _ := a.IsSuffix("ab") // true
type Automaton struct {
	states []State
	last   StateID
	n      int // symbols consumed so far

	// frozen is set by Finalize. While set, Extend is rejected and the
	// automaton is safe for concurrent readers.
	frozen bool

	// counts[s] is the end-position set size of state s.
	// Valid only while countsDirty is false.
	counts      []uint64
	countsDirty bool
}

// New creates an empty automaton: a single root state of length 0
// with no suffix link, accepting exactly the empty string.
func New() *Automaton {
	a := &Automaton{
		states: make([]State, 0, 16),
		last:   Root,
	}
	a.alloc(0)
	return a
}

// alloc appends a fresh state with the given length, an empty
// transition map and no link, returning its ID. State IDs are stable
// for the automaton's lifetime; nothing is ever removed from the
// arena. Exhausting the 32-bit ID space panics via conv.
func (a *Automaton) alloc(length int) StateID {
	id := StateID(conv.IntToUint32(len(a.states)))
	a.states = append(a.states, State{
		length:      length,
		link:        InvalidState,
		transitions: make(map[rune]StateID),
	})
	return id
}

// Extend appends one symbol to the indexed string, preserving the
// automaton invariant: after the call the automaton accepts exactly
// the substrings of the prefix consumed so far, and remains minimal.
//
// Returns ErrFrozen after Finalize; call Reopen to re-enter the
// mutable phase.
//
// Amortized cost is O(1) map operations per symbol: the two suffix
// link walks below advance a potential bounded by the total input
// length.
func (a *Automaton) Extend(c rune) error {
	if a.frozen {
		return ErrFrozen
	}

	cur := a.alloc(a.states[a.last].length + 1)
	a.states[cur].primary = true

	// Walk the suffix link chain from last, wiring c to cur until we
	// hit a state that already moves on c (or fall off the root).
	p := a.last
	for p != InvalidState {
		if _, ok := a.states[p].transitions[c]; ok {
			break
		}
		a.states[p].transitions[c] = cur
		p = a.states[p].link
	}

	switch {
	case p == InvalidState:
		// c never occurred before: cur hangs directly off the root.
		a.states[cur].link = Root

	default:
		q := a.states[p].transitions[c]
		if a.states[q].length == a.states[p].length+1 {
			// q's class is exactly the right size to be cur's parent.
			a.states[cur].link = q
		} else {
			// q's class is too long to sit directly above cur: split it
			// by cloning q at the shorter length.
			clone := a.alloc(a.states[p].length + 1)

			// Value-copy of q's transition map. Sharing the map with q
			// would corrupt q when the clone is later rewired.
			for sym, to := range a.states[q].transitions {
				a.states[clone].transitions[sym] = to
			}
			a.states[clone].link = a.states[q].link

			// Every ancestor of p still reaching q on c belongs to the
			// shorter class: redirect it to the clone. The chain stops
			// at the first ancestor that diverged.
			for p != InvalidState && a.states[p].transitions[c] == q {
				a.states[p].transitions[c] = clone
				p = a.states[p].link
			}

			a.states[q].link = clone
			a.states[cur].link = clone
		}
	}

	a.last = cur
	a.n++
	a.countsDirty = true
	return nil
}

// ExtendString feeds every rune of s to Extend, in order.
func (a *Automaton) ExtendString(s string) error {
	for _, c := range s {
		if err := a.Extend(c); err != nil {
			return err
		}
	}
	return nil
}

// Finalize marks the terminal states and freezes the automaton.
//
// The terminal states are exactly the states on the suffix link chain
// from last to the root: the classes whose substrings reach the end of
// the input. The root is marked too, so the empty string counts as a
// suffix. Idempotent.
//
// End-position counts are also computed here, so a finalized automaton
// never mutates under queries and is safe for concurrent readers.
func (a *Automaton) Finalize() {
	if a.frozen {
		return
	}
	for p := a.last; p != InvalidState; p = a.states[p].link {
		a.states[p].terminal = true
	}
	a.recomputeCounts()
	a.frozen = true
}

// Reopen re-enters the mutable phase after Finalize: terminal marks
// are cleared and Extend is accepted again. A no-op if the automaton
// was never finalized.
func (a *Automaton) Reopen() {
	if !a.frozen {
		return
	}
	for i := range a.states {
		a.states[i].terminal = false
	}
	a.frozen = false
}

// Len returns the number of symbols consumed so far.
func (a *Automaton) Len() int {
	return a.n
}

// States returns the number of states in the arena, root included.
// For n consumed symbols (n >= 2) this never exceeds 2n-1.
func (a *Automaton) States() int {
	return len(a.states)
}

// Transitions returns the total number of transitions.
// For n consumed symbols (n >= 3) this never exceeds 3n-4.
func (a *Automaton) Transitions() int {
	total := 0
	for i := range a.states {
		total += len(a.states[i].transitions)
	}
	return total
}

// Finalized reports whether the automaton is frozen.
func (a *Automaton) Finalized() bool {
	return a.frozen
}

// Last returns the state representing the whole consumed prefix.
func (a *Automaton) Last() StateID {
	return a.last
}

// State returns read access to a state by ID.
// Returns nil if id is out of range.
func (a *Automaton) State(id StateID) *State {
	if uint64(id) >= uint64(len(a.states)) {
		return nil
	}
	return &a.states[id]
}
