package sam

import (
	"github.com/coregx/suffixautomaton/internal/conv"
	"github.com/coregx/suffixautomaton/internal/sparse"
)

// Validate checks the structural invariants of the automaton and
// returns a ValidationError for the first violation found, or nil.
//
// Checked invariants:
//   - the root has length 0 and no suffix link; every other state has
//     a link with strictly smaller length
//   - every link and transition target is inside the arena
//   - the suffix links form a tree rooted at the root (every chain
//     terminates there, no cycles)
//
// Intended for tests and debugging; a correct Extend never produces a
// tree this rejects.
func (a *Automaton) Validate() error {
	if a.states[Root].length != 0 {
		return &ValidationError{StateID: Root, Message: "root has nonzero length"}
	}
	if a.states[Root].link != InvalidState {
		return &ValidationError{StateID: Root, Message: "root has a suffix link"}
	}

	size := conv.IntToUint32(len(a.states))
	for i := 1; i < len(a.states); i++ {
		id := StateID(conv.IntToUint32(i))
		s := &a.states[i]
		if s.link == InvalidState {
			return &ValidationError{StateID: id, Message: "missing suffix link"}
		}
		if uint32(s.link) >= size {
			return &ValidationError{StateID: id, Message: "suffix link out of range"}
		}
		if a.states[s.link].length >= s.length {
			return &ValidationError{StateID: id, Message: "suffix link does not shorten length"}
		}
		for _, to := range s.transitions {
			if uint32(to) >= size {
				return &ValidationError{StateID: id, Message: "transition target out of range"}
			}
		}
	}
	for _, to := range a.states[Root].transitions {
		if uint32(to) >= size {
			return &ValidationError{StateID: Root, Message: "transition target out of range"}
		}
	}

	// Walk every link chain to the root. States already proven to
	// reach the root are recorded in a sparse set, so the whole check
	// stays linear.
	reachesRoot := sparse.NewSparseSet(size)
	reachesRoot.Insert(uint32(Root))
	for i := 1; i < len(a.states); i++ {
		chain := []StateID{}
		p := StateID(conv.IntToUint32(i))
		for !reachesRoot.Contains(uint32(p)) {
			chain = append(chain, p)
			p = a.states[p].link
			// Lengths strictly decrease along links (checked above), so
			// a chain longer than the arena means a cycle.
			if len(chain) > len(a.states) {
				return &ValidationError{StateID: StateID(conv.IntToUint32(i)), Message: "suffix link cycle"}
			}
		}
		for _, s := range chain {
			reachesRoot.Insert(uint32(s))
		}
	}
	return nil
}
