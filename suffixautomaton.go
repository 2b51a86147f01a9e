// Package suffixautomaton provides substring indexing for Go built on
// an online suffix automaton.
//
// A suffix automaton is the minimal deterministic automaton accepting
// every substring of a string. It is built in O(n) amortized time, one
// symbol at a time, and answers in O(|query|):
//   - substring membership
//   - suffix membership
//   - occurrence counting (overlapping occurrences)
//
// plus distinct-substring counting in O(1) after construction.
//
// The public API has two levels. The root package offers Index, an
// immutable snapshot built from a whole string:
//
//	idx := suffixautomaton.New("mississippi")
//	idx.Contains("ssis")       // true
//	idx.HasSuffix("ippi")      // true
//	idx.Count("ss")            // 2
//	idx.CountDistinct()        // 53
//
// The sam subpackage exposes the incremental construction directly for
// callers that stream symbols in:
//
//	a := sam.New()
//	for _, c := range input {
//	    if err := a.Extend(c); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	a.Finalize()
//
// Input is treated as a sequence of runes, so any Unicode text works
// without a fixed alphabet.
package suffixautomaton

import (
	"github.com/coregx/suffixautomaton/sam"
)

// Index is a finalized suffix automaton over a fixed string.
//
// An Index never mutates after New returns and is safe for concurrent
// use from multiple goroutines.
type Index struct {
	auto *sam.Automaton
}

// New builds an Index over text.
//
// Construction is linear in the number of runes of text. The only
// failure mode is exhausting the 32-bit state ID space, which panics;
// that needs an input of about two billion runes.
func New(text string) *Index {
	a := sam.New()
	// Extend cannot fail before the first Finalize.
	_ = a.ExtendString(text)
	a.Finalize()
	return &Index{auto: a}
}

// Contains reports whether t is a substring of the indexed text.
// Every string contains the empty string.
func (x *Index) Contains(t string) bool {
	return x.auto.Contains(t)
}

// HasSuffix reports whether t is a suffix of the indexed text.
// The empty string is a suffix of every string, including itself.
func (x *Index) HasSuffix(t string) bool {
	ok, _ := x.auto.IsSuffix(t) // the Index is always finalized
	return ok
}

// Count returns the number of occurrences of t in the indexed text,
// counting overlaps: Count("aa") on "aaa" is 2. A string that never
// occurs yields 0; the empty string yields Len().
func (x *Index) Count(t string) uint64 {
	return x.auto.OccurrenceCount(t)
}

// CountDistinct returns the number of distinct non-empty substrings of
// the indexed text.
func (x *Index) CountDistinct() uint64 {
	return x.auto.DistinctSubstrings()
}

// Len returns the length of the indexed text in runes.
func (x *Index) Len() int {
	return x.auto.Len()
}

// States returns the number of automaton states backing the index.
// Useful for capacity estimates; never exceeds 2*Len()-1 for Len() >= 2.
func (x *Index) States() int {
	return x.auto.States()
}

// Automaton returns the underlying finalized automaton for direct
// queries via the sam package.
func (x *Index) Automaton() *sam.Automaton {
	return x.auto
}

// LongestCommonSubstring returns the longest substring shared by the
// indexed text and t. Ties resolve to the leftmost occurrence in t;
// the result is empty when nothing is shared.
//
// This walks t through the automaton once, falling back along suffix
// links on a mismatch, so it runs in O(len(t)) map operations.
func (x *Index) LongestCommonSubstring(t string) string {
	a := x.auto
	rs := []rune(t)

	v := sam.Root
	matched := 0 // length of the current common substring ending here
	best, bestEnd := 0, 0

	for i, c := range rs {
		for {
			if next, ok := a.State(v).Transition(c); ok {
				v = next
				matched++
				break
			}
			if v == sam.Root {
				matched = 0
				break
			}
			// Shrink to the longest suffix of the current match that
			// the automaton can still extend.
			v = a.State(v).Link()
			matched = a.State(v).Length()
		}
		if matched > best {
			best, bestEnd = matched, i+1
		}
	}
	return string(rs[bestEnd-best : bestEnd])
}
