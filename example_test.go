package suffixautomaton_test

import (
	"fmt"

	"github.com/coregx/suffixautomaton"
	"github.com/coregx/suffixautomaton/sam"
)

// ExampleNew demonstrates building an index and querying membership.
func ExampleNew() {
	idx := suffixautomaton.New("mississippi")

	fmt.Println(idx.Contains("issi"))
	fmt.Println(idx.Contains("missed"))
	// Output:
	// true
	// false
}

// ExampleIndex_HasSuffix demonstrates suffix queries.
func ExampleIndex_HasSuffix() {
	idx := suffixautomaton.New("mississippi")

	fmt.Println(idx.HasSuffix("ippi"))
	fmt.Println(idx.HasSuffix("issi"))
	// Output:
	// true
	// false
}

// ExampleIndex_Count demonstrates overlapping occurrence counting.
func ExampleIndex_Count() {
	idx := suffixautomaton.New("aaaa")

	fmt.Println(idx.Count("aa")) // occurrences at positions 0, 1, 2
	// Output: 3
}

// ExampleIndex_CountDistinct demonstrates distinct-substring counting.
func ExampleIndex_CountDistinct() {
	idx := suffixautomaton.New("aab")

	fmt.Println(idx.CountDistinct()) // a, aa, b, ab, aab
	// Output: 5
}

// ExampleIndex_LongestCommonSubstring finds the longest string shared
// with another text.
func ExampleIndex_LongestCommonSubstring() {
	idx := suffixautomaton.New("mississippi")

	fmt.Println(idx.LongestCommonSubstring("missouri"))
	// Output: miss
}

// Example_streaming demonstrates the low-level sam API for callers
// that receive symbols incrementally.
func Example_streaming() {
	a := sam.New()
	for _, c := range "aab" {
		if err := a.Extend(c); err != nil {
			panic(err)
		}
	}
	a.Finalize()

	ok, _ := a.IsSuffix("ab")
	fmt.Println(ok)
	fmt.Println(a.DistinctSubstrings())
	// Output:
	// true
	// 5
}
