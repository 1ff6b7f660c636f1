package permutation

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Set is an unordered collection of distinct strings.
type Set map[string]struct{}

// Has reports whether s is in the set.
func (set Set) Has(s string) bool {
	_, ok := set[s]
	return ok
}

// Len returns the number of elements.
func (set Set) Len() int { return len(set) }

// Sorted returns the elements in ascending order, for stable output.
func (set Set) Sorted() []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)

	return out
}

// Permutations returns the set of all orderings of the characters of s.
// Strings of length 0 or 1 yield a singleton holding s itself.
//
// A character is one UTF-8 encoded rune; each byte that is not valid UTF-8
// counts as a character of its own, so every result is a byte-exact
// rearrangement of s.
func Permutations(s string) Set {
	return permute(units(s))
}

// units splits s into its characters without re-encoding any bytes.
func units(s string) []string {
	out := make([]string, 0, len(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		out = append(out, s[:size])
		s = s[size:]
	}

	return out
}

func permute(chars []string) Set {
	out := make(Set)
	for _, seq := range orderings(chars) {
		out[strings.Join(seq, "")] = struct{}{}
	}

	return out
}

// orderings returns every distinct ordering of chars. Sequences are kept
// as characters rather than joined strings: two stray bytes placed side
// by side may decode as a single rune, and re-splitting would lose them.
func orderings(chars []string) [][]string {
	// Base case
	if len(chars) <= 1 {
		return [][]string{append([]string(nil), chars...)}
	}

	prefix := chars[:len(chars)-1]
	last := chars[len(chars)-1]

	var out [][]string
	seen := make(map[string]struct{})
	for _, seq := range orderings(prefix) {
		for pos := 0; pos <= len(seq); pos++ {
			next := make([]string, 0, len(seq)+1)
			next = append(next, seq[:pos]...)
			next = append(next, last)
			next = append(next, seq[pos:]...)

			k := key(next)
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, next)
		}
	}

	return out
}

// key encodes seq with a length byte before each character, so sequences
// that join to the same bytes but split differently stay distinct.
func key(seq []string) string {
	var b strings.Builder
	for _, c := range seq {
		b.WriteByte(byte(len(c)))
		b.WriteString(c)
	}

	return b.String()
}
