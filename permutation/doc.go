// Package permutation generates every distinct ordering of a string.
//
// Permutations is deliberately recursive: the permutations of "cat" are the
// permutations of "ca" with "t" inserted at each position. The recursion
// depth equals the input length, which is fine for the lengths where n!
// results are practical at all.
//
// Characters are runes, so multi-byte UTF-8 input is never split mid-character.
// A byte that is not valid UTF-8 is a character of its own and is returned
// unchanged, never replaced by U+FFFD.
// Repeated characters collapse naturally because results are collected in a
// Set, though the input is assumed to hold distinct characters.
//
// Complexity:
//
//   - Time:   O(n·n!) string building.
//   - Memory: O(n·n!) for the result set.
package permutation
