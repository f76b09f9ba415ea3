package domain

import "strings"

// NormalizeWord folds a token for use as a vocabulary key. This is the
// single folding rule shared by the article indexer and word-data writes:
// plain locale-independent lower-casing, nothing else. Diacritics, hyphens,
// and apostrophes are preserved so "naïve" and "don't" stay distinct words.
func NormalizeWord(word string) string {
	return strings.ToLower(word)
}
