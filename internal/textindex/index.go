// Package textindex derives the lexical index of a tokenized article:
// sentence ranges, the unique-word set, and fixed-size pages. All three
// are pure functions of the token slice, so re-indexing the same tokens
// always yields the same index.
package textindex

import (
	"unicode"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// Index is the full lexical index over one token slice.
type Index struct {
	Sentences   []domain.TokenRange
	UniqueWords map[string]bool
	Pages       []domain.TokenRange
}

// Build computes the complete index. pageSize is the number of tokens per
// reading page.
func Build(tokens []string, pageSize int) Index {
	return Index{
		Sentences:   Sentences(tokens),
		UniqueWords: UniqueWords(tokens),
		Pages:       Pages(len(tokens), pageSize),
	}
}

// Sentences partitions [0, len(tokens)) into sentence ranges. A sentence
// closes at the end of a run of sentence-terminal tokens; a trailing run
// with no terminator forms the final sentence. Every token belongs to
// exactly one sentence.
func Sentences(tokens []string) []domain.TokenRange {
	if len(tokens) == 0 {
		return nil
	}
	var ranges []domain.TokenRange
	start := 0
	for i, tok := range tokens {
		if !isTerminal(tok) {
			continue
		}
		if i+1 < len(tokens) && isTerminal(tokens[i+1]) {
			// "?!", "..." and the like close one sentence, not several.
			continue
		}
		ranges = append(ranges, domain.TokenRange{Start: start, End: i + 1})
		start = i + 1
	}
	if start < len(tokens) {
		ranges = append(ranges, domain.TokenRange{Start: start, End: len(tokens)})
	}
	return ranges
}

// UniqueWords returns the case-folded presence set of word-like tokens.
// A token is word-like if it contains at least one letter or digit;
// punctuation and whitespace tokens never become vocabulary keys.
func UniqueWords(tokens []string) map[string]bool {
	words := make(map[string]bool)
	for _, tok := range tokens {
		if !isWordToken(tok) {
			continue
		}
		words[domain.NormalizeWord(tok)] = true
	}
	return words
}

// Pages splits tokenCount tokens into contiguous pages of pageSize. All
// pages except the last hold exactly pageSize tokens; the last is never
// empty. Zero tokens means zero pages.
func Pages(tokenCount, pageSize int) []domain.TokenRange {
	if tokenCount <= 0 {
		return nil
	}
	if pageSize < 1 {
		pageSize = 1
	}
	pages := make([]domain.TokenRange, 0, (tokenCount+pageSize-1)/pageSize)
	for start := 0; start < tokenCount; start += pageSize {
		end := start + pageSize
		if end > tokenCount {
			end = tokenCount
		}
		pages = append(pages, domain.TokenRange{Start: start, End: end})
	}
	return pages
}

func isWordToken(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isTerminal reports whether the token consists solely of
// sentence-terminal punctuation.
func isTerminal(tok string) bool {
	if tok == "" {
		return false
	}
	for _, r := range tok {
		switch r {
		case '.', '!', '?', '…', '。', '！', '？', '｡':
		default:
			return false
		}
	}
	return true
}
