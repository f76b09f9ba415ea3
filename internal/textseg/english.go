package textseg

import "github.com/rivo/uniseg"

// segmentEnglish splits on UAX#29 word boundaries. Every boundary-delimited
// segment is emitted, so punctuation and whitespace runs come through as
// their own tokens and the concatenation property holds by construction.
func segmentEnglish(text string) []string {
	if text == "" {
		return nil
	}
	tokens := make([]string, 0, len(text)/4)
	state := -1
	var word string
	for len(text) > 0 {
		word, text, state = uniseg.FirstWordInString(text, state)
		tokens = append(tokens, word)
	}
	return tokens
}
