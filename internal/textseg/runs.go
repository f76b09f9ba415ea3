package textseg

import (
	"strings"
	"unicode"
)

// segmentRuns pre-splits text into alternating whitespace and
// non-whitespace runs. Whitespace runs become verbatim tokens; each
// non-whitespace run goes through cut. If an engine's output does not
// concatenate back to its run, the run is kept as a single token, so the
// lossless guarantee never depends on engine internals.
func segmentRuns(text string, cut func(string) []string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	runStart := 0
	runSpace := false
	first := true

	flush := func(end int) {
		if end == runStart {
			return
		}
		run := text[runStart:end]
		if runSpace {
			tokens = append(tokens, run)
			return
		}
		parts := cut(run)
		if joined(parts) != run {
			tokens = append(tokens, run)
			return
		}
		for _, p := range parts {
			if p != "" {
				tokens = append(tokens, p)
			}
		}
	}

	for i, r := range text {
		space := unicode.IsSpace(r)
		if first {
			runSpace = space
			first = false
			continue
		}
		if space != runSpace {
			flush(i)
			runStart = i
			runSpace = space
		}
	}
	flush(len(text))
	return tokens
}

func joined(parts []string) string {
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(p)
	}
	return b.String()
}
