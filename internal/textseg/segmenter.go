// Package textseg splits raw text into display tokens.
//
// Segmentation is lossless: concatenating the returned tokens reproduces
// the input byte for byte, so tokens include whitespace and punctuation,
// not just words. The language set is closed; unknown languages are
// rejected rather than approximated with a fallback splitter.
package textseg

import (
	"fmt"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// Segmenter exposes segmentation as a method set. The zero value is ready
// to use; engines are shared process-wide, never per instance.
type Segmenter struct{}

func (Segmenter) Segment(text string, lang domain.Language) ([]string, error) {
	return Segment(text, lang)
}

func (Segmenter) Warm(langs ...domain.Language) error {
	return Warm(langs...)
}

// Segment splits text into tokens using the engine for lang. Engines are
// loaded once per process and are read-only afterwards, so Segment is safe
// for concurrent use and performs no I/O after warm-up.
func Segment(text string, lang domain.Language) ([]string, error) {
	switch lang {
	case domain.LanguageEnglish:
		return segmentEnglish(text), nil
	case domain.LanguageChinese:
		return segmentChinese(text)
	case domain.LanguageJapanese:
		return segmentJapanese(text)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedLanguage, lang)
	}
}

// Warm eagerly loads the engines for the given languages so the first
// request does not pay dictionary-loading latency.
func Warm(langs ...domain.Language) error {
	for _, lang := range langs {
		switch lang {
		case domain.LanguageChinese:
			if _, err := chineseSegmenter(); err != nil {
				return fmt.Errorf("textseg warm %s: %w", lang, err)
			}
		case domain.LanguageJapanese:
			if _, err := japaneseTokenizer(); err != nil {
				return fmt.Errorf("textseg warm %s: %w", lang, err)
			}
		}
	}
	return nil
}
