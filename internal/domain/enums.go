package domain

// Language identifies a supported reading language. The set is closed:
// the segmenter dispatches on it and refuses anything else.
type Language string

const (
	LanguageEnglish  Language = "en"
	LanguageChinese  Language = "zh"
	LanguageJapanese Language = "ja"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageChinese, LanguageJapanese:
		return true
	}
	return false
}

// WordStatus represents how well the user knows a word. A word with no
// stored status has never been marked at all.
type WordStatus string

const (
	WordStatusUnknown  WordStatus = "unknown"
	WordStatusLearning WordStatus = "learning"
	WordStatusKnown    WordStatus = "known"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusUnknown, WordStatusLearning, WordStatusKnown:
		return true
	}
	return false
}
