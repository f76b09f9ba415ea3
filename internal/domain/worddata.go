package domain

import "github.com/google/uuid"

// UserWordData is the per-user, per-language vocabulary progress record.
// Both maps are keyed by case-folded words (see NormalizeWord). A word
// absent from StatusByWord has never been marked by the user.
type UserWordData struct {
	UserID           uuid.UUID
	Lang             Language
	StatusByWord     map[string]WordStatus
	DefinitionByWord map[string]string
}

// NewUserWordData returns an empty progress record. Records are created
// lazily on first write; readers of a never-written (user, lang) pair get
// this zero state.
func NewUserWordData(userID uuid.UUID, lang Language) *UserWordData {
	return &UserWordData{
		UserID:           userID,
		Lang:             lang,
		StatusByWord:     map[string]WordStatus{},
		DefinitionByWord: map[string]string{},
	}
}
