package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenRange is a half-open [Start, End) index range over an article's
// token slice. End is exclusive.
type TokenRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of tokens covered by the range.
func (r TokenRange) Len() int { return r.End - r.Start }

// Article is a processed text with its full lexical index. Words holds
// every token in document order, duplicates and whitespace included, so
// concatenating Words reproduces Content exactly. Sentences and Pages are
// ranges over Words; UniqueWords maps case-folded word-like tokens to true.
type Article struct {
	ID            uuid.UUID
	Title         string
	Author        *string
	Content       string
	ContentLength int // runes, not bytes
	Words         []string
	Sentences     []TokenRange
	UniqueWords   map[string]bool
	Pages         []TokenRange
	CreatedAt     time.Time
	IsSystem      bool
	UploaderID    uuid.UUID
	Lang          Language
	Tags          []string
}

// Simple returns the listing projection of the article.
func (a *Article) Simple() SimpleArticle {
	return SimpleArticle{
		ID:            a.ID,
		Title:         a.Title,
		Author:        a.Author,
		ContentLength: a.ContentLength,
		CreatedAt:     a.CreatedAt,
		IsSystem:      a.IsSystem,
		Lang:          a.Lang,
		Tags:          a.Tags,
	}
}

// SimpleArticle is the article projection used by list endpoints. It drops
// the content and every derived index, which dominate the row size.
type SimpleArticle struct {
	ID            uuid.UUID
	Title         string
	Author        *string
	ContentLength int
	CreatedAt     time.Time
	IsSystem      bool
	Lang          Language
	Tags          []string
}
