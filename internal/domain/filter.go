package domain

import "github.com/google/uuid"

// ArticleFilter contains filtering/pagination parameters for article listings.
// Nil pointer fields are not applied.
type ArticleFilter struct {
	Lang       *Language
	Search     *string
	UploaderID *uuid.UUID
	// SystemOnly restricts results to the shared library. When an
	// UploaderID is set it additionally hides that user's private uploads
	// from other readers.
	SystemOnly bool
	Limit      int
	Offset     int
}
