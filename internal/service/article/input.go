package article

import (
	"net/url"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

const (
	maxTitleLen  = 500
	maxAuthorLen = 200
	maxTagLen    = 50
	maxTags      = 20
)

// CreateInput holds parameters for creating an article from raw text.
type CreateInput struct {
	Title     string
	Author    *string
	Content   string
	Lang      domain.Language
	IsPrivate bool
	Tags      []string
}

// Validate validates the create input. Content emptiness is checked by the
// pipeline itself, which reports it as ErrEmptyContent rather than a field
// error.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(i.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if i.Author != nil && len(*i.Author) > maxAuthorLen {
		errs = append(errs, domain.FieldError{Field: "author", Message: "too long"})
	}

	if !i.Lang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "language", Message: "unsupported language"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// FetchInput holds parameters for importing an article from a URL.
type FetchInput struct {
	URL       string
	Lang      domain.Language
	IsPrivate bool
	Tags      []string
}

// Validate validates the fetch input.
func (i FetchInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.URL == "":
		errs = append(errs, domain.FieldError{Field: "url", Message: "required"})
	case len(i.URL) > 2048:
		errs = append(errs, domain.FieldError{Field: "url", Message: "too long"})
	default:
		u, err := url.Parse(i.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "url", Message: "must be an absolute http(s) url"})
		}
	}

	if !i.Lang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "language", Message: "unsupported language"})
	}

	errs = append(errs, validateTags(i.Tags)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds filtering and pagination parameters for article listings.
// UserID only applies to ListByUser and retargets the listing to another
// uploader's shared articles.
type ListInput struct {
	UserID *uuid.UUID
	Lang   *domain.Language
	Search *string
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Lang != nil && !i.Lang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "language", Message: "unsupported language"})
	}
	if i.Search != nil && len(*i.Search) > 200 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "too long"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTags(tags []string) []domain.FieldError {
	var errs []domain.FieldError
	if len(tags) > maxTags {
		errs = append(errs, domain.FieldError{Field: "tags", Message: "too many tags"})
		return errs
	}
	for _, tag := range tags {
		if tag == "" {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "empty tag"})
			break
		}
		if len(tag) > maxTagLen {
			errs = append(errs, domain.FieldError{Field: "tags", Message: "tag too long"})
			break
		}
	}
	return errs
}
