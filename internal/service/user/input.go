package user

import (
	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// UpdateProfileInput holds the optional fields of a profile update.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Username    *string
	Password    *string
	StudyLang   *domain.Language
	DisplayLang *domain.Language
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	if i.Username != nil {
		switch {
		case *i.Username == "":
			errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
		case len(*i.Username) < 3:
			errs = append(errs, domain.FieldError{Field: "username", Message: "too short"})
		case len(*i.Username) > 50:
			errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
		}
	}

	if i.Password != nil {
		switch {
		case len(*i.Password) < 8:
			errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
		case len(*i.Password) > 72:
			errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
		}
	}

	if i.StudyLang != nil && !i.StudyLang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "study_lang", Message: "unsupported language"})
	}
	if i.DisplayLang != nil && !i.DisplayLang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "display_lang", Message: "unsupported language"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination parameters for the user directory.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate validates the list input.
func (i ListInput) Validate() error {
	if i.Offset < 0 {
		return domain.NewValidationError("offset", "must not be negative")
	}
	return nil
}
