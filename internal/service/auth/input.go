package auth

import (
	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// LoginInput holds parameters for the login operation.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	} else if len(i.Username) > 50 {
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		// bcrypt ignores bytes past 72; refuse rather than silently truncate.
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RegisterInput holds parameters for the register operation.
type RegisterInput struct {
	Username    string
	Password    string
	StudyLang   domain.Language
	DisplayLang domain.Language
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	switch {
	case i.Username == "":
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	case len(i.Username) < 3:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too short"})
	case len(i.Username) > 50:
		errs = append(errs, domain.FieldError{Field: "username", Message: "too long"})
	}

	switch {
	case i.Password == "":
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	case len(i.Password) < 8:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	case len(i.Password) > 72:
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if !i.StudyLang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "study_lang", Message: "unsupported language"})
	}
	if !i.DisplayLang.IsValid() {
		errs = append(errs, domain.FieldError{Field: "display_lang", Message: "unsupported language"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RefreshInput holds parameters for the token refresh operation.
type RefreshInput struct {
	Token        string
	RefreshToken string
}

// Validate validates the refresh input.
func (i RefreshInput) Validate() error {
	var errs []domain.FieldError

	if i.Token == "" {
		errs = append(errs, domain.FieldError{Field: "token", Message: "required"})
	} else if len(i.Token) > 4096 {
		errs = append(errs, domain.FieldError{Field: "token", Message: "too long"})
	}

	if i.RefreshToken == "" {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "required"})
	} else if len(i.RefreshToken) > 512 {
		errs = append(errs, domain.FieldError{Field: "refresh_token", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
