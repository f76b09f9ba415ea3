package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user. RefreshTokenHash holds
// the SHA-256 hex of the single active refresh token; logging in again
// overwrites it, which invalidates the previous refresh token everywhere.
type User struct {
	ID               uuid.UUID
	Username         string
	PasswordHash     string
	CreatedAt        time.Time
	StudyLang        Language
	DisplayLang      Language
	RefreshTokenHash *string
}

// Claims builds the identity snapshot embedded in access tokens. The
// snapshot is fixed at issuance; profile edits become visible in tokens
// only after the next login or refresh.
func (u *User) Claims() ClaimsUser {
	return ClaimsUser{
		ID:          u.ID,
		Username:    u.Username,
		CreatedAt:   u.CreatedAt,
		StudyLang:   u.StudyLang,
		DisplayLang: u.DisplayLang,
	}
}

// ClaimsUser is the user identity carried inside an access token.
// It is never re-read from storage during verification.
type ClaimsUser struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
	StudyLang   Language  `json:"study_lang"`
	DisplayLang Language  `json:"display_lang"`
}

// SimpleUser is the public projection used by the user directory.
type SimpleUser struct {
	ID       uuid.UUID
	Username string
}

// UserUpdate describes a partial profile update. Nil fields are left
// unchanged.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	StudyLang    *Language
	DisplayLang  *Language
}

// IsEmpty reports whether the update changes nothing.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.PasswordHash == nil && u.StudyLang == nil && u.DisplayLang == nil
}
