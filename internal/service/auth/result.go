package auth

import "github.com/heartmarshall/lingreader-backend/internal/domain"

// AuthResult is returned by Login and Refresh operations. Refresh leaves
// RefreshToken empty because the stored value keeps serving.
type AuthResult struct {
	AccessToken  string
	RefreshToken string // raw token, NOT hash
	User         *domain.User
}
