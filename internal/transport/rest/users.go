package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/internal/service/user"
)

// userService defines the minimal interface needed by UserHandler.
type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	List(ctx context.Context, input user.ListInput) (*user.ListResult, error)
}

// UserHandler serves user directory and profile REST endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Username    *string `json:"username"`
	Password    *string `json:"password"`
	StudyLang   *string `json:"study_lang"`
	DisplayLang *string `json:"display_lang"`
}

type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	CreatedAt   time.Time `json:"created_at"`
	StudyLang   string    `json:"study_lang"`
	DisplayLang string    `json:"display_lang"`
}

type simpleUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type listUsersResponse struct {
	Users []simpleUserResponse `json:"users"`
	Count int                  `json:"count"`
}

// GetMe handles GET /users/me.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]userResponse{"user": toUserResponse(u)})
}

// UpdateMe handles PATCH /users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Username:    req.Username,
		Password:    req.Password,
		StudyLang:   toLanguagePtr(req.StudyLang),
		DisplayLang: toLanguagePtr(req.DisplayLang),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]userResponse{"user": toUserResponse(u)})
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.List(r.Context(), user.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	users := make([]simpleUserResponse, 0, len(result.Users))
	for _, u := range result.Users {
		users = append(users, simpleUserResponse{ID: u.ID.String(), Username: u.Username})
	}

	writeJSON(w, http.StatusOK, listUsersResponse{Users: users, Count: result.Total})
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:          u.ID.String(),
		Username:    u.Username,
		CreatedAt:   u.CreatedAt,
		StudyLang:   string(u.StudyLang),
		DisplayLang: string(u.DisplayLang),
	}
}

func toLanguagePtr(s *string) *domain.Language {
	if s == nil {
		return nil
	}
	lang := domain.Language(*s)
	return &lang
}
