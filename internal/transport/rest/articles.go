package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/internal/service/article"
)

// articleService defines the minimal interface needed by ArticleHandler.
type articleService interface {
	Create(ctx context.Context, input article.CreateInput) (*domain.Article, error)
	CreateFromURL(ctx context.Context, input article.FetchInput) (*domain.Article, error)
	Get(ctx context.Context, articleID uuid.UUID) (*domain.Article, error)
	List(ctx context.Context, input article.ListInput) (*article.ListResult, error)
	ListByUser(ctx context.Context, input article.ListInput) (*article.ListResult, error)
}

// ArticleHandler serves article REST endpoints.
type ArticleHandler struct {
	svc articleService
	log *slog.Logger
}

// NewArticleHandler creates an ArticleHandler.
func NewArticleHandler(svc articleService, logger *slog.Logger) *ArticleHandler {
	return &ArticleHandler{svc: svc, log: logger.With("handler", "article")}
}

type createArticleRequest struct {
	Title     string   `json:"title"`
	Author    *string  `json:"author"`
	Content   string   `json:"content"`
	Language  string   `json:"language"`
	IsPrivate bool     `json:"is_private"`
	Tags      []string `json:"tags"`
}

type fetchArticleRequest struct {
	URL       string   `json:"url"`
	Language  string   `json:"language"`
	IsPrivate bool     `json:"is_private"`
	Tags      []string `json:"tags"`
}

type tokenRangeResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type articleResponse struct {
	ID            string               `json:"id"`
	Title         string               `json:"title"`
	Author        *string              `json:"author,omitempty"`
	Content       string               `json:"content"`
	ContentLength int                  `json:"content_length"`
	Words         []string             `json:"words"`
	Sentences     []tokenRangeResponse `json:"sentences"`
	UniqueWords   map[string]bool      `json:"unique_words"`
	Pages         []tokenRangeResponse `json:"pages"`
	CreatedAt     time.Time            `json:"created_at"`
	IsSystem      bool                 `json:"is_system"`
	UploaderID    string               `json:"uploader_id"`
	Lang          string               `json:"lang"`
	Tags          []string             `json:"tags"`
}

type simpleArticleResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Author        *string   `json:"author,omitempty"`
	ContentLength int       `json:"content_length"`
	CreatedAt     time.Time `json:"created_at"`
	IsSystem      bool      `json:"is_system"`
	Lang          string    `json:"lang"`
	Tags          []string  `json:"tags"`
}

type listArticlesResponse struct {
	Articles []simpleArticleResponse `json:"articles"`
	Count    int                     `json:"count"`
}

// Create handles POST /articles.
func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	art, err := h.svc.Create(r.Context(), article.CreateInput{
		Title:     req.Title,
		Author:    req.Author,
		Content:   req.Content,
		Lang:      domain.Language(req.Language),
		IsPrivate: req.IsPrivate,
		Tags:      req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]articleResponse{"article": toArticleResponse(art)})
}

// CreateFromURL handles POST /articles/fetch.
func (h *ArticleHandler) CreateFromURL(w http.ResponseWriter, r *http.Request) {
	var req fetchArticleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	art, err := h.svc.CreateFromURL(r.Context(), article.FetchInput{
		URL:       req.URL,
		Lang:      domain.Language(req.Language),
		IsPrivate: req.IsPrivate,
		Tags:      req.Tags,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]articleResponse{"article": toArticleResponse(art)})
}

// Get handles GET /articles/{id}.
func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	articleID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	art, err := h.svc.Get(r.Context(), articleID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]articleResponse{"article": toArticleResponse(art)})
}

// List handles GET /articles.
func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.List(r.Context(), listInputFromQuery(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListArticlesResponse(result))
}

// ListByUser handles GET /articles/user. Without a user_id parameter it
// lists the caller's own uploads.
func (h *ArticleHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	input := listInputFromQuery(r)

	if raw := r.URL.Query().Get("user_id"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}
		input.UserID = &userID
	}

	result, err := h.svc.ListByUser(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListArticlesResponse(result))
}

// listInputFromQuery reads the listing parameters shared by List and
// ListByUser. Language and search validation stays in the service.
func listInputFromQuery(r *http.Request) article.ListInput {
	input := article.ListInput{
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	if raw := r.URL.Query().Get("lang"); raw != "" {
		lang := domain.Language(raw)
		input.Lang = &lang
	}
	if raw := r.URL.Query().Get("search"); raw != "" {
		input.Search = &raw
	}

	return input
}

func toArticleResponse(a *domain.Article) articleResponse {
	return articleResponse{
		ID:            a.ID.String(),
		Title:         a.Title,
		Author:        a.Author,
		Content:       a.Content,
		ContentLength: a.ContentLength,
		Words:         a.Words,
		Sentences:     toTokenRanges(a.Sentences),
		UniqueWords:   a.UniqueWords,
		Pages:         toTokenRanges(a.Pages),
		CreatedAt:     a.CreatedAt,
		IsSystem:      a.IsSystem,
		UploaderID:    a.UploaderID.String(),
		Lang:          string(a.Lang),
		Tags:          a.Tags,
	}
}

func toSimpleArticleResponse(a domain.SimpleArticle) simpleArticleResponse {
	return simpleArticleResponse{
		ID:            a.ID.String(),
		Title:         a.Title,
		Author:        a.Author,
		ContentLength: a.ContentLength,
		CreatedAt:     a.CreatedAt,
		IsSystem:      a.IsSystem,
		Lang:          string(a.Lang),
		Tags:          a.Tags,
	}
}

func toListArticlesResponse(result *article.ListResult) listArticlesResponse {
	articles := make([]simpleArticleResponse, 0, len(result.Articles))
	for _, a := range result.Articles {
		articles = append(articles, toSimpleArticleResponse(a))
	}
	return listArticlesResponse{Articles: articles, Count: result.Total}
}

func toTokenRanges(ranges []domain.TokenRange) []tokenRangeResponse {
	out := make([]tokenRangeResponse, 0, len(ranges))
	for _, rng := range ranges {
		out = append(out, tokenRangeResponse{Start: rng.Start, End: rng.End})
	}
	return out
}
