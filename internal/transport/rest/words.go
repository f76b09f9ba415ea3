package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/internal/service/worddata"
)

// wordDataService defines the minimal interface needed by WordHandler.
type wordDataService interface {
	Get(ctx context.Context, lang domain.Language) (*domain.UserWordData, error)
	UpdateStatus(ctx context.Context, input worddata.UpdateStatusInput) error
	BatchUpdateStatus(ctx context.Context, input worddata.BatchUpdateStatusInput) (int, error)
	UpdateDefinition(ctx context.Context, input worddata.UpdateDefinitionInput) error
}

// WordHandler serves per-user word data REST endpoints.
type WordHandler struct {
	svc wordDataService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc wordDataService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "word")}
}

type updateStatusRequest struct {
	Lang   string `json:"lang"`
	Word   string `json:"word"`
	Status string `json:"status"`
}

type batchUpdateStatusRequest struct {
	Lang   string   `json:"lang"`
	Words  []string `json:"words"`
	Status string   `json:"status"`
}

type updateDefinitionRequest struct {
	Lang       string `json:"lang"`
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type wordDataResponse struct {
	WordStatusData     map[string]string `json:"word_status_data"`
	WordDefinitionData map[string]string `json:"word_definition_data"`
}

type batchUpdateResponse struct {
	Updated int `json:"updated"`
}

// Get handles GET /words.
func (h *WordHandler) Get(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Get(r.Context(), domain.Language(r.URL.Query().Get("lang")))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordDataResponse(data))
}

// UpdateStatus handles PUT /words/status.
func (h *WordHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.UpdateStatus(r.Context(), worddata.UpdateStatusInput{
		Lang:   domain.Language(req.Lang),
		Word:   req.Word,
		Status: domain.WordStatus(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// BatchUpdateStatus handles PUT /words/status/batch.
func (h *WordHandler) BatchUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req batchUpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.BatchUpdateStatus(r.Context(), worddata.BatchUpdateStatusInput{
		Lang:   domain.Language(req.Lang),
		Words:  req.Words,
		Status: domain.WordStatus(req.Status),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, batchUpdateResponse{Updated: updated})
}

// UpdateDefinition handles PUT /words/definition.
func (h *WordHandler) UpdateDefinition(w http.ResponseWriter, r *http.Request) {
	var req updateDefinitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := h.svc.UpdateDefinition(r.Context(), worddata.UpdateDefinitionInput{
		Lang:       domain.Language(req.Lang),
		Word:       req.Word,
		Definition: req.Definition,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func toWordDataResponse(data *domain.UserWordData) wordDataResponse {
	statuses := make(map[string]string, len(data.StatusByWord))
	for word, status := range data.StatusByWord {
		statuses[word] = string(status)
	}
	return wordDataResponse{
		WordStatusData:     statuses,
		WordDefinitionData: data.DefinitionByWord,
	}
}
