package worddata

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordDataRepo interface {
	Get(ctx context.Context, userID uuid.UUID, lang domain.Language) (*domain.UserWordData, error)
	UpsertStatuses(ctx context.Context, userID uuid.UUID, lang domain.Language, words []string, status domain.WordStatus) error
	UpsertDefinition(ctx context.Context, userID uuid.UUID, lang domain.Language, word, definition string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service tracks per-user vocabulary progress. Every word reaching the
// repository has already been case-folded; readers therefore always see
// one entry per distinct folded word.
type Service struct {
	log   *slog.Logger
	words wordDataRepo
	tx    txManager
}

// NewService creates a new word data service instance.
func NewService(logger *slog.Logger, words wordDataRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "worddata"),
		words: words,
		tx:    tx,
	}
}

// foldWords case-folds words and drops duplicates, preserving first-seen
// order. ["Cat", "cat", "DOG"] collapses to ["cat", "dog"].
func foldWords(words []string) []string {
	folded := make([]string, 0, len(words))
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		fw := domain.NormalizeWord(w)
		if _, ok := seen[fw]; ok {
			continue
		}
		seen[fw] = struct{}{}
		folded = append(folded, fw)
	}
	return folded
}
