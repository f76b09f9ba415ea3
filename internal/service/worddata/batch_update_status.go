package worddata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// BatchUpdateStatus marks many words with the same status in one atomic
// write: either every word is stored or none is. Case-folding may collapse
// input duplicates, so the returned count can be smaller than len(Words).
func (s *Service) BatchUpdateStatus(ctx context.Context, input BatchUpdateStatusInput) (int, error) {
	// Step 1: Identify the caller.
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	// Step 2: Validate input.
	if err := input.Validate(); err != nil {
		return 0, err
	}

	words := foldWords(input.Words)

	// Step 3: Write all entries in a single transaction.
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.words.UpsertStatuses(txCtx, userID, input.Lang, words, input.Status)
	})
	if err != nil {
		return 0, fmt.Errorf("worddata.BatchUpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "word statuses updated",
		slog.String("lang", string(input.Lang)),
		slog.String("status", string(input.Status)),
		slog.Int("words", len(words)),
	)

	return len(words), nil
}
