package worddata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// UpdateStatus marks a single word with a learning status. The word is
// case-folded before writing, so "Cat" and "cat" land on the same entry.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) error {
	// Step 1: Identify the caller.
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	// Step 2: Validate input.
	if err := input.Validate(); err != nil {
		return err
	}

	word := domain.NormalizeWord(input.Word)

	// Step 3: Write inside a transaction. Concurrent writers to the same
	// entry resolve as last-write-wins; entries never vanish mid-update.
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.words.UpsertStatuses(txCtx, userID, input.Lang, []string{word}, input.Status)
	})
	if err != nil {
		return fmt.Errorf("worddata.UpdateStatus: %w", err)
	}

	// Per-word updates fire on every reader tap, so keep them out of the
	// info stream.
	s.log.DebugContext(ctx, "word status updated",
		slog.String("lang", string(input.Lang)),
		slog.String("status", string(input.Status)),
	)

	return nil
}
