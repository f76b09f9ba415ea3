package worddata

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// UpdateDefinition stores the user's personal note for a word. The key is
// case-folded like everywhere else, but the definition itself is kept
// verbatim. An empty definition overwrites the previous one.
func (s *Service) UpdateDefinition(ctx context.Context, input UpdateDefinitionInput) error {
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

	// Step 3: Write inside a transaction.
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.words.UpsertDefinition(txCtx, userID, input.Lang, word, input.Definition)
	})
	if err != nil {
		return fmt.Errorf("worddata.UpdateDefinition: %w", err)
	}

	s.log.DebugContext(ctx, "word definition updated",
		slog.String("lang", string(input.Lang)),
	)

	return nil
}
