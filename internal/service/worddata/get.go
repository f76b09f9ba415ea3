package worddata

import (
	"context"
	"errors"
	"fmt"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// Get returns the caller's vocabulary record for one language. Records are
// created lazily on first write, so a language the user never touched reads
// as empty maps rather than ErrNotFound.
func (s *Service) Get(ctx context.Context, lang domain.Language) (*domain.UserWordData, error) {
	// Step 1: Identify the caller.
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if !lang.IsValid() {
		return nil, domain.NewValidationError("lang", "unsupported language")
	}

	// Step 2: Load the record, substituting the lazy zero state.
	data, err := s.words.Get(ctx, userID, lang)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewUserWordData(userID, lang), nil
	}
	if err != nil {
		return nil, fmt.Errorf("worddata.Get: %w", err)
	}

	return data, nil
}
