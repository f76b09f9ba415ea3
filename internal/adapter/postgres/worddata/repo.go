// Package worddata implements the per-user vocabulary repository using
// PostgreSQL.
//
// Storage is one row per (user_id, lang, word) with independently nullable
// status and definition columns. Get folds the rows back into the two maps
// of domain.UserWordData; upserts touch exactly the rows they name, so
// concurrent writers to different words never conflict and writers to the
// same word resolve as last-write-wins.
package worddata

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// Repo provides word data persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new word data repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Get returns the vocabulary record for one (user, lang) pair. A pair with
// no rows at all returns domain.ErrNotFound; the service layer turns that
// into the lazy empty record.
func (r *Repo) Get(ctx context.Context, userID uuid.UUID, lang domain.Language) (*domain.UserWordData, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT word, status, definition FROM user_word_data WHERE user_id = $1 AND lang = $2`,
		userID, lang,
	)
	if err != nil {
		return nil, mapError(err, "word_data", userID)
	}
	defer rows.Close()

	data := domain.NewUserWordData(userID, lang)
	found := false
	for rows.Next() {
		var (
			word       string
			status     *string
			definition *string
		)
		if err := rows.Scan(&word, &status, &definition); err != nil {
			return nil, mapError(err, "word_data", userID)
		}
		found = true
		if status != nil {
			data.StatusByWord[word] = domain.WordStatus(*status)
		}
		if definition != nil {
			data.DefinitionByWord[word] = *definition
		}
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err, "word_data", userID)
	}
	if !found {
		return nil, mapError(pgx.ErrNoRows, "word_data", userID)
	}

	return data, nil
}

// UpsertStatuses writes one status for every given word in a single
// statement. Words must already be case-folded by the caller.
func (r *Repo) UpsertStatuses(ctx context.Context, userID uuid.UUID, lang domain.Language, words []string, status domain.WordStatus) error {
	if len(words) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO user_word_data (user_id, lang, word, status, updated_at)
		 SELECT $1, $2, w, $3, now() FROM unnest($4::text[]) AS w
		 ON CONFLICT (user_id, lang, word)
		 DO UPDATE SET status = EXCLUDED.status, updated_at = EXCLUDED.updated_at`,
		userID, lang, status, words,
	)
	if err != nil {
		return mapError(err, "word_data", userID)
	}
	return nil
}

// UpsertDefinition writes the definition for one word, creating the row if
// the word was never marked. The value is stored verbatim.
func (r *Repo) UpsertDefinition(ctx context.Context, userID uuid.UUID, lang domain.Language, word, definition string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx,
		`INSERT INTO user_word_data (user_id, lang, word, definition, updated_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (user_id, lang, word)
		 DO UPDATE SET definition = EXCLUDED.definition, updated_at = EXCLUDED.updated_at`,
		userID, lang, word, definition,
	)
	if err != nil {
		return mapError(err, "word_data", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// Failed dials never reach the server; the store is unreachable.
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreUnavailable, err)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
		if strings.HasPrefix(pgErr.Code, "08") || strings.HasPrefix(pgErr.Code, "57P") {
			return fmt.Errorf("%s %s: %w: %w", entity, id, domain.ErrStoreUnavailable, err)
		}
	}

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
