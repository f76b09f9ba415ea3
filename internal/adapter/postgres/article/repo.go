// Package article implements the Article repository using PostgreSQL.
//
// The derived index (words, sentences, unique_words, pages) is stored as
// jsonb next to the verbatim content, so an article is always read back
// exactly as the pipeline produced it and is never re-segmented.
package article

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// articleColumns is the full column list in scanArticle order.
const articleColumns = `id, title, author, content, content_length, words, sentences, unique_words, pages, created_at, is_system, uploader_id, lang, tags`

// simpleColumns is the listing projection in scanSimple order.
const simpleColumns = `id, title, author, content_length, created_at, is_system, lang, tags`

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new article repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a full article, index included.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`,
		id,
	)

	a, err := scanArticle(row)
	if err != nil {
		return nil, mapError(err, "article", id)
	}
	return a, nil
}

// Find returns a page of listing projections matching the filter plus the
// total match count. Newest first.
func (r *Repo) Find(ctx context.Context, filter domain.ArticleFilter) ([]domain.SimpleArticle, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	conds := filterConds(filter)

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").
		From("articles").
		Where(conds).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, mapError(err, "article", uuid.Nil)
	}

	pageSQL, pageArgs, err := postgres.Builder().
		Select(simpleColumns).
		From("articles").
		Where(conds).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build page query: %w", err)
	}

	rows, err := q.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, mapError(err, "article", uuid.Nil)
	}
	defer rows.Close()

	articles := make([]domain.SimpleArticle, 0, filter.Limit)
	for rows.Next() {
		a, err := scanSimple(rows)
		if err != nil {
			return nil, 0, mapError(err, "article", uuid.Nil)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "article", uuid.Nil)
	}

	return articles, total, nil
}

// filterConds translates an ArticleFilter into WHERE conditions.
func filterConds(filter domain.ArticleFilter) squirrel.And {
	conds := squirrel.And{}
	if filter.Lang != nil {
		conds = append(conds, squirrel.Eq{"lang": string(*filter.Lang)})
	}
	if filter.UploaderID != nil {
		conds = append(conds, squirrel.Eq{"uploader_id": *filter.UploaderID})
	}
	if filter.SystemOnly {
		conds = append(conds, squirrel.Eq{"is_system": true})
	}
	if filter.Search != nil {
		conds = append(conds, squirrel.ILike{"title": "%" + escapeLike(*filter.Search) + "%"})
	}
	return conds
}

// escapeLike neutralizes LIKE metacharacters in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new article and returns the persisted row.
func (r *Repo) Create(ctx context.Context, a *domain.Article) (*domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO articles (id, title, author, content, content_length, words, sentences, unique_words, pages, created_at, is_system, uploader_id, lang, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		 RETURNING `+articleColumns,
		a.ID, a.Title, a.Author, a.Content, a.ContentLength,
		a.Words, a.Sentences, a.UniqueWords, a.Pages,
		a.CreatedAt, a.IsSystem, a.UploaderID, a.Lang, a.Tags,
	)

	created, err := scanArticle(row)
	if err != nil {
		return nil, mapError(err, "article", a.ID)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Row scanning
// ---------------------------------------------------------------------------

// scanArticle reads one full article row in articleColumns order. The jsonb
// index columns unmarshal straight into the domain types.
func scanArticle(row pgx.Row) (*domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Author,
		&a.Content,
		&a.ContentLength,
		&a.Words,
		&a.Sentences,
		&a.UniqueWords,
		&a.Pages,
		&a.CreatedAt,
		&a.IsSystem,
		&a.UploaderID,
		&a.Lang,
		&a.Tags,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// scanSimple reads one listing row in simpleColumns order.
func scanSimple(row pgx.Row) (domain.SimpleArticle, error) {
	var a domain.SimpleArticle
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Author,
		&a.ContentLength,
		&a.CreatedAt,
		&a.IsSystem,
		&a.Lang,
		&a.Tags,
	)
	if err != nil {
		return domain.SimpleArticle{}, err
	}
	return a, nil
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
