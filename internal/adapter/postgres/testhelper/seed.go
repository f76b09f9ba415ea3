package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a unique username and en/en language pair.
// The stored password hash is a placeholder, not a real bcrypt hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Username:     "reader-" + suffix,
		PasswordHash: "$2a$04$placeholderhash" + suffix,
		StudyLang:    domain.LanguageEnglish,
		DisplayLang:  domain.LanguageEnglish,
		CreatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, password_hash, study_lang, display_lang, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Username, user.PasswordHash, user.StudyLang, user.DisplayLang, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedArticle creates a short English article with a real-looking index:
// six tokens, one sentence, one page. Set isSystem=false for a private
// upload. Returns a filled domain.Article.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, uploaderID uuid.UUID, isSystem bool) domain.Article {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	article := domain.Article{
		ID:            uuid.New(),
		Title:         "Seed Article " + suffix,
		Content:       "Hello, brave world!",
		ContentLength: 19,
		Words:         []string{"Hello", ",", " ", "brave", " ", "world", "!"},
		Sentences:     []domain.TokenRange{{Start: 0, End: 7}},
		UniqueWords:   map[string]bool{"hello": true, "brave": true, "world": true},
		Pages:         []domain.TokenRange{{Start: 0, End: 7}},
		CreatedAt:     now,
		IsSystem:      isSystem,
		UploaderID:    uploaderID,
		Lang:          domain.LanguageEnglish,
		Tags:          []string{"seed"},
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO articles (id, title, author, content, content_length, words, sentences, unique_words, pages, created_at, is_system, uploader_id, lang, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		article.ID, article.Title, article.Author, article.Content, article.ContentLength,
		article.Words, article.Sentences, article.UniqueWords, article.Pages,
		article.CreatedAt, article.IsSystem, article.UploaderID, article.Lang, article.Tags,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle insert article: %v", err)
	}

	return article
}

// SeedWordRow inserts one vocabulary row. Pass nil for status or definition
// to leave that column NULL.
func SeedWordRow(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, lang domain.Language, word string, status *domain.WordStatus, definition *string) {
	t.Helper()
	ctx := context.Background()

	_, err := pool.Exec(ctx,
		`INSERT INTO user_word_data (user_id, lang, word, status, definition, updated_at)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		userID, lang, word, status, definition,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWordRow insert: %v", err)
	}
}
