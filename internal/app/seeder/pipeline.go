package seeder

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/internal/service/article"
	"github.com/heartmarshall/lingreader-backend/pkg/ctxutil"
)

// findPageSize is the batch size used when collecting already-seeded titles.
const findPageSize = 500

// userStore is the slice of the user repository the pipeline needs.
type userStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// articleStore is used to discover which manifest entries already exist.
type articleStore interface {
	Find(ctx context.Context, filter domain.ArticleFilter) ([]domain.SimpleArticle, int, error)
}

// articleCreator runs the segmentation/indexing pipeline and stores the
// result. Satisfied by the article service.
type articleCreator interface {
	Create(ctx context.Context, input article.CreateInput) (*domain.Article, error)
}

// Result aggregates the outcome of a seeding run.
type Result struct {
	Seeded   int
	Skipped  int
	Failed   int
	Duration time.Duration
}

// Pipeline seeds the shared article library from a manifest. Reruns are
// idempotent: entries whose title the library account already uploaded are
// skipped.
type Pipeline struct {
	log      *slog.Logger
	users    userStore
	articles articleStore
	creator  articleCreator
	cfg      Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, users userStore, articles articleStore, creator articleCreator, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log.With(slog.String("component", "seeder")),
		users:    users,
		articles: articles,
		creator:  creator,
		cfg:      cfg,
	}
}

// Run seeds every manifest entry that is not already present. Entries that
// fail to read, validate, or store are logged and counted; they never abort
// the run. In dry-run mode nothing is written and seedable entries count as
// skipped.
func (p *Pipeline) Run(ctx context.Context, m *Manifest) (*Result, error) {
	start := time.Now()
	res := &Result{}

	// Step 1: Resolve the account that owns seeded articles.
	owner, err := p.libraryUser(ctx)
	if err != nil {
		return nil, err
	}

	// Step 2: Collect titles the account already uploaded.
	existing := make(map[string]bool)
	if owner != nil {
		existing, err = p.existingTitles(ctx, owner.ID)
		if err != nil {
			return nil, err
		}
	}

	// Step 3: Seed entries in manifest order.
	for _, item := range m.Articles {
		log := p.log.With(slog.String("file", item.File), slog.String("title", item.Title))

		if existing[item.Title] {
			res.Skipped++
			continue
		}

		input, err := buildInput(m.Dir(), item)
		if err != nil {
			res.Failed++
			log.Warn("entry rejected", slog.String("error", err.Error()))
			continue
		}

		if p.cfg.DryRun {
			res.Skipped++
			continue
		}

		if _, err := p.creator.Create(ctxutil.WithUserID(ctx, owner.ID), *input); err != nil {
			res.Failed++
			log.Warn("entry failed", slog.String("error", err.Error()))
			continue
		}
		existing[item.Title] = true
		res.Seeded++
	}

	res.Duration = time.Since(start)
	p.log.Info("seeding completed",
		slog.Int("seeded", res.Seeded),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
		slog.Duration("duration", res.Duration))

	return res, nil
}

// libraryUser returns the account owning seeded articles, creating it on
// first use. In dry-run mode a missing account is reported as nil instead
// of being created.
func (p *Pipeline) libraryUser(ctx context.Context) (*domain.User, error) {
	owner, err := p.users.GetByUsername(ctx, p.cfg.LibraryUser)
	if err == nil {
		return owner, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("look up library user: %w", err)
	}
	if p.cfg.DryRun {
		return nil, nil
	}

	// The account exists only to own library articles; a random password
	// hash keeps it unusable for login.
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate library password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword(secret, bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash library password: %w", err)
	}

	owner, err = p.users.Create(ctx, &domain.User{
		ID:           uuid.New(),
		Username:     p.cfg.LibraryUser,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		StudyLang:    domain.LanguageEnglish,
		DisplayLang:  domain.LanguageEnglish,
	})
	if err != nil {
		return nil, fmt.Errorf("create library user: %w", err)
	}

	p.log.Info("library user created", slog.String("username", owner.Username))
	return owner, nil
}

// existingTitles pages through the account's uploads and returns the set of
// titles already present.
func (p *Pipeline) existingTitles(ctx context.Context, ownerID uuid.UUID) (map[string]bool, error) {
	titles := make(map[string]bool)

	for offset := 0; ; offset += findPageSize {
		batch, total, err := p.articles.Find(ctx, domain.ArticleFilter{
			UploaderID: &ownerID,
			Limit:      findPageSize,
			Offset:     offset,
		})
		if err != nil {
			return nil, fmt.Errorf("list seeded articles: %w", err)
		}
		for _, a := range batch {
			titles[a.Title] = true
		}
		if len(batch) == 0 || offset+len(batch) >= total {
			return titles, nil
		}
	}
}

// buildInput reads the entry's content file and assembles a validated create
// input. Validation failures here are per-entry and leave the rest of the
// run untouched.
func buildInput(baseDir string, item Entry) (*article.CreateInput, error) {
	raw, err := os.ReadFile(filepath.Join(baseDir, item.File))
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	input := article.CreateInput{
		Title:   item.Title,
		Content: string(raw),
		Lang:    domain.Language(item.Lang),
		Tags:    item.Tags,
	}
	if item.Author != "" {
		input.Author = &item.Author
	}

	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &input, nil
}
