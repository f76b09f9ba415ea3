package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lingreader-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/article"
	userrepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/user"
	worddatarepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/worddata"
	authpkg "github.com/heartmarshall/lingreader-backend/internal/auth"
	"github.com/heartmarshall/lingreader-backend/internal/config"
	"github.com/heartmarshall/lingreader-backend/internal/domain"
	"github.com/heartmarshall/lingreader-backend/internal/fetch"
	"github.com/heartmarshall/lingreader-backend/internal/metrics"
	articlesvc "github.com/heartmarshall/lingreader-backend/internal/service/article"
	authsvc "github.com/heartmarshall/lingreader-backend/internal/service/auth"
	usersvc "github.com/heartmarshall/lingreader-backend/internal/service/user"
	worddatasvc "github.com/heartmarshall/lingreader-backend/internal/service/worddata"
	"github.com/heartmarshall/lingreader-backend/internal/textseg"
	"github.com/heartmarshall/lingreader-backend/internal/transport/middleware"
	"github.com/heartmarshall/lingreader-backend/internal/transport/rest"
)

// Run assembles the full application and serves HTTP until ctx is
// cancelled or the server fails, then shuts down gracefully within the
// configured timeout.
func Run(ctx context.Context) error {
	// 1. Configuration and logging.
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	// 2. Segmentation engines. The zh/ja dictionaries take a while to
	// load; paying that cost now keeps the first article upload fast.
	warm := make([]domain.Language, 0, len(cfg.Text.WarmLanguages))
	for _, l := range cfg.Text.WarmLanguages {
		warm = append(warm, domain.Language(l))
	}
	if err := textseg.Warm(warm...); err != nil {
		return fmt.Errorf("warm segmenters: %w", err)
	}

	// 3. Database.
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)

	// 4. Repositories.
	users := userrepo.New(pool)
	articles := articlerepo.New(pool)
	wordData := worddatarepo.New(pool)

	// 5. Token manager, fetcher, services.
	tokens := authpkg.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	fetcher := fetch.New(logger, cfg.Fetch)

	authService := authsvc.NewService(logger, users, tokens, cfg.Auth)
	articleService := articlesvc.NewService(logger, articles, textseg.Segmenter{}, fetcher, cfg.Text)
	userService := usersvc.NewService(logger, users, cfg.Auth)
	wordDataService := worddatasvc.NewService(logger, wordData, txm)

	// 6. Handlers and routes.
	httpMetrics := metrics.NewHTTP()

	authHandler := rest.NewAuthHandler(authService, logger)
	userHandler := rest.NewUserHandler(userService, logger)
	articleHandler := rest.NewArticleHandler(articleService, logger)
	wordHandler := rest.NewWordHandler(wordDataService, logger)
	healthHandler := rest.NewHealthHandler(pool, BuildVersion())

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()
	credLimit := limiter.Limit(cfg.Auth.RatePerMinute)

	mux := http.NewServeMux()

	mux.Handle("POST /auth/register", credLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /auth/login", credLimit(http.HandlerFunc(authHandler.Login)))
	mux.Handle("POST /auth/refresh", credLimit(http.HandlerFunc(authHandler.Refresh)))

	mux.HandleFunc("GET /users", userHandler.List)
	mux.HandleFunc("GET /users/me", userHandler.GetMe)
	mux.HandleFunc("PATCH /users/me", userHandler.UpdateMe)

	mux.HandleFunc("GET /articles", articleHandler.List)
	mux.HandleFunc("POST /articles", articleHandler.Create)
	mux.HandleFunc("POST /articles/fetch", articleHandler.CreateFromURL)
	mux.HandleFunc("GET /articles/user", articleHandler.ListByUser)
	mux.HandleFunc("GET /articles/{id}", articleHandler.Get)

	mux.HandleFunc("GET /words", wordHandler.Get)
	mux.HandleFunc("PUT /words/status", wordHandler.UpdateStatus)
	mux.HandleFunc("PUT /words/status/batch", wordHandler.BatchUpdateStatus)
	mux.HandleFunc("PUT /words/definition", wordHandler.UpdateDefinition)

	mux.HandleFunc("GET /live", healthHandler.Live)
	mux.HandleFunc("GET /ready", healthHandler.Ready)
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", httpMetrics.Handler())

	// 7. Middleware chain. Metrics wraps the mux directly: the route label
	// comes from the pattern the mux stamps on the request it was handed.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(cfg.CORS),
		middleware.Auth(tokens),
		middleware.Logger(logger),
		middleware.Metrics(httpMetrics),
	)(mux)

	// 8. Serve until the context is cancelled, then drain.
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	return g.Wait()
}
