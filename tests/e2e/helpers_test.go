//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/lingreader-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/article"
	"github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/user"
	worddatarepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/worddata"
	authpkg "github.com/heartmarshall/lingreader-backend/internal/auth"
	"github.com/heartmarshall/lingreader-backend/internal/config"
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

// Token settings shared by the test server and the expired-token helper.
const (
	testJWTSecret = "test-secret-at-least-32-chars-long!!"
	testJWTIssuer = "test-issuer"
	testAccessTTL = 15 * time.Minute
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	tokens *authpkg.TokenManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// ---------------------------------------------------------------------------
// setupTestServer bootstraps the full application stack backed by
// a real PostgreSQL container (shared via testhelper).
// ---------------------------------------------------------------------------

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	// 1. Get pool from testcontainers-backed helper.
	pool := testhelper.SetupTestDB(t)

	// 2. Infrastructure.
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	// 3. Repositories.
	users := userrepo.New(pool)
	articles := articlerepo.New(pool)
	wordData := worddatarepo.New(pool)

	// 4. Token manager with a test secret (>= 32 chars).
	tokens := authpkg.NewTokenManager(testJWTSecret, testJWTIssuer, testAccessTTL)

	authCfg := config.AuthConfig{
		JWTSecret:        testJWTSecret,
		JWTIssuer:        testJWTIssuer,
		AccessTokenTTL:   testAccessTTL,
		PasswordHashCost: bcrypt.MinCost, // keeps registration cheap
		RatePerMinute:    50,
	}

	// 5. Services. No segmenter warm-up: zh/ja dictionaries load on first use.
	fetcher := fetch.New(logger, config.FetchConfig{
		Timeout:   5 * time.Second,
		MaxBytes:  1 << 20,
		UserAgent: "lingreader-test/1.0",
	})

	authService := authsvc.NewService(logger, users, tokens, authCfg)
	articleService := articlesvc.NewService(logger, articles, textseg.Segmenter{}, fetcher, config.TextConfig{PageSize: 500})
	userService := usersvc.NewService(logger, users, authCfg)
	wordDataService := worddatasvc.NewService(logger, wordData, txm)

	// 6. Handlers and routes, mirroring the production mux.
	httpMetrics := metrics.NewHTTP()

	authHandler := rest.NewAuthHandler(authService, logger)
	userHandler := rest.NewUserHandler(userService, logger)
	articleHandler := rest.NewArticleHandler(articleService, logger)
	wordHandler := rest.NewWordHandler(wordDataService, logger)
	healthHandler := rest.NewHealthHandler(pool, "test-version")

	limiter := middleware.NewRateLimiter(time.Minute)
	t.Cleanup(limiter.Stop)
	credLimit := limiter.Limit(authCfg.RatePerMinute)

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

	// 7. Middleware chain, in production order.
	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,PATCH,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(tokens),
		middleware.Logger(logger),
		middleware.Metrics(httpMetrics),
	)(mux)

	// 8. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		tokens: tokens,
	}
}

// ---------------------------------------------------------------------------
// HTTP helpers
// ---------------------------------------------------------------------------

// request sends one JSON request and returns the raw response.
func (ts *testServer) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// doJSON sends one JSON request and returns status plus decoded JSON body.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	resp := ts.request(t, method, path, token, body)
	defer resp.Body.Close()

	var result map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// ---------------------------------------------------------------------------
// Account helpers
// ---------------------------------------------------------------------------

// testAccount is a user registered through the API plus its current tokens.
type testAccount struct {
	UserID       string
	Username     string
	Password     string
	AccessToken  string
	RefreshToken string
}

// registerAndLogin creates a fresh account through /auth/register and logs
// it in, exactly as a client would.
func registerAndLogin(t *testing.T, ts *testServer) *testAccount {
	t.Helper()

	username := "reader-" + uuid.New().String()[:8]
	password := "reading-is-fun"

	status, body := ts.doJSON(t, http.MethodPost, "/auth/register", "", map[string]any{
		"username":     username,
		"password":     password,
		"study_lang":   "en",
		"display_lang": "en",
	})
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object in register response")
	userID, _ := user["id"].(string)
	require.NotEmpty(t, userID)

	acc := &testAccount{UserID: userID, Username: username, Password: password}
	acc.login(t, ts)
	return acc
}

// login replaces the account's token pair via /auth/login.
func (a *testAccount) login(t *testing.T, ts *testServer) {
	t.Helper()

	status, body := ts.doJSON(t, http.MethodPost, "/auth/login", "", map[string]any{
		"username": a.Username,
		"password": a.Password,
	})
	require.Equal(t, http.StatusOK, status, "login: %v", body)

	a.AccessToken, _ = body["token"].(string)
	a.RefreshToken, _ = body["refresh_token"].(string)
	require.NotEmpty(t, a.AccessToken)
	require.NotEmpty(t, a.RefreshToken)
}

// expiredAccessToken mints an access token for the account that is already
// past its expiry but otherwise valid (same secret and issuer).
func expiredAccessToken(t *testing.T, ts *testServer, a *testAccount) string {
	t.Helper()

	claims, err := ts.tokens.Verify(a.AccessToken)
	require.NoError(t, err)

	backdated := authpkg.NewTokenManager(testJWTSecret, testJWTIssuer, -time.Minute)
	tok, err := backdated.Issue(claims)
	require.NoError(t, err)
	return tok
}

// foreignToken mints a token for the account's claims under a different
// signing secret, as a forger without the real secret would.
func foreignToken(t *testing.T, ts *testServer, a *testAccount) string {
	t.Helper()

	claims, err := ts.tokens.Verify(a.AccessToken)
	require.NoError(t, err)

	other := authpkg.NewTokenManager("another-secret-also-32-chars-long!!!", testJWTIssuer, testAccessTTL)
	tok, err := other.Issue(claims)
	require.NoError(t, err)
	return tok
}
