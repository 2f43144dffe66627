//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
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

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/email"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/llm"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/pdf"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres"
	documentrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/document"
	flashcardrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/flashcard"
	progressrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/progress"
	quizrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/quiz"
	sessionrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/session"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/student"
	studyplanrepo "github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/studyplan"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/mudhakir-backend/internal/adapter/postgres/token"
	authpkg "github.com/heartmarshall/mudhakir-backend/internal/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/config"
	authsvc "github.com/heartmarshall/mudhakir-backend/internal/service/auth"
	"github.com/heartmarshall/mudhakir-backend/internal/service/document"
	"github.com/heartmarshall/mudhakir-backend/internal/service/flashcard"
	"github.com/heartmarshall/mudhakir-backend/internal/service/progress"
	"github.com/heartmarshall/mudhakir-backend/internal/service/quiz"
	"github.com/heartmarshall/mudhakir-backend/internal/service/session"
	"github.com/heartmarshall/mudhakir-backend/internal/service/studyplan"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/dataloader"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/middleware"
	"github.com/heartmarshall/mudhakir-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// cannedCompleter answers every prompt with both cards and questions; each
// generator decodes the part it asked for.
type cannedCompleter struct{}

func (cannedCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	return `{
	  "cards": [
	    {"question": "ما هي الخلية؟", "answer": "وحدة بناء الكائن الحي", "tags": ["أحياء"]},
	    {"question": "ما وظيفة الميتوكوندريا؟", "answer": "إنتاج الطاقة"}
	  ],
	  "questions": [
	    {"question": "ما وحدة بناء الكائن الحي؟", "options": ["الخلية", "الذرة", "العضو", "النسيج"], "answerIndex": 0, "explanation": "الخلية هي الوحدة الأساسية"},
	    {"question": "أين تُنتج الطاقة؟", "options": ["النواة", "الميتوكوندريا", "الجدار", "الفجوة"], "answerIndex": 1}
	  ]
	}`, nil
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
	students := student.New(pool)
	tokens := token.New(pool)
	plans := studyplanrepo.New(pool)
	docs := documentrepo.New(pool)
	decks := flashcardrepo.New(pool)
	quizzes := quizrepo.New(pool)
	sessions := sessionrepo.New(pool)
	snapshots := progressrepo.New(pool)

	// 4. JWT manager with a test secret (>= 32 chars).
	authCfg := config.AuthConfig{
		JWTSecret:        "test-secret-at-least-32-chars-long!!",
		JWTIssuer:        "test-issuer",
		AccessTokenTTL:   15 * time.Minute,
		RefreshTokenTTL:  720 * time.Hour,
		PasswordHashCost: 4,
		ResetTokenTTL:    30 * time.Minute,
	}
	jwtMgr := authpkg.NewJWTManager(authCfg.JWTSecret, authCfg.JWTIssuer, authCfg.AccessTokenTTL)

	// 5. Services. Password reset has no store, the LLM is canned.
	gen := llm.NewGenerator(cannedCompleter{}, 12000, logger)
	progressCfg := config.ProgressConfig{
		Timezone:           "UTC",
		DefaultHistoryDays: 30,
		MaxHistoryDays:     365,
		Location:           time.UTC,
	}
	uploadCfg := config.UploadConfig{
		MaxSizeBytes:      1 << 20,
		ProcessTimeout:    10 * time.Second,
		MaxExtractedChars: 100000,
	}

	authService := authsvc.NewService(logger, students, tokens, txm, jwtMgr,
		authpkg.NewHasher(authCfg.PasswordHashCost), nil, email.NewLogMailer(logger), authCfg)
	planService := studyplan.NewService(logger, plans, txm)
	documentService := document.NewService(logger, docs, nil, nil, pdf.NewExtractor(uploadCfg.MaxExtractedChars), nil, uploadCfg)
	flashcardService := flashcard.NewService(logger, decks, docs, gen, txm)
	quizService := quiz.NewService(logger, quizzes, docs, nil, gen)
	sessionService := session.NewService(logger, sessions)
	progressService := progress.NewService(logger, plans, sessions, quizzes, snapshots, students, progressCfg)

	// 6. Router + middleware chain.
	mux := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(pool, "test-version"),
		Auth:      rest.NewAuthHandler(authService, logger),
		StudyPlan: rest.NewStudyPlanHandler(planService, time.UTC, logger),
		Document:  rest.NewDocumentHandler(documentService, uploadCfg.MaxSizeBytes, logger),
		Flashcard: rest.NewFlashcardHandler(flashcardService, logger),
		Quiz:      rest.NewQuizHandler(quizService, logger),
		Session:   rest.NewSessionHandler(sessionService, logger),
		Progress:  rest.NewProgressHandler(progressService, logger),
	}, nil)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.ClientIP(false),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
		dataloader.Middleware(&dataloader.Repos{Task: plans, Card: decks}),
	)(mux)

	// 7. httptest server.
	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// ---------------------------------------------------------------------------
// Request helpers.
// ---------------------------------------------------------------------------

// do sends a JSON request and returns the status and raw body.
func (ts *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// doJSON is do plus decoding the body into a map.
func (ts *testServer) doJSON(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, token, body)
	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return status, out
}

// doList is do plus decoding a JSON array.
func (ts *testServer) doList(t *testing.T, method, path, token string) (int, []map[string]any) {
	t.Helper()

	status, raw := ts.do(t, method, path, token, nil)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return status, out
}

// ---------------------------------------------------------------------------
// createStudent inserts a student directly into the DB and returns a valid
// access token together with the student's ID.
// ---------------------------------------------------------------------------

func createStudent(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	s := testhelper.SeedStudent(t, ts.Pool)
	tok, err := ts.jwt.GenerateAccessToken(s.ID, s.Email)
	require.NoError(t, err)
	return tok, s.ID
}
