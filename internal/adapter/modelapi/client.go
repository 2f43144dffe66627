// Package modelapi is the HTTP client of the sibling model microservice that
// receives extracted document text and generates quizzes.
package modelapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const retryDelay = 500 * time.Millisecond

// Client talks to the model service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Client for baseURL with the given request timeout.
func New(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "modelapi"),
	}
}

type forwardRequest struct {
	DocumentID uuid.UUID `json:"documentId"`
	OwnerID    uuid.UUID `json:"ownerId"`
	Name       string    `json:"name"`
	Text       string    `json:"text"`
}

// ForwardDocument sends the extracted text of a document to the model service.
func (c *Client) ForwardDocument(ctx context.Context, doc *domain.Document) error {
	body := forwardRequest{
		DocumentID: doc.ID,
		OwnerID:    doc.OwnerID,
		Name:       doc.OriginalName,
		Text:       doc.Text,
	}
	if err := c.post(ctx, "/documents", body, nil); err != nil {
		return fmt.Errorf("modelapi: forward document %s: %w", doc.ID, err)
	}
	return nil
}

type generateQuizRequest struct {
	Text  string `json:"text"`
	Level string `json:"level"`
	Count int    `json:"count"`
}

type generateQuizResponse struct {
	Questions []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		AnswerIndex int      `json:"answerIndex"`
		Explanation string   `json:"explanation"`
	} `json:"questions"`
}

// GenerateQuiz asks the model service for count questions about text.
func (c *Client) GenerateQuiz(ctx context.Context, text string, level domain.QuizLevel, count int) ([]domain.QuizQuestion, error) {
	var resp generateQuizResponse
	req := generateQuizRequest{Text: text, Level: string(level), Count: count}
	if err := c.post(ctx, "/generate-quiz", req, &resp); err != nil {
		return nil, fmt.Errorf("modelapi: generate quiz: %w", err)
	}

	raw := make([]domain.QuizQuestion, len(resp.Questions))
	for i, q := range resp.Questions {
		raw[i] = domain.QuizQuestion(q)
	}
	questions := domain.CleanQuestions(raw, count)
	if len(questions) == 0 {
		return nil, fmt.Errorf("modelapi: generate quiz: no usable questions: %w", domain.ErrUnavailable)
	}

	c.log.DebugContext(ctx, "quiz generated",
		slog.Int("requested", count),
		slog.Int("received", len(resp.Questions)),
		slog.Int("kept", len(questions)),
	)
	return questions, nil
}

// post sends body as JSON and decodes a 2xx reply into out (if non-nil).
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, path, payload)
	if err != nil {
		c.log.ErrorContext(ctx, "modelapi request failed", slog.String("path", path), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", err, domain.ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s: %w", resp.StatusCode, bytes.TrimSpace(snippet), domain.ErrUnavailable)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %v: %w", err, domain.ErrUnavailable)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, path string, payload []byte) (*http.Response, error) {
	resp, err := c.do(ctx, path, payload)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "modelapi retry", slog.String("path", path), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return c.do(ctx, path, payload)
}

func (c *Client) do(ctx context.Context, path string, payload []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.httpClient.Do(req)
}
