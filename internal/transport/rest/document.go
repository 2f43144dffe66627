package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/mudhakir-backend/internal/domain"
	"github.com/heartmarshall/mudhakir-backend/internal/service/document"
)

// uploadField is the multipart field carrying the PDF.
const uploadField = "pdf"

// multipartOverhead covers boundaries and part headers on top of the file.
const multipartOverhead = 1 << 20

type documentService interface {
	Upload(ctx context.Context, input document.UploadInput) (*domain.Document, error)
	ListDocuments(ctx context.Context) ([]domain.DocumentSummary, error)
	GetDocument(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

// DocumentHandler serves the PDF upload pipeline and document endpoints.
type DocumentHandler struct {
	svc         documentService
	maxUpload   int64
	readTimeout time.Duration
	log         *slog.Logger
}

// NewDocumentHandler creates a DocumentHandler. maxUpload is the largest
// accepted file in bytes.
func NewDocumentHandler(svc documentService, maxUpload int64, logger *slog.Logger) *DocumentHandler {
	return &DocumentHandler{svc: svc, maxUpload: maxUpload, log: logger.With("handler", "document")}
}

// WithReadTimeout replaces the server read deadline for upload requests so
// large files on slow links are not cut off. Zero keeps the server's.
func (h *DocumentHandler) WithReadTimeout(d time.Duration) *DocumentHandler {
	h.readTimeout = d
	return h
}

type documentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	SizeBytes  int64     `json:"sizeBytes"`
	PageCount  int       `json:"pageCount"`
	TextLength int       `json:"textLength"`
	Forwarded  bool      `json:"forwarded"`
	CreatedAt  time.Time `json:"createdAt"`
}

type documentDetailResponse struct {
	documentResponse
	Text string `json:"text"`
}

// Upload handles POST /home/upload-pdf. The "pdf" part is streamed into the
// pipeline without buffering the whole request.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if h.readTimeout > 0 {
		err := http.NewResponseController(w).SetReadDeadline(time.Now().Add(h.readTimeout))
		if err != nil && !errors.Is(err, http.ErrNotSupported) {
			h.log.WarnContext(r.Context(), "set upload read deadline", slog.String("error", err.Error()))
		}
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartOverhead)

	part, err := h.filePart(r)
	if err != nil {
		handleError(w, r, h.log, domain.NewStageError(domain.StageValidate, err))
		return
	}
	defer part.Close()

	doc, err := h.svc.Upload(r.Context(), document.UploadInput{
		Name: part.FileName(),
		Body: part,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDocumentDetailResponse(doc))
}

// filePart advances the multipart reader to the upload field.
func (h *DocumentHandler) filePart(r *http.Request) (*multipart.Part, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, domain.NewValidationError(uploadField, "multipart/form-data body required")
	}
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			return nil, domain.NewValidationError(uploadField, "required")
		}
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				return nil, domain.NewValidationError(uploadField, "file too large")
			}
			return nil, domain.NewValidationError(uploadField, "malformed multipart body")
		}
		if part.FormName() == uploadField {
			return part, nil
		}
		part.Close()
	}
}

// ListDocuments handles GET /home/pdfs.
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.ListDocuments(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]documentResponse, len(docs))
	for i, d := range docs {
		out[i] = documentResponse{
			ID:         d.ID.String(),
			Name:       d.OriginalName,
			SizeBytes:  d.SizeBytes,
			PageCount:  d.PageCount,
			TextLength: d.TextLength,
			Forwarded:  d.Forwarded,
			CreatedAt:  d.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, out)
}

// GetDocument handles GET /home/pdfs/{id}.
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	doc, err := h.svc.GetDocument(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toDocumentDetailResponse(doc))
}

// DeleteDocument handles DELETE /home/pdfs/{id}.
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteDocument(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeNoContent(w)
}

func toDocumentDetailResponse(d *domain.Document) documentDetailResponse {
	return documentDetailResponse{
		documentResponse: documentResponse{
			ID:         d.ID.String(),
			Name:       d.OriginalName,
			SizeBytes:  d.SizeBytes,
			PageCount:  d.PageCount,
			TextLength: utf8.RuneCountInString(d.Text),
			Forwarded:  d.Forwarded,
			CreatedAt:  d.CreatedAt,
		},
		Text: d.Text,
	}
}
