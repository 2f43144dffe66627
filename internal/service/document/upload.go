package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/mudhakir-backend/internal/adapter/pdf"
	"github.com/heartmarshall/mudhakir-backend/internal/authz"
	"github.com/heartmarshall/mudhakir-backend/internal/domain"
)

const maxNameLen = 255

// UploadInput is an incoming PDF file.
type UploadInput struct {
	Name string
	Body io.Reader
}

// Upload runs the pipeline validate, scan, sanitize, extract, persist and
// forward. Failures are returned as *domain.StageError. A forward failure is
// logged and leaves the stored document with Forwarded=false.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	ownerID, err := authz.Caller(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	log := s.log.With(slog.String("student_id", ownerID.String()))

	workDir, err := os.MkdirTemp(s.cfg.TempDir, "upload-*")
	if err != nil {
		return nil, domain.NewStageError(domain.StageValidate, fmt.Errorf("create work dir: %w", err))
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.WarnContext(ctx, "remove upload work dir", slog.String("error", err.Error()))
		}
	}()

	// validate
	name := cleanName(input.Name)
	inPath := filepath.Join(workDir, "in.pdf")
	size, err := s.receive(input.Body, inPath)
	if err != nil {
		return nil, domain.NewStageError(domain.StageValidate, err)
	}

	// scan
	if s.scanner != nil {
		if err := s.scanner.Scan(ctx, inPath); err != nil {
			if errors.Is(err, pdf.ErrInfected) {
				log.WarnContext(ctx, "infected upload rejected", slog.String("name", name))
			}
			return nil, domain.NewStageError(domain.StageScan, err)
		}
	}

	// sanitize
	textPath := inPath
	if s.sanitizer != nil {
		textPath = filepath.Join(workDir, "clean.pdf")
		if err := s.sanitizer.Sanitize(ctx, inPath, textPath); err != nil {
			return nil, domain.NewStageError(domain.StageSanitize, err)
		}
	}

	// extract
	extracted, err := s.extractor.Extract(ctx, textPath)
	if err != nil {
		return nil, domain.NewStageError(domain.StageExtract, err)
	}
	if strings.TrimSpace(extracted.Text) == "" {
		return nil, domain.NewStageError(domain.StageExtract,
			fmt.Errorf("no extractable text: %w", domain.ErrUnprocessable))
	}

	// persist
	doc := &domain.Document{
		OwnerID:      ownerID,
		OriginalName: name,
		SizeBytes:    size,
		PageCount:    extracted.PageCount,
		Text:         extracted.Text,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, domain.NewStageError(domain.StagePersist, err)
	}

	// forward
	s.forward(ctx, log, doc)

	log.InfoContext(ctx, "document uploaded",
		slog.String("document_id", doc.ID.String()),
		slog.Int64("size_bytes", size),
		slog.Int("pages", doc.PageCount),
		slog.Bool("truncated", extracted.Truncated),
		slog.Bool("forwarded", doc.Forwarded),
		slog.Duration("duration", time.Since(start)),
	)
	return doc, nil
}

// receive writes body to path and checks the size limit and the PDF signature.
func (s *Service) receive(body io.Reader, path string) (int64, error) {
	if body == nil {
		return 0, domain.NewValidationError("pdf", "required")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return 0, fmt.Errorf("create temp file: %w", err)
	}
	defer f.Close()

	head := make([]byte, len(pdf.Magic))
	n, err := io.ReadFull(body, head)
	switch {
	case errors.Is(err, io.EOF):
		return 0, domain.NewValidationError("pdf", "file is empty")
	case errors.Is(err, io.ErrUnexpectedEOF):
		return 0, domain.NewValidationError("pdf", "file is not a PDF")
	case err != nil:
		return 0, fmt.Errorf("read upload: %w", err)
	case !bytes.Equal(head, []byte(pdf.Magic)):
		return 0, domain.NewValidationError("pdf", "file is not a PDF")
	}

	if _, err := f.Write(head); err != nil {
		return 0, fmt.Errorf("write temp file: %w", err)
	}
	limit := s.cfg.MaxSizeBytes - int64(n)
	copied, err := io.Copy(f, io.LimitReader(body, limit+1))
	if err != nil {
		return 0, fmt.Errorf("write temp file: %w", err)
	}
	if copied > limit {
		return 0, domain.NewValidationError("pdf", fmt.Sprintf("file exceeds %d MB", s.cfg.MaxSizeBytes>>20))
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close temp file: %w", err)
	}
	return int64(n) + copied, nil
}

func (s *Service) forward(ctx context.Context, log *slog.Logger, doc *domain.Document) {
	if s.forwarder == nil {
		return
	}
	if err := s.forwarder.ForwardDocument(ctx, doc); err != nil {
		log.WarnContext(ctx, "forward to model service failed",
			slog.String("stage", domain.StageForward.String()),
			slog.String("document_id", doc.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	if err := s.docs.SetForwarded(ctx, doc.ID, true); err != nil {
		log.WarnContext(ctx, "mark document forwarded",
			slog.String("document_id", doc.ID.String()),
			slog.String("error", err.Error()),
		)
		return
	}
	doc.Forwarded = true
}

// cleanName keeps the base name of the client's file name.
func cleanName(name string) string {
	name = strings.TrimSpace(filepath.Base(strings.ReplaceAll(name, `\`, "/")))
	if name == "" || name == "." || name == "/" {
		return "document.pdf"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		name = string([]rune(name)[:maxNameLen])
	}
	return name
}
