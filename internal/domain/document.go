package domain

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded PDF after sanitization and text extraction.
// The file itself is not kept; only its extracted text.
type Document struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	OriginalName string
	SizeBytes    int64
	PageCount    int
	Text         string
	Forwarded    bool
	CreatedAt    time.Time
}

func (d *Document) Owner() uuid.UUID { return d.OwnerID }

// DocumentSummary is a Document without its text, used in listings.
type DocumentSummary struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	OriginalName string
	SizeBytes    int64
	PageCount    int
	TextLength   int
	Forwarded    bool
	CreatedAt    time.Time
}
