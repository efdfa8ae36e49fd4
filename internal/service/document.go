package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/paperstack/backend/internal/model"
)

var ErrUnreadableDocument = errors.New("unreadable document")

type DocumentStore interface {
	InsertDocument(ctx context.Context, doc *model.Document) error
	FindDocumentByID(ctx context.Context, id string) (*model.Document, error)
	ListDocumentsByOwner(ctx context.Context, ownerID string) ([]model.Document, error)
	InsertDocumentEmbedding(ctx context.Context, documentID, model string, vector []float32) (int64, error)
}

type AIClient interface {
	Summarize(ctx context.Context, text string) (string, error)
	EmbedText(ctx context.Context, text string) ([]float32, string, error)
}

type DocumentService struct {
	store DocumentStore
	ai    AIClient
}

// NewDocumentService builds the ingest pipeline. ai may be nil, in
// which case documents are stored without summary or embedding.
func NewDocumentService(store DocumentStore, ai AIClient) *DocumentService {
	return &DocumentService{store: store, ai: ai}
}

// Ingest extracts text from an uploaded PDF, enriches it with an LLM
// summary and embedding when a client is configured, and persists the
// result. Enrichment is best-effort: an AI failure degrades to a bare
// document, never a failed upload.
func (s *DocumentService) Ingest(ctx context.Context, ownerID, filename string, content []byte) (*model.Document, error) {
	text, pageCount, err := extractPDFText(content)
	if err != nil {
		return nil, ErrUnreadableDocument
	}

	doc := &model.Document{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Filename:  filename,
		PageCount: pageCount,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if s.ai != nil && strings.TrimSpace(text) != "" {
		summary, err := s.ai.Summarize(ctx, text)
		if err != nil {
			log.Printf("document summary failed for %s: %v", filename, err)
		} else {
			doc.Summary = summary
		}
	}

	if err := s.store.InsertDocument(ctx, doc); err != nil {
		return nil, err
	}

	if s.ai != nil && strings.TrimSpace(text) != "" {
		vector, embedModel, err := s.ai.EmbedText(ctx, text)
		if err != nil {
			log.Printf("document embedding failed for %s: %v", filename, err)
		} else if _, err := s.store.InsertDocumentEmbedding(ctx, doc.ID, embedModel, vector); err != nil {
			log.Printf("document embedding insert failed for %s: %v", filename, err)
		}
	}

	return doc, nil
}

func (s *DocumentService) ListByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	return s.store.ListDocumentsByOwner(ctx, ownerID)
}

func extractPDFText(content []byte) (string, int, error) {
	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", 0, err
	}

	pageCount := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pageCount; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Pages with exotic font encodings extract as nothing
			// rather than failing the whole document.
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), pageCount, nil
}
