package service

import (
	"context"
	"testing"

	"github.com/paperstack/backend/internal/model"
)

type fakeDocumentStore struct {
	docs       []model.Document
	embeddings int
}

func (f *fakeDocumentStore) InsertDocument(ctx context.Context, doc *model.Document) error {
	f.docs = append(f.docs, *doc)
	return nil
}

func (f *fakeDocumentStore) FindDocumentByID(ctx context.Context, id string) (*model.Document, error) {
	for i := range f.docs {
		if f.docs[i].ID == id {
			return &f.docs[i], nil
		}
	}
	return nil, nil
}

func (f *fakeDocumentStore) ListDocumentsByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	var out []model.Document
	for _, d := range f.docs {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocumentStore) InsertDocumentEmbedding(ctx context.Context, documentID, model string, vector []float32) (int64, error) {
	f.embeddings++
	return int64(f.embeddings), nil
}

func TestIngestRejectsNonPDF(t *testing.T) {
	svc := NewDocumentService(&fakeDocumentStore{}, nil)

	_, err := svc.Ingest(context.Background(), "owner-1", "notes.txt", []byte("plain text, not a pdf"))
	if err != ErrUnreadableDocument {
		t.Fatalf("expected ErrUnreadableDocument, got %v", err)
	}
}

func TestIngestRejectsEmptyUpload(t *testing.T) {
	svc := NewDocumentService(&fakeDocumentStore{}, nil)

	_, err := svc.Ingest(context.Background(), "owner-1", "empty.pdf", nil)
	if err != ErrUnreadableDocument {
		t.Fatalf("expected ErrUnreadableDocument, got %v", err)
	}
}

func TestListByOwner(t *testing.T) {
	store := &fakeDocumentStore{docs: []model.Document{
		{ID: "d1", OwnerID: "owner-1", Filename: "a.pdf"},
		{ID: "d2", OwnerID: "owner-2", Filename: "b.pdf"},
		{ID: "d3", OwnerID: "owner-1", Filename: "c.pdf"},
	}}
	svc := NewDocumentService(store, nil)

	docs, err := svc.ListByOwner(context.Background(), "owner-1")
	if err != nil {
		t.Fatalf("ListByOwner: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
}
