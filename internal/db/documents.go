package db

import (
	"context"

	"github.com/paperstack/backend/internal/model"
)

func (db *Postgres) InsertDocument(ctx context.Context, doc *model.Document) error {
	query := `
		INSERT INTO documents (id, owner_id, filename, page_count, text_content, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Pool.Exec(ctx, query,
		doc.ID,
		doc.OwnerID,
		doc.Filename,
		doc.PageCount,
		doc.Text,
		doc.Summary,
		doc.CreatedAt,
	)
	return err
}

func (db *Postgres) FindDocumentByID(ctx context.Context, id string) (*model.Document, error) {
	query := `
		SELECT id, owner_id, filename, page_count, text_content, summary, created_at
		FROM documents
		WHERE id = $1
	`
	var doc model.Document
	err := db.Pool.QueryRow(ctx, query, id).Scan(
		&doc.ID,
		&doc.OwnerID,
		&doc.Filename,
		&doc.PageCount,
		&doc.Text,
		&doc.Summary,
		&doc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (db *Postgres) ListDocumentsByOwner(ctx context.Context, ownerID string) ([]model.Document, error) {
	query := `
		SELECT id, owner_id, filename, page_count, text_content, summary, created_at
		FROM documents
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := db.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []model.Document
	for rows.Next() {
		var d model.Document
		if err := rows.Scan(
			&d.ID,
			&d.OwnerID,
			&d.Filename,
			&d.PageCount,
			&d.Text,
			&d.Summary,
			&d.CreatedAt,
		); err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if docs == nil {
		docs = []model.Document{}
	}
	return docs, nil
}
