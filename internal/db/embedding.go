package db

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

func (db *Postgres) InsertDocumentEmbedding(ctx context.Context, documentID, model string, vector []float32) (int64, error) {
	query := `
		INSERT INTO document_embeddings (document_id, embedding, model)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	var id int64
	err := db.Pool.QueryRow(ctx, query, documentID, pgvector.NewVector(vector), model).Scan(&id)
	return id, err
}
