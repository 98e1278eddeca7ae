package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*DocumentRepo)(nil)

// DocumentRepo implementación del puerto DocumentStore sobre PostgreSQL.
// Cada fila de user_documents guarda un documento JSON completo por
// (usuario, clave); las escrituras hacen upsert del documento entero.
type DocumentRepo struct {
	pool *pgxpool.Pool
}

// NewDocumentRepository construye el adaptador de documentos.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

// Get devuelve el documento o (nil, nil) si la clave no existe.
func (r *DocumentRepo) Get(ctx context.Context, userID, key string) (json.RawMessage, error) {
	query := `SELECT doc FROM user_documents WHERE user_id = $1 AND key = $2`
	var doc []byte
	err := r.pool.QueryRow(ctx, query, userID, key).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document %s: %w", key, err)
	}
	return doc, nil
}

// Put guarda el documento, sobreescribiendo el anterior si existe.
func (r *DocumentRepo) Put(ctx context.Context, userID, key string, doc json.RawMessage) error {
	query := `
		INSERT INTO user_documents (user_id, key, doc, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, key) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`
	if _, err := r.pool.Exec(ctx, query, userID, key, []byte(doc)); err != nil {
		return fmt.Errorf("put document %s: %w", key, err)
	}
	return nil
}

// Delete elimina el documento. Borrar una clave inexistente no es error.
func (r *DocumentRepo) Delete(ctx context.Context, userID, key string) error {
	query := `DELETE FROM user_documents WHERE user_id = $1 AND key = $2`
	if _, err := r.pool.Exec(ctx, query, userID, key); err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}
