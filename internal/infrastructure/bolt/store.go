// Package bolt implementa el DocumentStore local sobre bbolt, un archivo
// clave/valor embebido. Es el respaldo offline del estudio: funciona sin
// PostgreSQL y sin red.
package bolt

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/jhoicas/PhotoCRM-api/internal/domain/repository"
)

var _ repository.DocumentStore = (*Store)(nil)

// Store implementación del puerto DocumentStore sobre bbolt.
// Cada usuario tiene su propio bucket; dentro, una entrada por clave.
type Store struct {
	db *bbolt.DB
}

// Open abre (o crea) el archivo bbolt en path.
func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir bbolt %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close cierra el archivo.
func (s *Store) Close() error {
	return s.db.Close()
}

// Get devuelve el documento o (nil, nil) si la clave no existe.
func (s *Store) Get(_ context.Context, userID, key string) (json.RawMessage, error) {
	var doc []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(userID))
		if bucket == nil {
			return nil
		}
		value := bucket.Get([]byte(key))
		if value == nil {
			return nil
		}
		// El slice de bbolt solo es válido dentro de la transacción.
		doc = make([]byte, len(value))
		copy(doc, value)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("get document %s: %w", key, err)
	}
	if doc == nil {
		return nil, nil
	}
	return doc, nil
}

// Put guarda el documento, sobreescribiendo el anterior si existe.
func (s *Store) Put(_ context.Context, userID, key string, doc json.RawMessage) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(userID))
		if err != nil {
			return err
		}
		return bucket.Put([]byte(key), doc)
	})
	if err != nil {
		return fmt.Errorf("put document %s: %w", key, err)
	}
	return nil
}

// Delete elimina el documento. Borrar una clave inexistente no es error.
func (s *Store) Delete(_ context.Context, userID, key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(userID))
		if bucket == nil {
			return nil
		}
		return bucket.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete document %s: %w", key, err)
	}
	return nil
}
