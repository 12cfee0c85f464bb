// Package sqlitestore persists word-vector models in SQLite. A single
// database file serves every pipeline in the process; models are loaded
// once and queried per word.
package sqlitestore

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"

	_ "modernc.org/sqlite"

	"github.com/cognicore/textflow/pkg/textflow/resource"
)

// sqliteStore implements resource.Store using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (or creates) a SQLite-backed resource store with WAL mode
// enabled.
func Open(ctx context.Context, path string) (resource.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS vectors (
		model TEXT NOT NULL,
		word  TEXT NOT NULL,
		vec   BLOB NOT NULL,
		PRIMARY KEY (model, word)
	);
	CREATE TABLE IF NOT EXISTS models (
		model TEXT PRIMARY KEY,
		dim   INTEGER NOT NULL
	);`

	_, err := db.ExecContext(ctx, schema)
	return err
}

// Close closes the database.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

// HasModel reports whether a model is registered.
func (s *sqliteStore) HasModel(ctx context.Context, model string) (bool, error) {
	var dim int
	err := s.db.QueryRowContext(ctx, "SELECT dim FROM models WHERE model = ?", model).Scan(&dim)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// PutVector stores a word vector, registering the model on first insert.
func (s *sqliteStore) PutVector(ctx context.Context, model, word string, vec []float32) error {
	if _, err := s.db.ExecContext(ctx,
		"INSERT INTO models(model, dim) VALUES(?, ?) ON CONFLICT(model) DO NOTHING",
		model, len(vec)); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO vectors(model, word, vec) VALUES(?, ?, ?) ON CONFLICT(model, word) DO UPDATE SET vec = excluded.vec",
		model, word, encodeVector(vec))
	return err
}

// WordVector returns the vector for (model, word). A missing model is a
// typed missing-resource error; a missing word is a vocabulary miss.
func (s *sqliteStore) WordVector(ctx context.Context, model, word string) ([]float32, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		"SELECT vec FROM vectors WHERE model = ? AND word = ?", model, word).Scan(&blob)
	if err == sql.ErrNoRows {
		ok, herr := s.HasModel(ctx, model)
		if herr != nil {
			return nil, false, herr
		}
		if !ok {
			return nil, false, resource.MissingModel(model)
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	vec, err := decodeVector(blob)
	if err != nil {
		return nil, false, fmt.Errorf("decode vector for %q/%q: %w", model, word, err)
	}
	return vec, true, nil
}

// Dimensions returns the vector width of model.
func (s *sqliteStore) Dimensions(ctx context.Context, model string) (int, error) {
	var dim int
	err := s.db.QueryRowContext(ctx, "SELECT dim FROM models WHERE model = ?", model).Scan(&dim)
	if err == sql.ErrNoRows {
		return 0, resource.MissingModel(model)
	}
	if err != nil {
		return 0, err
	}
	return dim, nil
}

// encodeVector packs a float32 slice as little-endian bytes.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, f := range vec {
		binary.LittleEndian.PutUint32(buf[4*i:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("blob length %d is not a multiple of 4", len(blob))
	}
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[4*i:]))
	}
	return vec, nil
}
