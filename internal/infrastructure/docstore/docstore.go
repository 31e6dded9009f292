// Package docstore exposes the document-store collaborator: collection-scoped
// creation, key-value set, lookup by id, single-document equality queries and
// references between documents. It is backed by a single JSONB table; the
// procedures only ever see this narrow surface.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoDocument is returned by lookups that match nothing.
var ErrNoDocument = errors.New("docstore: no document")

const schema = `
CREATE TABLE IF NOT EXISTS documents (
    collection  TEXT        NOT NULL,
    id          TEXT        NOT NULL,
    data        JSONB       NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
    PRIMARY KEY (collection, id)
);
CREATE INDEX IF NOT EXISTS documents_collection_idx ON documents (collection);
`

// Store is the process-wide handle to the document store.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// EnsureSchema creates the backing table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("docstore: ensure schema: %w", err)
	}
	return nil
}

// Collection returns a handle scoped to one named collection.
func (s *Store) Collection(name string) *Collection {
	return &Collection{name: name, pool: s.pool}
}

// Collection is a named set of documents.
type Collection struct {
	name string
	pool *pgxpool.Pool
}

func (c *Collection) Name() string { return c.name }

// Doc builds a reference to a document by id. The document is not checked for
// existence; references may dangle.
func (c *Collection) Doc(id string) Ref {
	return Ref{Collection: c.name, ID: id}
}

// Add inserts a new document under a generated id and returns that id.
func (c *Collection) Add(ctx context.Context, fields map[string]any) (string, error) {
	id := uuid.NewString()
	if err := c.insert(ctx, id, fields, false); err != nil {
		return "", err
	}
	return id, nil
}

// Set writes a document under a caller-chosen id, replacing any previous
// content at that id.
func (c *Collection) Set(ctx context.Context, id string, fields map[string]any) error {
	return c.insert(ctx, id, fields, true)
}

func (c *Collection) insert(ctx context.Context, id string, fields map[string]any, upsert bool) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("docstore: marshal document: %w", err)
	}

	query := `INSERT INTO documents (collection, id, data) VALUES ($1, $2, $3)`
	if upsert {
		query += ` ON CONFLICT (collection, id) DO UPDATE SET data = EXCLUDED.data`
	}

	if _, err := c.pool.Exec(ctx, query, c.name, id, data); err != nil {
		return fmt.Errorf("docstore: write %s/%s: %w", c.name, id, err)
	}
	return nil
}

// Get fetches a document by id.
func (c *Collection) Get(ctx context.Context, id string) (*Document, error) {
	query := `SELECT id, data, created_at FROM documents WHERE collection = $1 AND id = $2`
	return c.scanOne(c.pool.QueryRow(ctx, query, c.name, id))
}

// FindOneByField returns the first document whose top-level field equals
// value, or ErrNoDocument.
func (c *Collection) FindOneByField(ctx context.Context, field, value string) (*Document, error) {
	query := `SELECT id, data, created_at FROM documents WHERE collection = $1 AND data->>$2 = $3 LIMIT 1`
	return c.scanOne(c.pool.QueryRow(ctx, query, c.name, field, value))
}

// Merge shallow-merges fields into an existing document.
func (c *Collection) Merge(ctx context.Context, id string, fields map[string]any) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return fmt.Errorf("docstore: marshal merge: %w", err)
	}

	query := `UPDATE documents SET data = data || $3 WHERE collection = $1 AND id = $2`
	tag, err := c.pool.Exec(ctx, query, c.name, id, data)
	if err != nil {
		return fmt.Errorf("docstore: merge %s/%s: %w", c.name, id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoDocument
	}
	return nil
}

func (c *Collection) scanOne(row pgx.Row) (*Document, error) {
	var (
		doc  Document
		data []byte
	)
	if err := row.Scan(&doc.ID, &data, &doc.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoDocument
		}
		return nil, fmt.Errorf("docstore: query %s: %w", c.name, err)
	}
	if err := json.Unmarshal(data, &doc.Data); err != nil {
		return nil, fmt.Errorf("docstore: unmarshal %s/%s: %w", c.name, doc.ID, err)
	}
	return &doc, nil
}

// Document is a stored entity: its id plus the decoded JSON fields.
type Document struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
}

// StringField returns a top-level string field, or "" when absent.
func (d *Document) StringField(name string) string {
	s, _ := d.Data[name].(string)
	return s
}

// BoolField returns a top-level boolean field, false when absent.
func (d *Document) BoolField(name string) bool {
	b, _ := d.Data[name].(bool)
	return b
}
