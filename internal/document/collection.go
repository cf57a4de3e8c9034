package document

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound = errors.New("document not found")
	ErrConflict = errors.New("document violates a unique constraint")
)

// uniqueViolation is the Postgres SQLSTATE for unique-index conflicts.
const uniqueViolation = "23505"

// Filter matches documents by JSONB containment: every key/value pair in
// the filter must appear in the document, including nested sub-documents.
type Filter map[string]any

// Collection is a schema-less document collection backed by a Postgres
// table of the form (id TEXT PRIMARY KEY, doc JSONB NOT NULL). Documents
// are serialized with encoding/json; uniqueness beyond the primary key is
// enforced by expression indexes owned by the migrations.
type Collection[E any] struct {
	db    *sql.DB
	table string
}

// NewCollection creates a collection over the named table.
func NewCollection[E any](db *sql.DB, table string) *Collection[E] {
	return &Collection[E]{db: db, table: table}
}

// FindByID loads a single document by its identifier.
func (c *Collection[E]) FindByID(ctx context.Context, id string) (*E, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, c.table)

	var raw []byte
	if err := c.db.QueryRowContext(ctx, query, id).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load document from %s: %w", c.table, err)
	}

	return c.decode(raw)
}

// FindAll returns every document in the collection ordered by creation time.
func (c *Collection[E]) FindAll(ctx context.Context) ([]*E, error) {
	query := fmt.Sprintf(`SELECT doc FROM %s ORDER BY doc->>'created_at'`, c.table)

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents in %s: %w", c.table, err)
	}
	defer rows.Close()

	return c.collect(rows)
}

// Find returns the documents matching the filter, ordered by creation time.
// An empty result is a valid, non-error outcome.
func (c *Collection[E]) Find(ctx context.Context, filter Filter) ([]*E, error) {
	probe, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter for %s: %w", c.table, err)
	}

	query := fmt.Sprintf(`SELECT doc FROM %s WHERE doc @> $1 ORDER BY doc->>'created_at'`, c.table)

	rows, err := c.db.QueryContext(ctx, query, probe)
	if err != nil {
		return nil, fmt.Errorf("failed to query documents in %s: %w", c.table, err)
	}
	defer rows.Close()

	return c.collect(rows)
}

// Save upserts the document under the given identifier. A unique-index
// violation is reported as ErrConflict; the caller decides what constraint
// it stands for. The update-then-insert split (instead of ON CONFLICT)
// keeps re-saves of an existing document from tripping over the
// collection's secondary unique indexes.
func (c *Collection[E]) Save(ctx context.Context, id string, doc *E) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document for %s: %w", c.table, err)
	}

	update := fmt.Sprintf(`UPDATE %s SET doc = $2 WHERE id = $1`, c.table)

	result, err := c.db.ExecContext(ctx, update, id, raw)
	if err != nil {
		return c.saveError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected > 0 {
		return nil
	}

	insert := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, c.table)

	if _, err := c.db.ExecContext(ctx, insert, id, raw); err != nil {
		return c.saveError(err)
	}

	return nil
}

func (c *Collection[E]) saveError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrConflict
	}
	return fmt.Errorf("failed to save document in %s: %w", c.table, err)
}

// Delete removes the document with the given identifier, reporting
// ErrNotFound when nothing was stored under it.
func (c *Collection[E]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, c.table)

	result, err := c.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete document from %s: %w", c.table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// Exists reports whether any document matches the filter without loading
// document bodies.
func (c *Collection[E]) Exists(ctx context.Context, filter Filter) (bool, error) {
	probe, err := json.Marshal(filter)
	if err != nil {
		return false, fmt.Errorf("failed to encode filter for %s: %w", c.table, err)
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE doc @> $1)`, c.table)

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, probe).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to probe documents in %s: %w", c.table, err)
	}

	return exists, nil
}

func (c *Collection[E]) decode(raw []byte) (*E, error) {
	doc := new(E)
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("failed to decode document from %s: %w", c.table, err)
	}
	return doc, nil
}

func (c *Collection[E]) collect(rows *sql.Rows) ([]*E, error) {
	docs := []*E{}
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan document from %s: %w", c.table, err)
		}

		doc, err := c.decode(raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating documents in %s: %w", c.table, err)
	}

	return docs, nil
}
