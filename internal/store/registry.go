package store

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/roach88/advkit/pkg/advancement"
	"github.com/roach88/advkit/pkg/ir"
)

// Record is a registered advancement.
type Record struct {
	Key      advancement.Key
	Document string
	// Hash is the content hash of Document, equal to Advancement.Hash for
	// the same advancement.
	Hash     string
	Criteria []string
	Seq      int64
}

// LoadAdvancement registers doc under key, replacing an earlier registration.
// Awards for criteria that are no longer listed are dropped; the rest are
// kept.
func (s *Store) LoadAdvancement(ctx context.Context, key advancement.Key, doc []byte, criteria []string) error {
	var compact bytes.Buffer
	if err := json.Compact(&compact, doc); err != nil {
		return fmt.Errorf("load advancement %s: %w", key, err)
	}
	hash := ir.HashBytes(ir.DomainAdvancement, compact.Bytes())

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("load advancement: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSeq(ctx, tx, "advancements")
	if err != nil {
		return fmt.Errorf("load advancement: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO advancements (key, document, hash, seq)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET document = excluded.document, hash = excluded.hash, seq = excluded.seq
	`, key.String(), string(doc), hash, seq)
	if err != nil {
		return fmt.Errorf("load advancement: %w", err)
	}

	// Mark every existing criterion stale, then revive the listed ones.
	if _, err := tx.ExecContext(ctx, `UPDATE criteria SET position = -1 WHERE advancement_key = ?`, key.String()); err != nil {
		return fmt.Errorf("load advancement criteria: %w", err)
	}
	for i, name := range criteria {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO criteria (advancement_key, name, position)
			VALUES (?, ?, ?)
			ON CONFLICT(advancement_key, name) DO UPDATE SET position = excluded.position
		`, key.String(), name, i)
		if err != nil {
			return fmt.Errorf("load advancement criteria: %w", err)
		}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM criteria WHERE advancement_key = ? AND position = -1`, key.String()); err != nil {
		return fmt.Errorf("load advancement criteria: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("load advancement: %w", err)
	}
	return nil
}

// RemoveAdvancement unregisters key together with its criteria and awards.
// Returns an error wrapping sql.ErrNoRows if key is not registered.
func (s *Store) RemoveAdvancement(ctx context.Context, key advancement.Key) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM advancements WHERE key = ?`, key.String())
	if err != nil {
		return fmt.Errorf("remove advancement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove advancement: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("remove advancement %s: %w", key, sql.ErrNoRows)
	}
	return nil
}

// Advancement returns the registration of key.
// Returns an error wrapping sql.ErrNoRows if key is not registered.
func (s *Store) Advancement(ctx context.Context, key advancement.Key) (Record, error) {
	var (
		rec    Record
		rawKey string
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT key, document, hash, seq FROM advancements WHERE key = ?
	`, key.String()).Scan(&rawKey, &rec.Document, &rec.Hash, &rec.Seq)
	if err != nil {
		return Record{}, fmt.Errorf("read advancement %s: %w", key, err)
	}
	rec.Key = key

	rec.Criteria, err = s.criteria(ctx, s.db, key)
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns every registered advancement ordered by key.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, document, hash, seq FROM advancements ORDER BY key COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list advancements: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			rec    Record
			rawKey string
		)
		if err := rows.Scan(&rawKey, &rec.Document, &rec.Hash, &rec.Seq); err != nil {
			return nil, fmt.Errorf("scan advancement: %w", err)
		}
		rec.Key, err = advancement.ParseKey(rawKey)
		if err != nil {
			return nil, fmt.Errorf("scan advancement: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate advancements: %w", err)
	}
	rows.Close()

	for i := range records {
		records[i].Criteria, err = s.criteria(ctx, s.db, records[i].Key)
		if err != nil {
			return nil, err
		}
	}

	// Return empty slice instead of nil
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (s *Store) criteria(ctx context.Context, q querier, key advancement.Key) ([]string, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT name FROM criteria WHERE advancement_key = ? ORDER BY position ASC, name COLLATE BINARY ASC
	`, key.String())
	if err != nil {
		return nil, fmt.Errorf("query criteria: %w", err)
	}
	defer rows.Close()

	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan criterion: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate criteria: %w", err)
	}
	return names, nil
}

// nextSeq returns MAX(seq)+1 for table. table is never user input.
func nextSeq(ctx context.Context, q querier, table string) (int64, error) {
	var seq int64
	if err := q.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM `+table).Scan(&seq); err != nil {
		return 0, fmt.Errorf("next seq: %w", err)
	}
	return seq, nil
}
