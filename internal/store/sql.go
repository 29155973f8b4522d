package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// SQLStore keeps records in the paper_store table. Works against both
// sqlite and postgres ($1 placeholders, unix-second timestamps).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Get(ctx context.Context, namespace, key string) (json.RawMessage, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT value FROM paper_store WHERE prefix=$1 AND key=$2`, namespace, key)
	var value string
	if err := row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return json.RawMessage(value), nil
}

func (s *SQLStore) Put(ctx context.Context, namespace, key string, value json.RawMessage) error {
	now := time.Now().Unix()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO paper_store (prefix, key, value, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (prefix, key) DO UPDATE SET value=EXCLUDED.value, updated_at=EXCLUDED.updated_at`,
		namespace, key, string(value), now, now)
	return err
}

func (s *SQLStore) Search(ctx context.Context, namespace string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT prefix, key, value, created_at, updated_at FROM paper_store
		 WHERE prefix LIKE $1 ORDER BY created_at`, "%"+namespace+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var value string
		var created, updated int64
		if err := rows.Scan(&rec.Namespace, &rec.Key, &value, &created, &updated); err != nil {
			return nil, err
		}
		rec.Value = json.RawMessage(value)
		rec.CreatedAt = time.Unix(created, 0)
		rec.UpdatedAt = time.Unix(updated, 0)
		out = append(out, rec)
	}
	return out, rows.Err()
}
