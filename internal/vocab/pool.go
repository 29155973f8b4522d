package vocab

import (
	"context"
	"database/sql"
)

// Pool supplies the vocabulary entries eligible for problem generation.
type Pool interface {
	Entries(ctx context.Context) ([]Entry, error)
}

// SQLPool reads the texts table. Works against both sqlite and postgres.
type SQLPool struct {
	db *sql.DB
}

func NewSQLPool(db *sql.DB) *SQLPool { return &SQLPool{db: db} }

func (p *SQLPool) Entries(ctx context.Context) ([]Entry, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT id, name, tag, description FROM texts`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var tag string
		if err := rows.Scan(&e.ID, &e.Name, &tag, &e.Description); err != nil {
			return nil, err
		}
		e.Tag = PartOfSpeech(tag)
		out = append(out, e)
	}
	return out, rows.Err()
}
