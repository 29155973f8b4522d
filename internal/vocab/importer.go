package vocab

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads a vocabulary bank in CSV form. The header must name the
// id, name, tag and description columns; tags may use dictionary
// abbreviations ("n.", "v.", ...).
func ParseCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	hdr, err := cr.Read()
	if err != nil {
		return nil, err
	}
	idx := map[string]int{}
	for i, h := range hdr {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, k := range []string{"id", "name", "tag", "description"} {
		if _, ok := idx[k]; !ok {
			return nil, errors.New("missing column: " + k)
		}
	}
	var entries []Entry
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		name := strings.TrimSpace(rec[idx["name"]])
		if name == "" {
			continue
		}
		id, err := strconv.ParseInt(strings.TrimSpace(rec[idx["id"]]), 10, 64)
		if err != nil {
			return nil, errors.New("bad id: " + rec[idx["id"]])
		}
		entries = append(entries, Entry{
			ID:          id,
			Name:        name,
			Tag:         ParsePartOfSpeech(rec[idx["tag"]]),
			Description: strings.TrimSpace(rec[idx["description"]]),
		})
	}
	return entries, nil
}

// BulkUpsert writes entries into the texts table, updating rows whose id
// already exists. The whole batch commits or rolls back together.
func BulkUpsert(ctx context.Context, db *sql.DB, entries []Entry) (inserted, updated int, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	for _, e := range entries {
		if e.Tag == "" {
			e.Tag = Undecided
		}
		var exists bool
		scanErr := tx.QueryRowContext(ctx, `SELECT 1 FROM texts WHERE id=$1`, e.ID).Scan(new(int))
		if scanErr == nil {
			exists = true
		} else if !errors.Is(scanErr, sql.ErrNoRows) {
			err = scanErr
			return
		}
		if exists {
			_, err = tx.ExecContext(ctx, `UPDATE texts SET name=$1, tag=$2, description=$3 WHERE id=$4`,
				e.Name, string(e.Tag), e.Description, e.ID)
			if err != nil {
				return
			}
			updated++
		} else {
			_, err = tx.ExecContext(ctx, `INSERT INTO texts (id, name, tag, description) VALUES ($1,$2,$3,$4)`,
				e.ID, e.Name, string(e.Tag), e.Description)
			if err != nil {
				return
			}
			inserted++
		}
	}
	return
}
