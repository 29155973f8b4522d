package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/vocaquiz/vocaquiz/internal/vocab"
)

// POST /api/vocab/bulk  (teacher/admin)
//
// Imports a vocabulary bank. Body is either a JSON array of entries or CSV
// with an id,name,tag,description header.
func BulkImportVocabHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entries []vocab.Entry
		ct := r.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "application/json") {
			if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
				http.Error(w, "bad json", 400)
				return
			}
		} else {
			es, err := vocab.ParseCSV(r.Body)
			if err != nil {
				http.Error(w, "bad csv: "+err.Error(), 400)
				return
			}
			entries = es
		}
		if len(entries) == 0 {
			_ = json.NewEncoder(w).Encode(map[string]any{"inserted": 0, "updated": 0})
			return
		}
		ins, upd, err := vocab.BulkUpsert(r.Context(), db, entries)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"inserted": ins, "updated": upd})
	}
}
