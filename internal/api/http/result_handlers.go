package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/vocaquiz/vocaquiz/internal/auth"
	"github.com/vocaquiz/vocaquiz/internal/quiz"
	"github.com/vocaquiz/vocaquiz/internal/store"
)

func paperFromStore(r *http.Request, st store.Store, ownerID, paperID, testID uuid.UUID) (*quiz.Paper, error) {
	ns := store.Namespace(ownerID.String(), paperID.String())
	blob, err := st.Get(r.Context(), ns, testID.String())
	if err != nil {
		return nil, err
	}
	var paper quiz.Paper
	if err := json.Unmarshal(blob, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(r.URL.Query().Get(name))
}

// GET /api/results/specific/me?paper_id=...&test_id=...
func MyResultHandler(db *sql.DB, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, err := currentUser(r, db)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		paperID, err := queryUUID(r, "paper_id")
		if err != nil {
			http.Error(w, "bad paper_id", 400)
			return
		}
		testID, err := queryUUID(r, "test_id")
		if err != nil {
			http.Error(w, "bad test_id", 400)
			return
		}
		paper, err := paperFromStore(r, st, me.ID, paperID, testID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "paper not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"paper": paper})
	}
}

// GET /api/results/specific?student_id=...&paper_id=...&test_id=...  (teacher/admin)
func StudentResultHandler(db *sql.DB, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := queryUUID(r, "student_id")
		if err != nil {
			http.Error(w, "bad student_id", 400)
			return
		}
		paperID, err := queryUUID(r, "paper_id")
		if err != nil {
			http.Error(w, "bad paper_id", 400)
			return
		}
		testID, err := queryUUID(r, "test_id")
		if err != nil {
			http.Error(w, "bad test_id", 400)
			return
		}
		paper, err := paperFromStore(r, st, studentID, paperID, testID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "paper not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"paper": paper})
	}
}

// GET /api/results/meta/me
func MyResultMetaHandler(db *sql.DB, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, err := currentUser(r, db)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		result, err := quiz.NewPublisher(st).PapersByUser(r.Context(), me.ID, quiz.SearchMeta)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"papers": result.Meta})
	}
}

// GET /api/results/meta/all?student_id=...  (teacher/admin)
func StudentResultMetaHandler(db *sql.DB, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studentID, err := queryUUID(r, "student_id")
		if err != nil {
			http.Error(w, "bad student_id", 400)
			return
		}
		if _, err := auth.GetByID(r.Context(), db, studentID); err != nil {
			if errors.Is(err, auth.ErrUserNotFound) {
				http.Error(w, "student not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		result, err := quiz.NewPublisher(st).PapersByUser(r.Context(), studentID, quiz.SearchMeta)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"papers": result.Meta})
	}
}
