package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vocaquiz/vocaquiz/internal/quiz"
	"github.com/vocaquiz/vocaquiz/internal/store"
	"github.com/vocaquiz/vocaquiz/internal/vocab"
)

// GET /api/paper
//
// Generates a fresh paper for the caller, persists the canonical
// answer-bearing record under (owner, paper) / testID, and returns only the
// redacted test view.
func GetPaperHandler(db *sql.DB, pool vocab.Pool, st store.Store, problemsCount, candidateLimit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, err := currentUser(r, db)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		entries, err := pool.Entries(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		factory, err := quiz.NewFactory(entries,
			quiz.WithProblemsCount(problemsCount),
			quiz.WithCandidateLimit(candidateLimit),
		)
		if err != nil {
			if errors.Is(err, quiz.ErrInsufficientPool) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}

		owner := quiz.UserRef{ID: me.ID, Name: me.Username}
		paper, err := quiz.NewPublisher(st).PublishPaper(factory, owner)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		testView, err := paper.TestView()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		blob, err := json.Marshal(paper)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		ns := store.Namespace(owner.ID.String(), paper.ID.String())
		if err := st.Put(r.Context(), ns, testView.TestID.String(), blob); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(testView)
	}
}

// POST /api/submit
//
// Accepts a student-annotated test paper, merges the selections into the
// stored canonical paper and returns the score. The submitted rendering
// never becomes the source of truth.
func SubmitPaperHandler(db *sql.DB, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		me, err := currentUser(r, db)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		var testPaper quiz.TestPaper
		if err := json.NewDecoder(r.Body).Decode(&testPaper); err != nil {
			http.Error(w, "bad json", 400)
			return
		}

		ns := store.Namespace(me.ID.String(), testPaper.PaperID.String())
		blob, err := st.Get(r.Context(), ns, testPaper.TestID.String())
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				http.Error(w, "paper not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		var paper quiz.Paper
		if err := json.Unmarshal(blob, &paper); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		merged, err := testPaper.ApplyTo(&paper)
		if err != nil {
			if errors.Is(err, quiz.ErrAmbiguousSelection) {
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		out, err := json.Marshal(merged)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if err := st.Put(r.Context(), ns, testPaper.TestID.String(), out); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}

		score, err := quiz.Score(merged)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"score": score,
			"user":  merged.Owner,
		})
	}
}
