package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vocaquiz/vocaquiz/internal/auth"
)

// currentUser resolves the authenticated account from the token subject.
func currentUser(r *http.Request, db *sql.DB) (auth.User, error) {
	sub := auth.SubjectFromContext(r.Context())
	if sub == "" {
		return auth.User{}, auth.ErrUserNotFound
	}
	return auth.GetByUsername(r.Context(), db, sub)
}

// POST /api/users  { "username": "...", "password": "...", "display_name": "...", "nickname": "..." }
func SignUpHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req auth.NewUser
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Username == "" || req.Password == "" {
			http.Error(w, "username and password required", 400)
			return
		}
		u, err := auth.CreateUser(r.Context(), db, req)
		if err != nil {
			if errors.Is(err, auth.ErrUserExists) {
				http.Error(w, "user already exists", http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

// POST /api/sign_in  { "username": "...", "password": "..." }
func SignInHandler(db *sql.DB, a *auth.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		u, err := auth.Authenticate(r.Context(), db, req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrBadCredentials) {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		tok, err := a.IssueJWT(u.Username, u.Role)
		if err != nil {
			http.Error(w, "issue token", 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token": tok,
			"token_type":   "bearer",
		})
	}
}

// GET /api/me
func MeHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := currentUser(r, db)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(u)
	}
}

// GET /api/students  (teacher/admin)
func StudentsHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		students, err := auth.ListStudents(r.Context(), db)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"students": students})
	}
}
