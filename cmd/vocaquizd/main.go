package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/vocaquiz/vocaquiz/internal/api/http"
	"github.com/vocaquiz/vocaquiz/internal/auth"
	"github.com/vocaquiz/vocaquiz/internal/config"
	"github.com/vocaquiz/vocaquiz/internal/db"
	"github.com/vocaquiz/vocaquiz/internal/store"
	"github.com/vocaquiz/vocaquiz/internal/vocab"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	paperStore := store.NewSQLStore(dbh)
	pool := vocab.NewSQLPool(dbh)
	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Public: account creation and login.
	r.Post("/api/users", api.SignUpHandler(dbh))
	r.Post("/api/sign_in", api.SignInHandler(dbh, authSvc))

	// Protected API.
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))

		pr.Get("/api/me", api.MeHandler(dbh))

		// Student flow: fresh paper out, submission in.
		pr.Get("/api/paper", api.GetPaperHandler(dbh, pool, paperStore, cfg.ProblemsPerPaper, cfg.CandidatesPerProblem))
		pr.Post("/api/submit", api.SubmitPaperHandler(dbh, paperStore))

		pr.Get("/api/results/specific/me", api.MyResultHandler(dbh, paperStore))
		pr.Get("/api/results/meta/me", api.MyResultMetaHandler(dbh, paperStore))

		// Teacher/admin surfaces.
		pr.With(auth.RequireRole(auth.RoleTeacher, auth.RoleAdmin)).
			Get("/api/students", api.StudentsHandler(dbh))
		pr.With(auth.RequireRole(auth.RoleTeacher, auth.RoleAdmin)).
			Get("/api/results/specific", api.StudentResultHandler(dbh, paperStore))
		pr.With(auth.RequireRole(auth.RoleTeacher, auth.RoleAdmin)).
			Get("/api/results/meta/all", api.StudentResultMetaHandler(dbh, paperStore))
		pr.With(auth.RequireRole(auth.RoleTeacher, auth.RoleAdmin)).
			Post("/api/vocab/bulk", api.BulkImportVocabHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
