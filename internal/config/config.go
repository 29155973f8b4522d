package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr string

	DBDriver string
	DBDSN    string

	AuthSecret string

	CORSOrigins []string

	// Paper generation defaults; a request never overrides these.
	ProblemsPerPaper     int
	CandidatesPerProblem int
}

func FromEnv() Config {
	return Config{
		HTTPAddr:             envOr("HTTP_ADDR", ":8080"),
		DBDriver:             envOr("DB_DRIVER", "sqlite"),
		DBDSN:                envOr("DB_DSN", ""),
		AuthSecret:           envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		CORSOrigins:          csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		ProblemsPerPaper:     envInt("PROBLEMS_PER_PAPER", 20),
		CandidatesPerProblem: envInt("CANDIDATES_PER_PROBLEM", 4),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
