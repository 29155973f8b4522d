package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIssueAndParse(t *testing.T) {
	a := NewAuthService("test-secret")
	tok, err := a.IssueJWT("alice", RoleStudent)
	if err != nil {
		t.Fatal(err)
	}
	claims, err := a.Parse(tok)
	if err != nil {
		t.Fatal(err)
	}
	if claims.Sub != "alice" || claims.Role != "student" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	a := NewAuthService("test-secret")
	if _, err := a.Parse("not-a-token"); err == nil {
		t.Fatal("expected error")
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	tok, err := NewAuthService("secret-a").IssueJWT("alice", RoleStudent)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewAuthService("secret-b").Parse(tok); err == nil {
		t.Fatal("expected error")
	}
}

func TestJWTMiddleware(t *testing.T) {
	a := NewAuthService("test-secret")
	var gotSub string
	var gotRole Role
	h := JWTMiddleware(a)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSub = SubjectFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
	}))

	// No token.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// Valid token attaches subject and role.
	tok, _ := a.IssueJWT("bob", RoleTeacher)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSub != "bob" || gotRole != RoleTeacher {
		t.Fatalf("context not populated: sub=%q role=%q", gotSub, gotRole)
	}
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := RequireRole(RoleTeacher, RoleAdmin)(ok)

	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(WithRole(req.Context(), RoleStudent))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(WithRole(req.Context(), RoleAdmin))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
