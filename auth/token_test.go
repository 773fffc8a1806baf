package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rvieira/portfolio-cms/models"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "portfolio-cms",
		Duration: time.Hour,
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	ts := testTokenService()
	user := &models.User{ID: uuid.New(), Name: "Admin", Email: "admin@example.com"}

	token, exp, err := ts.Sign(user)
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}
	if time.Until(exp) <= 0 {
		t.Fatal("expected expiry in the future")
	}

	claims, err := ts.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if claims.Subject != user.ID.String() {
		t.Fatalf("expected subject %q, got %q", user.ID, claims.Subject)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	ts := testTokenService()
	token, _, err := ts.Sign(&models.User{ID: uuid.New(), Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	other := TokenService{Secret: []byte("different-secret"), Issuer: ts.Issuer, Duration: ts.Duration}
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected error for token signed with another secret")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	ts := testTokenService()
	ts.Duration = -time.Minute

	token, _, err := ts.Sign(&models.User{ID: uuid.New(), Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}
	if _, err := ts.Parse(token); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	if _, err := testTokenService().Parse("not-a-token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("hunter2-but-longer")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "hunter2-but-longer" {
		t.Fatal("expected hash to differ from plaintext")
	}
	if !CheckPassword(hash, "hunter2-but-longer") {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword(hash, "wrong-password") {
		t.Fatal("expected mismatched password to fail")
	}
}
