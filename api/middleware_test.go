package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/rvieira/portfolio-cms/auth"
	"github.com/rvieira/portfolio-cms/models"
)

func testTokens() auth.TokenService {
	return auth.TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "portfolio-cms",
		Duration: time.Hour,
	}
}

// echoEmailHandler writes the authenticated email from the request context.
func echoEmailHandler(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, err := ctxUserEmail(r.Context())
		if err != nil {
			t.Errorf("expected email in context: %v", err)
		}
		w.Write([]byte(email))
	})
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	t.Parallel()

	middleware := newAuthMiddleware(testTokens())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/blog", nil)

	middleware.authenticate(echoEmailHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	t.Parallel()

	middleware := newAuthMiddleware(testTokens())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/blog", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	middleware.authenticate(echoEmailHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticateRejectsTokenFromOtherSecret(t *testing.T) {
	t.Parallel()

	other := auth.TokenService{Secret: []byte("other-secret"), Issuer: "portfolio-cms", Duration: time.Hour}
	token, _, err := other.Sign(&models.User{ID: uuid.New(), Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	middleware := newAuthMiddleware(testTokens())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/blog", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	middleware.authenticate(echoEmailHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthenticatePassesEmailToHandler(t *testing.T) {
	t.Parallel()

	tokens := testTokens()
	token, _, err := tokens.Sign(&models.User{ID: uuid.New(), Email: "admin@example.com"})
	if err != nil {
		t.Fatalf("Sign returned error: %v", err)
	}

	middleware := newAuthMiddleware(tokens)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/blog", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	middleware.authenticate(echoEmailHandler(t)).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "admin@example.com" {
		t.Fatalf("expected handler to see the email, got %q", rec.Body.String())
	}
}
