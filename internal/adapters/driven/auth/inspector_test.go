package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// signTestToken builds a signed token; the signature is irrelevant to
// the inspector but keeps the fixture realistic.
func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestInspectorClaims(t *testing.T) {
	issued := time.Now().Truncate(time.Second)
	expires := issued.Add(15 * time.Minute)

	tokenString := signTestToken(t, jwt.MapClaims{
		"user_id":    "u1",
		"email":      "a@b.co",
		"company_id": "c1",
		"iat":        issued.Unix(),
		"exp":        expires.Unix(),
	})

	claims, err := NewInspector().Claims(tokenString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.UserID != "u1" || claims.Email != "a@b.co" || claims.CompanyID != "c1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if !claims.IssuedAt.Equal(issued) {
		t.Errorf("expected issued %v, got %v", issued, claims.IssuedAt)
	}
	if !claims.ExpiresAt.Equal(expires) {
		t.Errorf("expected expiry %v, got %v", expires, claims.ExpiresAt)
	}
	if claims.Expired() {
		t.Errorf("token should not be expired")
	}
}

func TestInspectorSubjectFallback(t *testing.T) {
	tokenString := signTestToken(t, jwt.MapClaims{
		"sub":   "u2",
		"email": "a@b.co",
	})

	claims, err := NewInspector().Claims(tokenString)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != "u2" {
		t.Errorf("expected subject fallback, got %q", claims.UserID)
	}
}

func TestInspectorExpiredToken(t *testing.T) {
	tokenString := signTestToken(t, jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	claims, err := NewInspector().Claims(tokenString)
	if err != nil {
		t.Fatalf("decoding must not fail on expiry: %v", err)
	}
	if !claims.Expired() {
		t.Errorf("expected expired token")
	}
}

func TestInspectorMalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-jwt"},
		{"two segments", "abc.def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInspector().Claims(tt.token)
			if !errors.Is(err, domain.ErrTokenInvalid) {
				t.Errorf("expected ErrTokenInvalid, got %v", err)
			}
		})
	}
}
