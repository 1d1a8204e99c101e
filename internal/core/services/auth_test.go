package services

import (
	"context"
	"errors"
	"testing"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven/mocks"
)

type staticInspector struct {
	claims *domain.TokenClaims
	err    error
}

func (i staticInspector) Claims(string) (*domain.TokenClaims, error) {
	return i.claims, i.err
}

func newAuthFixture() (*mocks.MockGateway, *mocks.MockTokenStore, *mocks.MockPreferenceStore) {
	return mocks.NewMockGateway(), mocks.NewMockTokenStore(), mocks.NewMockPreferenceStore()
}

func TestLoginPersistsTokens(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	gw.Handler = func(method, path string, body any) (any, error) {
		if method != "POST" || path != "/auth/login" {
			t.Fatalf("unexpected call %s %s", method, path)
		}
		return domain.LoginResult{
			User: &domain.User{ID: "u1", Email: "a@b.co"},
			Tokens: domain.TokenPair{
				AccessToken:  "at",
				RefreshToken: "rt",
			},
		}, nil
	}

	svc := NewAuthService(gw, tokens, prefs, staticInspector{})
	result, err := svc.Login(context.Background(), "a@b.co", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.User == nil || result.User.ID != "u1" {
		t.Errorf("unexpected user: %+v", result.User)
	}

	access, _ := tokens.AccessToken(context.Background())
	refresh, _ := tokens.RefreshToken(context.Background())
	if access != "at" || refresh != "rt" {
		t.Errorf("tokens not persisted: access=%q refresh=%q", access, refresh)
	}
}

func TestLoginValidation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "secret"},
		{"malformed email", "not-an-email", "secret"},
		{"empty password", "a@b.co", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw, tokens, prefs := newAuthFixture()
			svc := NewAuthService(gw, tokens, prefs, staticInspector{})

			_, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if gw.CallCount() != 0 {
				t.Errorf("expected no gateway calls, got %d", gw.CallCount())
			}
		})
	}
}

func TestLoginFailureLeavesTokensUntouched(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	apiErr := &domain.APIError{StatusCode: 401, Message: "invalid credentials"}
	gw.Handler = func(method, path string, body any) (any, error) {
		return nil, apiErr
	}

	svc := NewAuthService(gw, tokens, prefs, staticInspector{})
	_, err := svc.Login(context.Background(), "a@b.co", "wrong")
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected api error, got %v", err)
	}
	if tokens.SetCount() != 0 {
		t.Errorf("tokens written on failed login")
	}
}

func TestRegisterRequiresCompanyName(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	svc := NewAuthService(gw, tokens, prefs, staticInspector{})

	_, err := svc.Register(context.Background(), domain.RegisterRequest{
		Email:    "a@b.co",
		Password: "longenough",
		FullName: "Ada",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if gw.CallCount() != 0 {
		t.Errorf("expected no gateway calls, got %d", gw.CallCount())
	}
}

func TestRegisterSimpleStripsCompany(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	gw.Handler = func(method, path string, body any) (any, error) {
		req, ok := body.(domain.RegisterRequest)
		if !ok {
			t.Fatalf("unexpected body type %T", body)
		}
		if req.CompanyName != "" || req.CompanySlug != "" {
			t.Errorf("company fields not stripped: %+v", req)
		}
		return domain.LoginResult{Tokens: domain.TokenPair{AccessToken: "at", RefreshToken: "rt"}}, nil
	}

	svc := NewAuthService(gw, tokens, prefs, staticInspector{})
	_, err := svc.RegisterSimple(context.Background(), domain.RegisterRequest{
		Email:       "a@b.co",
		Password:    "longenough",
		FullName:    "Ada",
		CompanyName: "should be dropped",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := gw.LastCall()
	if call == nil || call.Path != "/auth/register-simple" {
		t.Errorf("unexpected call: %+v", call)
	}
	if tokens.SetCount() != 1 {
		t.Errorf("expected one token write, got %d", tokens.SetCount())
	}
}

func TestResendVerificationRemembersEmail(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	svc := NewAuthService(gw, tokens, prefs, staticInspector{})

	_, err := svc.ResendVerification(context.Background(), "a@b.co")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, _ := prefs.Get(context.Background(), domain.PrefLastVerifyEmail)
	if saved != "a@b.co" {
		t.Errorf("verify email not remembered, got %q", saved)
	}
}

func TestVerifyEmailClearsRememberedEmail(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	_ = prefs.Set(context.Background(), domain.PrefLastVerifyEmail, "a@b.co")

	svc := NewAuthService(gw, tokens, prefs, staticInspector{})
	if _, err := svc.VerifyEmail(context.Background(), "a@b.co", "123456"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, _ := prefs.Get(context.Background(), domain.PrefLastVerifyEmail)
	if saved != "" {
		t.Errorf("remembered email not cleared, got %q", saved)
	}
}

func TestForgotPasswordRemembersEmail(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	svc := NewAuthService(gw, tokens, prefs, staticInspector{})

	if _, err := svc.ForgotPassword(context.Background(), "a@b.co"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, _ := prefs.Get(context.Background(), domain.PrefLastResetEmail)
	if saved != "a@b.co" {
		t.Errorf("reset email not remembered, got %q", saved)
	}
}

func TestResetPasswordRejectsShortPassword(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	svc := NewAuthService(gw, tokens, prefs, staticInspector{})

	_, err := svc.ResetPassword(context.Background(), "a@b.co", "123456", "short")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if gw.CallCount() != 0 {
		t.Errorf("expected no gateway calls, got %d", gw.CallCount())
	}
}

func TestLogoutClearsTokensEvenOnServerError(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	_ = tokens.SetTokens(context.Background(), "at", "rt")

	serverErr := errors.New("server down")
	gw.Handler = func(method, path string, body any) (any, error) {
		return nil, serverErr
	}

	svc := NewAuthService(gw, tokens, prefs, staticInspector{})
	err := svc.Logout(context.Background())
	if !errors.Is(err, serverErr) {
		t.Errorf("expected server error to propagate, got %v", err)
	}

	access, _ := tokens.AccessToken(context.Background())
	refresh, _ := tokens.RefreshToken(context.Background())
	if access != "" || refresh != "" {
		t.Errorf("tokens not cleared: access=%q refresh=%q", access, refresh)
	}
}

func TestLogoutWithoutRefreshTokenSkipsServerCall(t *testing.T) {
	gw, tokens, prefs := newAuthFixture()
	svc := NewAuthService(gw, tokens, prefs, staticInspector{})

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gw.CallCount() != 0 {
		t.Errorf("expected no gateway calls, got %d", gw.CallCount())
	}
	if tokens.ClearCount() != 1 {
		t.Errorf("expected one clear, got %d", tokens.ClearCount())
	}
}

func TestSessionInfo(t *testing.T) {
	t.Run("no token", func(t *testing.T) {
		gw, tokens, prefs := newAuthFixture()
		svc := NewAuthService(gw, tokens, prefs, staticInspector{})

		info, err := svc.SessionInfo(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Authenticated {
			t.Errorf("expected unauthenticated session")
		}
	})

	t.Run("decodable token", func(t *testing.T) {
		gw, tokens, prefs := newAuthFixture()
		_ = tokens.SetTokens(context.Background(), "at", "rt")

		svc := NewAuthService(gw, tokens, prefs, staticInspector{
			claims: &domain.TokenClaims{Email: "a@b.co"},
		})

		info, err := svc.SessionInfo(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.Authenticated || info.Email != "a@b.co" {
			t.Errorf("unexpected session info: %+v", info)
		}
	})

	t.Run("undecodable token still counts", func(t *testing.T) {
		gw, tokens, prefs := newAuthFixture()
		_ = tokens.SetTokens(context.Background(), "garbage", "rt")

		svc := NewAuthService(gw, tokens, prefs, staticInspector{err: errors.New("bad token")})

		info, err := svc.SessionInfo(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !info.Authenticated {
			t.Errorf("expected authenticated session for stored token")
		}
	})
}
