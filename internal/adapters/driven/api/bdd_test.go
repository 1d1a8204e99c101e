package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cucumber/godog"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven/mocks"
)

// sessionWorld holds the state shared by the refresh feature steps
type sessionWorld struct {
	server  *httptest.Server
	client  *Client
	tokens  *mocks.MockTokenStore
	expired atomic.Int32

	refreshValid bool
	lastErr      error
}

func (w *sessionWorld) start() {
	w.expired.Store(0)
	w.refreshValid = false
	w.lastErr = nil

	w.server = httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/refresh":
			if !w.refreshValid {
				rw.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(rw).Encode(map[string]string{"message": "refresh token revoked"})
				return
			}
			json.NewEncoder(rw).Encode(domain.TokenPair{
				AccessToken:  "renewed-access",
				RefreshToken: "renewed-refresh",
			})
		default:
			if r.Header.Get("Authorization") != "Bearer renewed-access" {
				rw.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(rw).Encode(map[string]string{"message": "token expired"})
				return
			}
			json.NewEncoder(rw).Encode(map[string]string{"id": "u1"})
		}
	}))

	w.tokens = mocks.NewMockTokenStore()
	w.client = NewClient(Config{
		BaseURL:          w.server.URL,
		Tokens:           w.tokens,
		OnSessionExpired: func() { w.expired.Add(1) },
	})
}

func (w *sessionWorld) stop() {
	if w.server != nil {
		w.server.Close()
	}
}

func (w *sessionWorld) sessionWithValidRefreshToken() error {
	w.refreshValid = true
	return w.tokens.SetTokens(context.Background(), "stale-access", "valid-refresh")
}

func (w *sessionWorld) sessionWithoutRefreshToken() error {
	return w.tokens.SetTokens(context.Background(), "stale-access", "")
}

func (w *sessionWorld) sessionWithRevokedRefreshToken() error {
	w.refreshValid = false
	return w.tokens.SetTokens(context.Background(), "stale-access", "revoked-refresh")
}

func (w *sessionWorld) makeAuthenticatedRequest() error {
	w.lastErr = w.client.Get(context.Background(), "/auth/me", nil)
	return nil
}

func (w *sessionWorld) requestSucceeds() error {
	if w.lastErr != nil {
		return fmt.Errorf("expected success, got %v", w.lastErr)
	}
	return nil
}

func (w *sessionWorld) failsWithOriginalUnauthorized() error {
	var apiErr *domain.APIError
	if !errors.As(w.lastErr, &apiErr) || apiErr.StatusCode != 401 {
		return fmt.Errorf("expected original 401 error, got %v", w.lastErr)
	}
	return nil
}

func (w *sessionWorld) failsWithSessionExpired() error {
	if !errors.Is(w.lastErr, domain.ErrSessionExpired) {
		return fmt.Errorf("expected session expired error, got %v", w.lastErr)
	}
	return nil
}

func (w *sessionWorld) tokensReplaced() error {
	access, _ := w.tokens.AccessToken(context.Background())
	refresh, _ := w.tokens.RefreshToken(context.Background())
	if access != "renewed-access" || refresh != "renewed-refresh" {
		return fmt.Errorf("tokens not replaced: access=%q refresh=%q", access, refresh)
	}
	return nil
}

func (w *sessionWorld) tokensPurged() error {
	access, _ := w.tokens.AccessToken(context.Background())
	refresh, _ := w.tokens.RefreshToken(context.Background())
	if access != "" || refresh != "" {
		return fmt.Errorf("tokens not purged: access=%q refresh=%q", access, refresh)
	}
	return nil
}

func (w *sessionWorld) expiredHandlerInvoked() error {
	if w.expired.Load() == 0 {
		return fmt.Errorf("session expired handler was not invoked")
	}
	return nil
}

func (w *sessionWorld) expiredHandlerNotInvoked() error {
	if n := w.expired.Load(); n != 0 {
		return fmt.Errorf("session expired handler invoked %d times", n)
	}
	return nil
}

func initializeRefreshScenario(sc *godog.ScenarioContext) {
	w := &sessionWorld{}

	sc.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		w.start()
		return ctx, nil
	})
	sc.After(func(ctx context.Context, _ *godog.Scenario, _ error) (context.Context, error) {
		w.stop()
		return ctx, nil
	})

	sc.Given(`^a stored session with a stale access token and a valid refresh token$`, w.sessionWithValidRefreshToken)
	sc.Given(`^a stored session with a stale access token and no refresh token$`, w.sessionWithoutRefreshToken)
	sc.Given(`^a stored session with a stale access token and a revoked refresh token$`, w.sessionWithRevokedRefreshToken)
	sc.When(`^an authenticated request is made$`, w.makeAuthenticatedRequest)
	sc.Then(`^the request succeeds$`, w.requestSucceeds)
	sc.Then(`^the request fails with the original unauthorized error$`, w.failsWithOriginalUnauthorized)
	sc.Then(`^the request fails with a session expired error$`, w.failsWithSessionExpired)
	sc.Then(`^the stored tokens are replaced with the refreshed pair$`, w.tokensReplaced)
	sc.Then(`^the stored tokens are purged$`, w.tokensPurged)
	sc.Then(`^the session expired handler was invoked$`, w.expiredHandlerInvoked)
	sc.Then(`^the session expired handler was not invoked$`, w.expiredHandlerNotInvoked)
}

func TestRefreshFeature(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeRefreshScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"refresh.feature"},
			TestingT: t,
		},
	}
	if suite.Run() != 0 {
		t.Fatal("refresh feature suite failed")
	}
}
