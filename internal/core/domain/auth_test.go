package domain

import (
	"testing"
	"time"
)

func TestLoginRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     LoginRequest
		wantErr bool
	}{
		{
			name: "valid",
			req:  LoginRequest{Email: "user@example.com", Password: "secret"},
		},
		{
			name:    "missing email",
			req:     LoginRequest{Password: "secret"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     LoginRequest{Email: "not-an-email", Password: "secret"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     LoginRequest{Email: "user@example.com"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name: "valid with company",
			req: RegisterRequest{
				Email:       "user@example.com",
				Password:    "longenough",
				FullName:    "Ada Lovelace",
				CompanyName: "Acme",
			},
		},
		{
			name: "valid without company",
			req: RegisterRequest{
				Email:    "user@example.com",
				Password: "longenough",
				FullName: "Ada Lovelace",
			},
		},
		{
			name: "short password",
			req: RegisterRequest{
				Email:    "user@example.com",
				Password: "short",
				FullName: "Ada Lovelace",
			},
			wantErr: true,
		},
		{
			name: "missing name",
			req: RegisterRequest{
				Email:    "user@example.com",
				Password: "longenough",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenPairEmpty(t *testing.T) {
	if !(TokenPair{}).Empty() {
		t.Error("expected zero pair to be empty")
	}
	if (TokenPair{AccessToken: "a"}).Empty() {
		t.Error("expected pair with access token to be non-empty")
	}
	if (TokenPair{RefreshToken: "r"}).Empty() {
		t.Error("expected pair with refresh token to be non-empty")
	}
}

func TestTokenClaimsExpired(t *testing.T) {
	past := &TokenClaims{ExpiresAt: time.Now().Add(-time.Minute)}
	if !past.Expired() {
		t.Error("expected past expiry to report expired")
	}

	future := &TokenClaims{ExpiresAt: time.Now().Add(time.Hour)}
	if future.Expired() {
		t.Error("expected future expiry to report not expired")
	}

	zero := &TokenClaims{}
	if zero.Expired() {
		t.Error("expected zero expiry to report not expired")
	}
}
