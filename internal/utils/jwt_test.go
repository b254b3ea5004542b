package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-time-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var testIdentity = models.Identity{Username: "abc", IsAdmin: false}

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Now()

	token, err := GenerateJWTToken("test-issuer", testIdentity, time.Hour, "secret-key", now)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Claims.Username != "abc" || token.Claims.IsAdmin {
		t.Errorf("unexpected identity claims: %+v", token.Claims.Identity())
	}
	if token.Claims.Subject != "abc" {
		t.Errorf("expected subject 'abc', got %s", token.Claims.Subject)
	}
	if !token.Claims.ExpiresAt.Time.Equal(now.Add(time.Hour).Truncate(time.Second)) {
		t.Errorf("unexpected expiry %v", token.Claims.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		identity models.Identity
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testIdentity, time.Hour, "key"},
		{"empty username", "iss", models.Identity{}, time.Hour, "key"},
		{"zero duration", "iss", testIdentity, 0, "key"},
		{"empty key", "iss", testIdentity, time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, tt.identity, tt.duration, tt.key, time.Now()); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	admin := models.Identity{Username: "root", IsAdmin: true}
	token, err := GenerateJWTToken("iss", admin, time.Hour, "key", time.Now())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "key", "iss")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if parsed.Claims.Identity() != admin {
		t.Errorf("expected %+v, got %+v", admin, parsed.Claims.Identity())
	}
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now())
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	expired, err := GenerateJWTToken("iss", testIdentity, time.Hour, "key", time.Now().Add(-2*time.Hour))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// same claims signed with a different algorithm
	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, valid.Claims)
	noneString, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	tests := []struct {
		name        string
		token       string
		key         string
		issuer      string
		wantExpired bool
	}{
		{name: "wrong key", token: valid.SignedString, key: "other", issuer: "iss"},
		{name: "wrong issuer", token: valid.SignedString, key: "key", issuer: "other"},
		{name: "garbage", token: "not.a.token", key: "key", issuer: "iss"},
		{name: "alg none", token: noneString, key: "key", issuer: "iss"},
		{name: "expired", token: expired.SignedString, key: "key", issuer: "iss", wantExpired: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if IsTokenExpired(err) != tt.wantExpired {
				t.Errorf("IsTokenExpired = %v, want %v (err: %v)", IsTokenExpired(err), tt.wantExpired, err)
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseBearerToken(tt.header)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%q: expected error", tt.header)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%q: got (%q, %v), want %q", tt.header, got, err, tt.want)
		}
	}
}
