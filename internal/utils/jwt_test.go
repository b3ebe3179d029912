package utils

import (
	"strings"
	"testing"
	"time"
)

const (
	testIssuer  = "chatvault-test"
	testSignKey = "test-sign-key"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty signed string")
	}
	if strings.Count(token.SignedString, ".") != 2 {
		t.Errorf("expected compact JWS form, got %q", token.SignedString)
	}
	if token.UserID != 42 {
		t.Errorf("expected cached UserID=42, got %d", token.UserID)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 42, tt.duration, tt.signKey)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", parsed.UserID)
	}
}

func TestValidateAndParseJWTToken_WrongKey(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, "other-key", testIssuer)
	if err == nil {
		t.Fatal("expected signature verification to fail")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, "someone-else")
	if err == nil {
		t.Fatal("expected issuer validation to fail")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	generated, err := GenerateJWTToken(testIssuer, 42, -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	_, err = ValidateAndParseJWTToken(generated.SignedString, testSignKey, testIssuer)
	if err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer)
	if err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}
