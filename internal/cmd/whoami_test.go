package cmd

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenExpiryReadsExpClaim(t *testing.T) {
	exp := time.Now().Add(24 * time.Hour).Truncate(time.Second)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}

	got := tokenExpiry(token)
	if !got.Equal(exp) {
		t.Errorf("tokenExpiry() = %v, want %v", got, exp)
	}
}

func TestTokenExpiryZeroWithoutClaim(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatal(err)
	}

	if got := tokenExpiry(token); !got.IsZero() {
		t.Errorf("tokenExpiry() = %v, want zero time", got)
	}
}

func TestTokenExpiryZeroForGarbage(t *testing.T) {
	if got := tokenExpiry("not-a-jwt"); !got.IsZero() {
		t.Errorf("tokenExpiry() = %v, want zero time", got)
	}
}
