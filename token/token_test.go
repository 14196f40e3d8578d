package token

import (
	"testing"
	"time"

	"github.com/thelifesavers/backend/config"
	"github.com/thelifesavers/backend/errors"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	session := SessionToken{
		Env: &config.Env{
			SessionSecret:       "test-session-secret",
			SessionTokenExpires: time.Hour,
		},
	}

	userID := "6571f2a9c53c2b0012ab34cd"
	tokenDetails, err := session.Create(userID)
	if err != nil {
		t.Fatal(err)
	}
	if tokenDetails.UserID != userID {
		t.Fatalf("expected the user id %s, got %s", userID, tokenDetails.UserID)
	}

	got, err := session.Validate(tokenDetails.Token)
	if err != nil {
		t.Fatal(err)
	}
	if got != userID {
		t.Fatalf("expected the user id %s, got %s", userID, got)
	}
}

func TestSessionTokenExpired(t *testing.T) {
	session := SessionToken{
		Env: &config.Env{
			SessionSecret:       "test-session-secret",
			SessionTokenExpires: -time.Minute,
		},
	}

	tokenDetails, err := session.Create("6571f2a9c53c2b0012ab34cd")
	if err != nil {
		t.Fatal(err)
	}

	_, err = session.Validate(tokenDetails.Token)
	if err == nil {
		t.Fatal("an expired token must not validate")
	}
	if !(errors.CheckTokenError{}.Expired(err)) {
		t.Fatalf("expected an expiry error, got %v", err)
	}
}

func TestSessionTokenWrongSecret(t *testing.T) {
	session := SessionToken{
		Env: &config.Env{
			SessionSecret:       "test-session-secret",
			SessionTokenExpires: time.Hour,
		},
	}

	tokenDetails, err := session.Create("6571f2a9c53c2b0012ab34cd")
	if err != nil {
		t.Fatal(err)
	}

	other := SessionToken{
		Env: &config.Env{
			SessionSecret:       "another-secret",
			SessionTokenExpires: time.Hour,
		},
	}

	_, err = other.Validate(tokenDetails.Token)
	if err == nil {
		t.Fatal("a token signed with a different secret must not validate")
	}
}

func TestSessionTokenGarbage(t *testing.T) {
	session := SessionToken{
		Env: &config.Env{
			SessionSecret:       "test-session-secret",
			SessionTokenExpires: time.Hour,
		},
	}

	_, err := session.Validate("not-a-token")
	if err == nil {
		t.Fatal("a malformed token must not validate")
	}
}
