package generates

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	g := NewSessionTokenGenerate([]byte("test-secret"), 0)

	token, err := g.Token(42, "alice")
	if err != nil {
		t.Fatalf("token: %v", err)
	}

	claims, err := g.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Username != "alice" {
		t.Errorf("expected username alice, got %q", claims.Username)
	}
	if claims.ID == "" {
		t.Error("expected a jti claim")
	}
}

func TestSessionTokenExpiryWindow(t *testing.T) {
	g := NewSessionTokenGenerate([]byte("test-secret"), 0)
	before := time.Now()
	token, err := g.Token(1, "bob")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	claims, err := g.Parse(token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := before.Add(DefaultSessionTTL)
	got := claims.ExpiresAt.Time
	if got.Before(want.Add(-time.Minute)) || got.After(want.Add(time.Minute)) {
		t.Errorf("expiry %v not within a minute of %v", got, want)
	}
}

func TestSessionTokenWrongKeyRejected(t *testing.T) {
	g := NewSessionTokenGenerate([]byte("key-one"), 0)
	token, err := g.Token(7, "carol")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	other := NewSessionTokenGenerate([]byte("key-two"), 0)
	if _, err := other.Parse(token); err == nil {
		t.Fatal("expected verification failure with a different key")
	}
}

func TestSessionTokenExpiredRejected(t *testing.T) {
	g := NewSessionTokenGenerate([]byte("test-secret"), -time.Hour)
	// Negative TTL falls back to the default; mint an expired token by hand.
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID:   9,
		Username: "dave",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.SignedKey)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := g.Parse(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestSessionTokenNonHMACRejected(t *testing.T) {
	g := NewSessionTokenGenerate([]byte("test-secret"), 0)
	// alg=none style token must not verify.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &SessionClaims{UserID: 3, Username: "eve"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := g.Parse(token); err == nil {
		t.Fatal("expected unsigned token to be rejected")
	}
}
