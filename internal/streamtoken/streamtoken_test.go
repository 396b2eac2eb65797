package streamtoken

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var secret = []byte("test-router-key")

func withBearer(token string) context.Context {
	md := metadata.New(map[string]string{"authorization": "Bearer " + token})
	return metadata.NewIncomingContext(context.Background(), md)
}

func TestMintVerifyRoundTrip(t *testing.T) {
	token, err := Mint(secret, "stream-1", time.Minute)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	subject, expires, err := Verify(withBearer(token), secret)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if subject != "stream-1" {
		t.Fatalf("subject = %q, want %q", subject, "stream-1")
	}
	if remaining := time.Until(expires); remaining <= 0 || remaining > time.Minute {
		t.Fatalf("expiration %v not within the minted lifetime", expires)
	}
}

// A Dial mints two tokens with the same subject for the exporter and client
// side of a pairing; both must verify to the same rendezvous subject.
func TestMintSharedSubjectForBothSides(t *testing.T) {
	clientToken, err := Mint(secret, "stream-7", PairingWindow)
	if err != nil {
		t.Fatalf("Mint client token: %v", err)
	}
	exporterToken, err := Mint(secret, "stream-7", PairingWindow)
	if err != nil {
		t.Fatalf("Mint exporter token: %v", err)
	}

	clientSubject, _, err := Verify(withBearer(clientToken), secret)
	if err != nil {
		t.Fatalf("Verify client token: %v", err)
	}
	exporterSubject, _, err := Verify(withBearer(exporterToken), secret)
	if err != nil {
		t.Fatalf("Verify exporter token: %v", err)
	}

	if clientSubject != exporterSubject {
		t.Fatalf("subjects diverged: client=%q exporter=%q", clientSubject, exporterSubject)
	}
}

// A token signed for one audience must not verify against another. Mint
// always pins the router audience, so we exercise the mismatch by parsing a
// raw token minted for a foreign audience.
func TestVerifyRejectsWrongAudience(t *testing.T) {
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    Issuer,
		Subject:   "stream-9",
		Audience:  []string{"https://hil-broker.dev/controller"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("sign foreign-audience token: %v", err)
	}

	_, _, err = Verify(withBearer(foreign), secret)
	if err == nil {
		t.Fatal("expected verification to fail for wrong audience")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	token, err := Mint(secret, "stream-2", -time.Second)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	_, _, err = Verify(withBearer(token), secret)
	if err == nil {
		t.Fatal("expected verification to fail for expired token")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := Mint(secret, "stream-3", time.Minute)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	_, _, err = Verify(withBearer(token), []byte("a-different-secret"))
	if err == nil {
		t.Fatal("expected verification to fail for wrong secret")
	}
}

func TestVerifyRejectsMissingToken(t *testing.T) {
	_, _, err := Verify(context.Background(), secret)
	if err == nil {
		t.Fatal("expected verification to fail with no bearer token in context")
	}
}
