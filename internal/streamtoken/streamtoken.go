// Package streamtoken mints and verifies the one-time bearer tokens that
// pair a Dial caller with the Listen-ing exporter on the router: the
// controller mints a token naming the rendezvous subject when it hands out
// a RouterEndpoint/RouterToken pair from Dial or Listen, and the router
// verifies it to recover that subject before pairing the two Stream calls.
//
// Both sides share a single HMAC secret (ROUTER_KEY) rather than trusting a
// third party, since the controller and router are operated as one unit.
package streamtoken

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hil-broker/broker/internal/authentication"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Issuer   = "https://hil-broker.dev/stream"
	Audience = "https://hil-broker.dev/router"

	// PairingWindow bounds how long the router waits for the second peer of
	// a pairing to connect. Stream tokens are bearer capabilities with no
	// revocation; the short lifetime is part of the security model, so
	// callers pass it to Mint rather than picking their own.
	PairingWindow = 2 * time.Minute
)

// Mint signs a token naming subject as the rendezvous key two Stream peers
// will pair up on, valid from now for the given lifetime.
func Mint(secret []byte, subject string, lifetime time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    Issuer,
		Audience:  []string{Audience},
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify extracts and validates the bearer token on ctx, returning the
// rendezvous subject it names and its expiration, which scopes the waiting
// peer's context.
func Verify(ctx context.Context, secret []byte) (string, time.Time, error) {
	token, err := authentication.BearerTokenFromContext(ctx)
	if err != nil {
		return "", time.Time{}, err
	}

	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		token,
		&claims,
		func(t *jwt.Token) (any, error) { return secret, nil },
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil || !parsed.Valid {
		return "", time.Time{}, status.Errorf(codes.Unauthenticated, "invalid stream token")
	}

	return claims.Subject, claims.ExpiresAt.Time, nil
}
