package oidc

import (
	"context"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
	"time"

	"filippo.io/keygen"
	"github.com/gin-gonic/gin"
	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/zitadel/oidc/v3/pkg/oidc"
	"github.com/zitadel/oidc/v3/pkg/op"
)

// Signer is the controller's internal OIDC identity provider: it mints and
// verifies the long-lived identity credentials (valid for tokenValidity)
// exporters and clients present on every RPC, and publishes its public key at /jwks so external verifiers
// (kube-apiserver, other brokers) can validate tokens without trusting the
// controller directly.
type Signer struct {
	privatekey *ecdsa.PrivateKey
	issuer     string
	audience   string
}

func NewSigner(privateKey *ecdsa.PrivateKey, issuer, audience string) *Signer {
	return &Signer{
		privatekey: privateKey,
		issuer:     issuer,
		audience:   audience,
	}
}

// NewSignerFromSeed derives the signing key deterministically from seed, so
// restarting the controller does not invalidate every credential already
// handed out to exporters and clients.
func NewSignerFromSeed(seed []byte, issuer, audience string) (*Signer, error) {
	hash := sha256.Sum256(seed)
	source := rand.NewSource(int64(binary.BigEndian.Uint64(hash[:8])))
	reader := rand.New(source)
	key, err := keygen.ECDSALegacy(elliptic.P256(), reader)
	if err != nil {
		return nil, err
	}
	return NewSigner(key, issuer, audience), nil
}

func (k *Signer) Issuer() string {
	return k.issuer
}

func (k *Signer) Audience() string {
	return k.audience
}

func (k *Signer) ID() string {
	return "default"
}

func (k *Signer) Algorithm() jose.SignatureAlgorithm {
	return jose.ES256
}

func (k *Signer) Use() string {
	return "sig"
}

func (k *Signer) Key() any {
	return k.privatekey.Public()
}

func (k *Signer) KeySet(context.Context) ([]op.Key, error) {
	return []op.Key{k}, nil
}

// Register wires the discovery document and JWKS endpoint that let external
// verifiers (including kube-apiserver's own OIDC authenticator plugin)
// validate tokens minted by Token without a side channel to the controller.
func (k *Signer) Register(group gin.IRoutes) {
	group.GET("/.well-known/openid-configuration", func(c *gin.Context) {
		op.Discover(c.Writer, &oidc.DiscoveryConfiguration{
			Issuer:  k.issuer,
			JwksURI: k.issuer + "/jwks",
		})
	})

	group.GET("/jwks", func(c *gin.Context) {
		op.Keys(c.Writer, c.Request, k)
	})
}

const tokenValidity = 365 * 24 * time.Hour // FIXME: rotate keys on expiration

func (k *Signer) Token(subject string) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodES256, jwt.RegisteredClaims{
		Issuer:    k.issuer,
		Subject:   subject,
		Audience:  []string{k.audience},
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
	}).SignedString(k.privatekey)
}

// Validate reports whether token is a currently-valid credential minted by
// this signer, used to decide whether a cached secret needs reissuing.
func (k *Signer) Validate(token string) error {
	_, err := jwt.ParseWithClaims(
		token,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (any, error) { return k.privatekey.Public(), nil },
		jwt.WithIssuer(k.issuer),
		jwt.WithAudience(k.audience),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Name}),
	)
	return err
}
