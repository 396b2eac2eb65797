package authentication

import (
	"context"

	"k8s.io/apiserver/pkg/authentication/authenticator"
)

// ContextAuthenticator authenticates a request carried by a gRPC context,
// as opposed to k8s.io/apiserver's authenticator.Token which only takes a
// bare token string.
type ContextAuthenticator interface {
	AuthenticateContext(ctx context.Context) (*authenticator.Response, bool, error)
}
