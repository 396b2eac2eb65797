package oidc

import (
	"context"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	"k8s.io/apiserver/pkg/apis/apiserver"
	apiserverv1beta1 "k8s.io/apiserver/pkg/apis/apiserver/v1beta1"
	"k8s.io/apiserver/pkg/authentication/authenticator"
	tokenunion "k8s.io/apiserver/pkg/authentication/token/union"
	"k8s.io/apiserver/pkg/server/dynamiccertificates"
	koidc "k8s.io/apiserver/plugin/pkg/authenticator/token/oidc"
)

// LoadAuthenticationConfiguration decodes the legacy raw-ConfigMap
// authentication section and builds the union authenticator from it: the
// internal signer is always appended as an implicit JWTAuthenticator entry
// so internally minted tokens verify the same way external ones do.
func LoadAuthenticationConfiguration(
	ctx context.Context,
	scheme *runtime.Scheme,
	configuration []byte,
	signer *Signer,
	certificateAuthority string,
) (authenticator.Token, string, error) {
	var authenticationConfiguration hilbrokerv1alpha1.AuthenticationConfiguration
	if err := runtime.DecodeInto(
		serializer.NewCodecFactory(scheme, serializer.EnableStrict).
			UniversalDecoder(hilbrokerv1alpha1.GroupVersion),
		configuration,
		&authenticationConfiguration,
	); err != nil {
		return nil, "", err
	}

	prefix := authenticationConfiguration.Internal.Prefix
	if prefix == "" {
		prefix = "internal:"
	}

	authenticationConfiguration.JWT = append(authenticationConfiguration.JWT, apiserverv1beta1.JWTAuthenticator{
		Issuer: apiserverv1beta1.Issuer{
			URL:                  signer.Issuer(),
			CertificateAuthority: certificateAuthority,
			Audiences:            []string{signer.Audience()},
		},
		ClaimMappings: apiserverv1beta1.ClaimMappings{
			Username: apiserverv1beta1.PrefixedClaimOrExpression{
				Claim:  "sub",
				Prefix: &prefix,
			},
		},
	})

	authn, err := newJWTAuthenticator(ctx, scheme, authenticationConfiguration.JWT)
	if err != nil {
		return nil, "", err
	}

	return authn, prefix, nil
}

// Reference: https://github.com/kubernetes/kubernetes/blob/v1.32.1/pkg/kubeapiserver/authenticator/config.go#L244
func newJWTAuthenticator(
	ctx context.Context,
	scheme *runtime.Scheme,
	jwtAuthenticators []apiserverv1beta1.JWTAuthenticator,
) (authenticator.Token, error) {
	var authenticators []authenticator.Token
	for _, jwtAuthenticator := range jwtAuthenticators {
		var oidcCAContent koidc.CAContentProvider
		if len(jwtAuthenticator.Issuer.CertificateAuthority) > 0 {
			var oidcCAError error
			oidcCAContent, oidcCAError = dynamiccertificates.NewStaticCAContent(
				"oidc-authenticator",
				[]byte(jwtAuthenticator.Issuer.CertificateAuthority),
			)
			if oidcCAError != nil {
				return nil, oidcCAError
			}
		}
		var jwtAuthenticatorUnversioned apiserver.JWTAuthenticator
		if err := scheme.Convert(&jwtAuthenticator, &jwtAuthenticatorUnversioned, nil); err != nil {
			return nil, err
		}
		oidcAuth, err := koidc.New(ctx, koidc.Options{
			JWTAuthenticator:     jwtAuthenticatorUnversioned,
			CAContentProvider:    oidcCAContent,
			SupportedSigningAlgs: koidc.AllValidSigningAlgorithms(),
		})
		if err != nil {
			return nil, err
		}
		authenticators = append(authenticators, oidcAuth)
	}
	return tokenunion.NewFailOnError(authenticators...), nil
}
