package config

import (
	"context"
	"fmt"
	"time"

	"github.com/hil-broker/broker/internal/authorization"
	"github.com/hil-broker/broker/internal/oidc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/yaml"
	"k8s.io/apiserver/pkg/authentication/authenticator"
	"k8s.io/apiserver/pkg/authorization/authorizer"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

func LoadConfiguration(
	ctx context.Context,
	client client.Reader,
	scheme *runtime.Scheme,
	key client.ObjectKey,
	signer *oidc.Signer,
	certificateAuthority string,
) (authenticator.Token, string, Router, []grpc.ServerOption, *Provisioning, *ExporterOptions, *LeaseOptions, error) {
	var configmap corev1.ConfigMap
	if err := client.Get(ctx, key, &configmap); err != nil {
		return nil, "", nil, nil, nil, nil, nil, err
	}

	rawAuthenticationConfiguration, ok := configmap.Data["authentication"]
	if ok {
		// backwards compatibility
		// TODO: remove in 0.7.0
		authenticator, prefix, err := oidc.LoadAuthenticationConfiguration(
			ctx,
			scheme,
			[]byte(rawAuthenticationConfiguration),
			signer,
			certificateAuthority,
		)
		if err != nil {
			return nil, "", nil, nil, nil, nil, nil, err
		}

		exporterOptions := &ExporterOptions{}
		if err := exporterOptions.PreprocessConfig(); err != nil {
			return nil, "", nil, nil, nil, nil, nil, err
		}
		leaseOptions := &LeaseOptions{}
		if err := leaseOptions.PreprocessConfig(); err != nil {
			return nil, "", nil, nil, nil, nil, nil, err
		}

		return authenticator, prefix, nil, []grpc.ServerOption{grpc.KeepaliveEnforcementPolicy(keepalive.EnforcementPolicy{
			MinTime:             1 * time.Second,
			PermitWithoutStream: true,
		})}, &Provisioning{Enabled: false}, exporterOptions, leaseOptions, nil
	}

	rawConfig, ok := configmap.Data["config"]
	if !ok {
		return nil, "", nil, nil, nil, nil, nil, fmt.Errorf("LoadConfiguration: missing config section")
	}

	var config Config
	err := yaml.UnmarshalStrict([]byte(rawConfig), &config)
	if err != nil {
		return nil, "", nil, nil, nil, nil, nil, err
	}

	authenticator, prefix, err := LoadAuthenticationConfiguration(
		ctx,
		scheme,
		config.Authentication,
		signer,
		certificateAuthority,
	)
	if err != nil {
		return nil, "", nil, nil, nil, nil, nil, err
	}

	serverOptions, err := LoadGrpcConfiguration(config.Grpc)
	if err != nil {
		return nil, "", nil, nil, nil, nil, nil, err
	}

	router, err := loadRouterDirectory(configmap)
	if err != nil {
		return nil, "", nil, nil, nil, nil, nil, err
	}

	if err := config.ExporterOptions.PreprocessConfig(); err != nil {
		return nil, "", nil, nil, nil, nil, nil, err
	}
	if err := config.LeaseOptions.PreprocessConfig(); err != nil {
		return nil, "", nil, nil, nil, nil, nil, err
	}

	return authenticator, prefix, router, serverOptions, &config.Provisioning, &config.ExporterOptions, &config.LeaseOptions, nil
}

// LoadAuthorizer picks the authorizer backend from the optional
// "authorization" key of the shared ConfigMap (Basic or CEL, see
// internal/authorization). Absent, the BasicAuthorizer is used.
func LoadAuthorizer(
	ctx context.Context,
	reader client.Reader,
	scheme *runtime.Scheme,
	key client.ObjectKey,
	kclient client.Client,
	prefix string,
	provisioning bool,
) (authorizer.Authorizer, error) {
	var configmap corev1.ConfigMap
	if err := reader.Get(ctx, key, &configmap); err != nil {
		return nil, err
	}

	rawAuthorization, ok := configmap.Data["authorization"]
	if !ok || rawAuthorization == "" {
		return authorization.NewBasicAuthorizer(kclient, prefix, provisioning), nil
	}

	return authorization.LoadAuthorizationConfiguration(
		ctx,
		scheme,
		[]byte(rawAuthorization),
		kclient,
		prefix,
		provisioning,
	)
}

// loadRouterDirectory decodes the optional "router" key of the shared
// ConfigMap into the directory of router endpoints Dial picks from. Absent
// or empty, the controller simply has no router to hand out.
func loadRouterDirectory(configmap corev1.ConfigMap) (Router, error) {
	rawRouter, ok := configmap.Data["router"]
	if !ok || rawRouter == "" {
		return nil, nil
	}

	var router Router
	if err := yaml.UnmarshalStrict([]byte(rawRouter), &router); err != nil {
		return nil, fmt.Errorf("loadRouterDirectory: %w", err)
	}

	return router, nil
}
