package config

import (
	"context"

	"google.golang.org/grpc"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// LoadRouterConfiguration loads only the gRPC keepalive settings the router
// needs from the shared configuration ConfigMap; the router has no
// authentication or authorization surface of its own (stream tokens are
// verified against the controller's signing key instead).
func LoadRouterConfiguration(
	ctx context.Context,
	reader client.Reader,
	key client.ObjectKey,
) ([]grpc.ServerOption, error) {
	var configmap corev1.ConfigMap
	if err := reader.Get(ctx, key, &configmap); err != nil {
		return nil, err
	}

	rawConfig, ok := configmap.Data["config"]
	if !ok {
		return nil, nil
	}

	var config Config
	if err := yaml.UnmarshalStrict([]byte(rawConfig), &config); err != nil {
		return nil, err
	}

	return LoadGrpcConfiguration(config.Grpc)
}
