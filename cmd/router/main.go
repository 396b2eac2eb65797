/*
Copyright 2024.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	ctrl "sigs.k8s.io/controller-runtime"
	kclient "sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/go-logr/logr"
	"github.com/hil-broker/broker/internal/config"
	"github.com/hil-broker/broker/internal/service"

	_ "google.golang.org/grpc/encoding/gzip"
)

var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// The router is a thin, stateless stream-forwarding process: it has no
// resource store of its own and only needs enough of a Kubernetes client to
// read the shared gRPC keepalive settings out of the same ConfigMap the
// controller reads. Stream authentication is verified against the
// controller's signing key (ROUTER_KEY), never against the API server.
func main() {
	opts := zap.Options{}
	opts.BindFlags(flag.CommandLine)

	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))
	logger := ctrl.Log.WithName("router")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logr.NewContext(ctx, logger)

	logger.Info("hil-broker router starting",
		"version", version,
		"gitCommit", gitCommit,
		"buildDate", buildDate,
	)

	cfg := ctrl.GetConfigOrDie()
	client, err := kclient.New(cfg, kclient.Options{})
	if err != nil {
		logger.Error(err, "failed to create k8s client")
		os.Exit(1)
	}

	serverOption, err := config.LoadRouterConfiguration(ctx, client, kclient.ObjectKey{
		Namespace: os.Getenv("NAMESPACE"),
		Name:      "hil-broker-controller",
	})
	if err != nil {
		logger.Error(err, "failed to load router configuration")
		os.Exit(1)
	}

	svc := service.RouterService{
		ServerOption: serverOption,
	}

	// Start blocks in Serve until ctx is cancelled by a signal, which stops
	// the gRPC server and lets Serve return cleanly.
	if err := svc.Start(ctx); err != nil {
		logger.Error(err, "failed to start router service")
		os.Exit(1)
	}
}
