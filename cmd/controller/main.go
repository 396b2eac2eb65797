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
	"crypto/tls"
	"encoding/pem"
	"flag"
	"net"
	"os"

	// Import all Kubernetes client auth plugins (e.g. Azure, GCP, OIDC, etc.)
	// to ensure that exec-entrypoint and run can make use of them.
	apiserverinstall "k8s.io/apiserver/pkg/apis/apiserver/install"
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
	"github.com/hil-broker/broker/internal/authentication"
	"github.com/hil-broker/broker/internal/authorization"
	"github.com/hil-broker/broker/internal/config"
	"github.com/hil-broker/broker/internal/controller"
	"github.com/hil-broker/broker/internal/oidc"
	"github.com/hil-broker/broker/internal/registry"
	"github.com/hil-broker/broker/internal/service"

	_ "google.golang.org/grpc/encoding/gzip"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")

	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

const (
	namespaceFile = "/var/run/secrets/kubernetes.io/serviceaccount/namespace"
)

// getWatchNamespace returns the namespace the controller should watch. The
// broker is single-namespace only: NAMESPACE wins if set, otherwise fall
// back to the namespace file every pod gets from its service account.
func getWatchNamespace() string {
	if ns := os.Getenv("NAMESPACE"); ns != "" {
		setupLog.Info("using namespace from NAMESPACE environment variable", "namespace", ns)
		return ns
	}

	if ns, err := os.ReadFile(namespaceFile); err == nil {
		namespace := string(ns)
		if namespace != "" {
			setupLog.Info("auto-detected namespace from service account", "namespace", namespace)
			return namespace
		}
	}

	return ""
}

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(hilbrokerv1alpha1.AddToScheme(scheme))
	apiserverinstall.Install(scheme)
}

func main() {
	var metricsAddr string
	var enableLeaderElection bool
	var probeAddr string
	var secureMetrics bool
	var enableHTTP2 bool
	flag.StringVar(&metricsAddr, "metrics-bind-address", "0", "The address the metric endpoint binds to. "+
		"Use the port :8080. If not set, it will be 0 in order to disable the metrics server")
	flag.StringVar(&probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	flag.BoolVar(&enableLeaderElection, "leader-elect", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	flag.BoolVar(&secureMetrics, "metrics-secure", false,
		"If set the metrics endpoint is served securely")
	flag.BoolVar(&enableHTTP2, "enable-http2", false,
		"If set, HTTP/2 will be enabled for the metrics and webhook servers")
	opts := zap.Options{
		Development: true,
	}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	setupLog.Info("hil-broker controller starting",
		"version", version,
		"gitCommit", gitCommit,
		"buildDate", buildDate,
	)

	// HTTP/2 is disabled by default to avoid the Stream Cancellation and
	// Rapid Reset CVEs:
	// - https://github.com/advisories/GHSA-qppj-fm5r-hxr3
	// - https://github.com/advisories/GHSA-4374-p667-p6c8
	disableHTTP2 := func(c *tls.Config) {
		setupLog.Info("disabling http/2")
		c.NextProtos = []string{"http/1.1"}
	}

	tlsOpts := []func(*tls.Config){}
	if !enableHTTP2 {
		tlsOpts = append(tlsOpts, disableHTTP2)
	}

	webhookServer := webhook.NewServer(webhook.Options{
		TLSOpts: tlsOpts,
	})

	watchNamespace := getWatchNamespace()

	mgrOptions := ctrl.Options{
		Scheme: scheme,
		Metrics: metricsserver.Options{
			BindAddress:   metricsAddr,
			SecureServing: secureMetrics,
			TLSOpts:       tlsOpts,
		},
		WebhookServer:          webhookServer,
		HealthProbeBindAddress: probeAddr,
		LeaderElection:         enableLeaderElection,
		LeaderElectionID:       "c6a2e5db.hil-broker.dev",
	}

	if watchNamespace != "" {
		mgrOptions.LeaderElectionNamespace = watchNamespace
		mgrOptions.Cache = cache.Options{
			DefaultNamespaces: map[string]cache.Config{
				watchNamespace: {},
			},
		}
	} else {
		setupLog.Error(nil, "the hil-broker controller can only be configured to work on a single namespace")
		os.Exit(1)
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), mgrOptions)
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	oidcCert, err := service.NewSelfSignedCertificate("hil-broker oidc", []string{"localhost"}, []net.IP{})
	if err != nil {
		setupLog.Error(err, "unable to generate certificate for internal oidc provider")
		os.Exit(1)
	}

	oidcSigner, err := oidc.NewSignerFromSeed(
		[]byte(os.Getenv("CONTROLLER_KEY")),
		"https://localhost:8085",
		"hil-broker",
	)
	if err != nil {
		setupLog.Error(err, "unable to create internal oidc signer")
		os.Exit(1)
	}

	authenticator, prefix, router, serverOptions, provisioning, exporterOptions, leaseOptions, err := config.LoadConfiguration(
		context.Background(),
		mgr.GetAPIReader(),
		mgr.GetScheme(),
		client.ObjectKey{
			Namespace: os.Getenv("NAMESPACE"),
			Name:      "hil-broker-controller",
		},
		oidcSigner,
		string(pem.EncodeToMemory(&pem.Block{
			Type:  "CERTIFICATE",
			Bytes: oidcCert.Certificate[0],
		})),
	)
	if err != nil {
		setupLog.Error(err, "unable to load configuration")
		os.Exit(1)
	}

	exporters := registry.NewExporters()

	watchClient, err := client.NewWithWatch(mgr.GetConfig(), client.Options{Scheme: mgr.GetScheme()})
	if err != nil {
		setupLog.Error(err, "unable to create client with watch", "service", "Controller")
		os.Exit(1)
	}

	authz, err := config.LoadAuthorizer(
		context.Background(),
		mgr.GetAPIReader(),
		mgr.GetScheme(),
		client.ObjectKey{
			Namespace: os.Getenv("NAMESPACE"),
			Name:      "hil-broker-controller",
		},
		watchClient,
		prefix,
		provisioning.Enabled,
	)
	if err != nil {
		setupLog.Error(err, "unable to load authorizer configuration")
		os.Exit(1)
	}

	if err = (&controller.ExporterReconciler{
		Client:         mgr.GetClient(),
		Scheme:         mgr.GetScheme(),
		Signer:         oidcSigner,
		OfflineTimeout: exporterOptions.GetOfflineTimeout(),
		Registry:       exporters,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Exporter")
		os.Exit(1)
	}
	if err = (&controller.ClientReconciler{
		Client: mgr.GetClient(),
		Scheme: mgr.GetScheme(),
		Signer: oidcSigner,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Client")
		os.Exit(1)
	}
	if err = (&controller.LeaseReconciler{
		Client:              mgr.GetClient(),
		Scheme:              mgr.GetScheme(),
		ProvisioningEnabled: provisioning.Enabled,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", "Lease")
		os.Exit(1)
	}

	if err = (&service.ControllerService{
		Client: watchClient,
		Scheme: mgr.GetScheme(),
		Authn:  authentication.NewBearerTokenAuthenticator(authenticator),
		Authz:  authz,
		Attr: authorization.NewMetadataAttributesGetter(authorization.MetadataAttributesGetterConfig{
			NamespaceKey: "hil-broker-namespace",
			ResourceKey:  "hil-broker-kind",
			NameKey:      "hil-broker-name",
		}),
		Router:           router,
		ServerOption:     serverOptions,
		Exporters:        exporters,
		MaxLeaseDuration: leaseOptions.GetMaxDuration(),
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create service", "service", "Controller")
		os.Exit(1)
	}

	if err = (&service.OIDCService{
		Signer: oidcSigner,
		Cert:   oidcCert,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create service", "service", "OIDC")
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
