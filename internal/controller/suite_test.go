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

package controller

import (
	"context"
	"testing"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
	"github.com/hil-broker/broker/internal/oidc"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	logf "sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

// These tests use Ginkgo (BDD-style Go testing framework). Refer to
// http://onsi.github.io/ginkgo/ to learn more about Ginkgo.

var (
	k8sClient  client.Client
	testSigner *oidc.Signer
)

func TestControllers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Controller Suite")
}

var _ = BeforeSuite(func() {
	logf.SetLogger(zap.New(zap.WriteTo(GinkgoWriter), zap.UseDevMode(true)))

	scheme := runtime.NewScheme()
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(hilbrokerv1alpha1.AddToScheme(scheme))

	k8sClient = fake.NewClientBuilder().
		WithScheme(scheme).
		WithStatusSubresource(
			&hilbrokerv1alpha1.Exporter{},
			&hilbrokerv1alpha1.Client{},
			&hilbrokerv1alpha1.Lease{},
		).
		Build()

	signer, err := oidc.NewSignerFromSeed([]byte("test-suite-seed"), "https://localhost:8085", "hil-broker")
	Expect(err).NotTo(HaveOccurred())
	testSigner = signer
})

func createExporters(ctx context.Context, exporters ...*hilbrokerv1alpha1.Exporter) {
	for _, exporter := range exporters {
		obj := exporter.DeepCopy()
		obj.ResourceVersion = ""
		Expect(k8sClient.Create(ctx, obj)).To(Succeed())
	}
}

func deleteExporters(ctx context.Context, exporters ...*hilbrokerv1alpha1.Exporter) {
	for _, exporter := range exporters {
		obj := &hilbrokerv1alpha1.Exporter{}
		if err := k8sClient.Get(ctx, client.ObjectKeyFromObject(exporter), obj); err != nil {
			continue
		}
		_ = k8sClient.Delete(ctx, obj)
	}
}
