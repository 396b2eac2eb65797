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
	"time"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"
)

var _ = Describe("Exporter Controller", func() {
	var exporter *hilbrokerv1alpha1.Exporter

	BeforeEach(func() {
		exporter = &hilbrokerv1alpha1.Exporter{
			ObjectMeta: metav1.ObjectMeta{
				Name:      "exporter-offline-timeout",
				Namespace: "default",
			},
		}
		createExporters(context.Background(), exporter)
	})

	AfterEach(func() {
		deleteExporters(context.Background(), exporter)
	})

	reconcileExporter := func(ctx context.Context, offlineTimeout time.Duration) reconcile.Result {
		reconciler := &ExporterReconciler{
			Client:         k8sClient,
			Scheme:         k8sClient.Scheme(),
			Signer:         testSigner,
			OfflineTimeout: offlineTimeout,
		}
		res, err := reconciler.Reconcile(ctx, reconcile.Request{
			NamespacedName: types.NamespacedName{Namespace: exporter.Namespace, Name: exporter.Name},
		})
		Expect(err).NotTo(HaveOccurred())
		return res
	}

	It("issues exactly one credential and marks Registered", func() {
		ctx := context.Background()
		reconcileExporter(ctx, 0)

		updated := getExporter(ctx, exporter.Name)
		Expect(updated.Status.Credential).NotTo(BeNil())
		Expect(meta.IsStatusConditionTrue(
			updated.Status.Conditions,
			string(hilbrokerv1alpha1.ExporterConditionTypeRegistered),
		)).To(BeTrue())

		credentialName := updated.Status.Credential.Name
		reconcileExporter(ctx, 0)
		again := getExporter(ctx, exporter.Name)
		Expect(again.Status.Credential.Name).To(Equal(credentialName))
	})

	It("leaves Online untouched when OfflineTimeout is disabled", func() {
		ctx := context.Background()
		setExporterOnlineConditions(ctx, exporter.Name, metav1.ConditionTrue)
		reconcileExporter(ctx, 0)

		updated := getExporter(ctx, exporter.Name)
		Expect(meta.IsStatusConditionTrue(
			updated.Status.Conditions,
			string(hilbrokerv1alpha1.ExporterConditionTypeOnline),
		)).To(BeTrue())
	})

	It("flips Online to False once OfflineTimeout elapses without a heartbeat", func() {
		ctx := context.Background()
		setExporterOnlineConditions(ctx, exporter.Name, metav1.ConditionTrue)

		updated := getExporter(ctx, exporter.Name)
		updated.Status.LastSeen = metav1.NewTime(time.Now().Add(-time.Hour))
		Expect(k8sClient.Status().Update(ctx, updated)).To(Succeed())

		reconcileExporter(ctx, time.Minute)

		final := getExporter(ctx, exporter.Name)
		Expect(meta.IsStatusConditionTrue(
			final.Status.Conditions,
			string(hilbrokerv1alpha1.ExporterConditionTypeOnline),
		)).To(BeFalse())
	})

	It("requeues for the remaining offline grace window when a heartbeat is recent", func() {
		ctx := context.Background()
		setExporterOnlineConditions(ctx, exporter.Name, metav1.ConditionTrue)

		updated := getExporter(ctx, exporter.Name)
		updated.Status.LastSeen = metav1.Now()
		Expect(k8sClient.Status().Update(ctx, updated)).To(Succeed())

		res := reconcileExporter(ctx, time.Minute)

		Expect(res.RequeueAfter).To(BeNumerically(">", 0))
		Expect(res.RequeueAfter).To(BeNumerically("<=", time.Minute))

		final := getExporter(ctx, exporter.Name)
		Expect(meta.IsStatusConditionTrue(
			final.Status.Conditions,
			string(hilbrokerv1alpha1.ExporterConditionTypeOnline),
		)).To(BeTrue())
	})
})
