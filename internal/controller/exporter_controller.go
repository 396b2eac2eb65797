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
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
	"github.com/hil-broker/broker/internal/oidc"
	"github.com/hil-broker/broker/internal/registry"
)

// ExporterReconciler reconciles a Exporter object
type ExporterReconciler struct {
	client.Client
	Scheme *runtime.Scheme
	Signer *oidc.Signer
	// OfflineTimeout is how long Listen() can go without a heartbeat before
	// Online flips to False. Zero disables the check (used by tests that
	// manage the Online condition directly).
	OfflineTimeout time.Duration
	// Registry, when set, is the shared Exporter Registry: deleting an
	// exporter resource must tear down its open Listen stream, not just its
	// stored state.
	Registry *registry.Exporters
}

// +kubebuilder:rbac:groups=hil-broker.dev,resources=exporters,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=hil-broker.dev,resources=exporters/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=hil-broker.dev,resources=exporters/finalizers,verbs=update
// +kubebuilder:rbac:groups=core,resources=secrets,verbs=get;list;watch;create;update;patch;delete

// Reconcile is part of the main kubernetes reconciliation loop which aims to
// move the current state of the cluster closer to the desired state.
// TODO(user): Modify the Reconcile function to compare the state specified by
// the Exporter object against the actual cluster state, and then
// perform operations to make the cluster state reflect the state specified by
// the user.
//
// For more details, check Reconcile and its Result here:
// - https://pkg.go.dev/sigs.k8s.io/controller-runtime@v0.18.2/pkg/reconcile
func (r *ExporterReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)

	var exporter hilbrokerv1alpha1.Exporter
	if err := r.Get(ctx, req.NamespacedName, &exporter); err != nil {
		if apierrors.IsNotFound(err) && r.Registry != nil {
			r.Registry.Evict(req.NamespacedName.String())
		}
		return ctrl.Result{}, client.IgnoreNotFound(
			fmt.Errorf("Reconcile: unable to get exporter: %w", err),
		)
	}

	original := client.MergeFrom(exporter.DeepCopy())

	if err := r.reconcileStatusCredential(ctx, &exporter); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.reconcileStatusRegistered(ctx, &exporter); err != nil {
		return ctrl.Result{}, err
	}

	result := r.reconcileStatusOnline(ctx, &exporter)

	if err := r.reconcileStatusLeaseRef(ctx, &exporter); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.reconcileStatusEndpoint(ctx, &exporter); err != nil {
		return ctrl.Result{}, err
	}

	if err := r.Status().Patch(ctx, &exporter, original); err != nil {
		return RequeueConflict(logger, ctrl.Result{}, err)
	}

	return result, nil
}

// reconcileStatusRegistered marks the exporter Registered once it has a
// credential: registration, in this broker's sense, means the exporter
// exists in the store with exactly one live credential.
func (r *ExporterReconciler) reconcileStatusRegistered(
	_ context.Context,
	exporter *hilbrokerv1alpha1.Exporter,
) error {
	if exporter.Status.Credential == nil {
		return nil
	}
	meta.SetStatusCondition(&exporter.Status.Conditions, metav1.Condition{
		Type:               string(hilbrokerv1alpha1.ExporterConditionTypeRegistered),
		Status:             metav1.ConditionTrue,
		Reason:             "CredentialIssued",
		Message:            "the exporter has a credential",
		ObservedGeneration: exporter.Generation,
	})
	return nil
}

// reconcileStatusOnline tracks the Listen() heartbeat: Online is True while
// LastSeen is within OfflineTimeout and decays to False once it is not,
// with a requeue for the moment that would happen. It is a no-op when
// OfflineTimeout is unset, letting LastSeen accumulate without ever
// touching Online.
func (r *ExporterReconciler) reconcileStatusOnline(ctx context.Context, exporter *hilbrokerv1alpha1.Exporter) ctrl.Result {
	if r.OfflineTimeout <= 0 {
		return ctrl.Result{}
	}

	logger := log.FromContext(ctx)
	deadline := exporter.Status.LastSeen.Add(r.OfflineTimeout)
	if exporter.Status.LastSeen.IsZero() {
		return ctrl.Result{}
	}

	if time.Now().After(deadline) {
		if meta.IsStatusConditionTrue(exporter.Status.Conditions, string(hilbrokerv1alpha1.ExporterConditionTypeOnline)) {
			logger.Info("marking exporter offline, no heartbeat within the configured timeout", "exporter", exporter.Name)
		}
		meta.SetStatusCondition(&exporter.Status.Conditions, metav1.Condition{
			Type:               string(hilbrokerv1alpha1.ExporterConditionTypeOnline),
			Status:             metav1.ConditionFalse,
			Reason:             "NoHeartbeat",
			Message:            "no Listen() heartbeat within the configured offline timeout",
			ObservedGeneration: exporter.Generation,
		})
		return ctrl.Result{}
	}

	meta.SetStatusCondition(&exporter.Status.Conditions, metav1.Condition{
		Type:               string(hilbrokerv1alpha1.ExporterConditionTypeOnline),
		Status:             metav1.ConditionTrue,
		Reason:             "Seen",
		Message:            "Listen() heartbeat within the configured offline timeout",
		ObservedGeneration: exporter.Generation,
	})
	return ctrl.Result{RequeueAfter: time.Until(deadline)}
}

func (r *ExporterReconciler) reconcileStatusCredential(
	ctx context.Context,
	exporter *hilbrokerv1alpha1.Exporter,
) error {
	secret, err := ensureSecret(ctx, client.ObjectKey{
		Name:      exporter.Name + "-exporter",
		Namespace: exporter.Namespace,
	}, r.Client, r.Scheme, r.Signer, exporter.InternalSubject(), exporter)
	if err != nil {
		return fmt.Errorf("reconcileStatusCredential: failed to prepare credential for exporter: %w", err)
	}
	exporter.Status.Credential = &corev1.LocalObjectReference{
		Name: secret.Name,
	}
	return nil
}

func (r *ExporterReconciler) reconcileStatusLeaseRef(
	ctx context.Context,
	exporter *hilbrokerv1alpha1.Exporter,
) error {
	var leases hilbrokerv1alpha1.LeaseList
	if err := r.List(
		ctx,
		&leases,
		client.InNamespace(exporter.Namespace),
		MatchingActiveLeases(),
	); err != nil {
		return fmt.Errorf("reconcileStatusLeaseRef: failed to list active leases: %w", err)
	}

	exporter.Status.LeaseRef = nil
	for _, lease := range leases.Items {
		if !lease.Status.Ended && lease.Status.ExporterRef != nil {
			if lease.Status.ExporterRef.Name == exporter.Name {
				exporter.Status.LeaseRef = &corev1.LocalObjectReference{
					Name: lease.Name,
				}
			}
		}
	}

	return nil
}

// nolint:unparam
func (r *ExporterReconciler) reconcileStatusEndpoint(
	ctx context.Context,
	exporter *hilbrokerv1alpha1.Exporter,
) error {
	logger := log.FromContext(ctx)

	endpoint := controllerEndpoint()
	if exporter.Status.Endpoint != endpoint {
		logger.Info("reconcileStatusEndpoint: updating controller endpoint")
		exporter.Status.Endpoint = endpoint
	}

	return nil
}

// SetupWithManager sets up the controller with the Manager.
func (r *ExporterReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&hilbrokerv1alpha1.Exporter{}).
		Owns(&hilbrokerv1alpha1.Lease{}).
		Owns(&corev1.Secret{}).
		Complete(r)
}
