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
	"slices"
	"strings"
	"time"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	"sigs.k8s.io/controller-runtime/pkg/handler"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"
)

// offlineLeaseGrace is how long a Ready lease tolerates its bound exporter
// reporting Online=False before the lease is evicted. This is intentionally
// a constant rather than wired through config: it is a property of the
// arbiter's own bookkeeping, not a per-deployment tuning knob like the
// exporter status reporter's offline timeout.
const offlineLeaseGrace = 30 * time.Second

// LeaseReconciler reconciles a Lease object: it is the arbiter that matches
// a Lease's selector against Exporters and binds the first available one.
type LeaseReconciler struct {
	client.Client
	Scheme *runtime.Scheme
	// ProvisioningEnabled governs how an explicit exporter binding
	// (Spec.ExporterRef) that names a nonexistent exporter is treated: Invalid
	// when provisioning is disabled, Pending (waiting for it to show up)
	// otherwise. Mirrors internal/config.Provisioning.Enabled.
	ProvisioningEnabled bool
}

// +kubebuilder:rbac:groups=hil-broker.dev,resources=leases,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=hil-broker.dev,resources=leases/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=hil-broker.dev,resources=leases/finalizers,verbs=update
// +kubebuilder:rbac:groups=hil-broker.dev,resources=exporters,verbs=get;list;watch

func (r *LeaseReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx)
	ctx = ctrl.LoggerInto(ctx, logger)

	var lease hilbrokerv1alpha1.Lease
	if err := r.Get(ctx, req.NamespacedName, &lease); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(
			fmt.Errorf("Reconcile: unable to get lease: %w", err),
		)
	}

	var result ctrl.Result
	if err := r.reconcileStatusExporterRef(ctx, &result, &lease); err != nil {
		return result, err
	}

	if err := r.reconcileStatusBeginTime(ctx, &lease); err != nil {
		return result, err
	}

	if err := r.reconcileStatusEnded(ctx, &result, &lease); err != nil {
		return result, err
	}

	if err := r.Status().Update(ctx, &lease); err != nil {
		return RequeueConflict(logger, result, err)
	}

	if lease.Labels == nil {
		lease.Labels = make(map[string]string)
	}
	if lease.Status.Ended {
		lease.Labels[string(hilbrokerv1alpha1.LeaseLabelEnded)] = hilbrokerv1alpha1.LeaseLabelEndedValue
	}

	if lease.Status.ExporterRef != nil {
		var exporter hilbrokerv1alpha1.Exporter
		if err := r.Get(ctx, types.NamespacedName{
			Namespace: lease.Namespace,
			Name:      lease.Status.ExporterRef.Name,
		}, &exporter); err == nil {
			if err := controllerutil.SetControllerReference(&exporter, &lease, r.Scheme); err != nil {
				return result, fmt.Errorf("Reconcile: failed to update lease controller reference: %w", err)
			}
		} else if !errors.IsNotFound(err) {
			return result, err
		}
	}

	if err := r.Update(ctx, &lease); err != nil {
		return RequeueConflict(logger, result, fmt.Errorf("Reconcile: failed to update lease metadata: %w", err))
	}

	return result, nil
}

// reconcileStatusEnded also manages EndTime and LeaseConditionTypeReady: it
// is the single place a lease transitions into its terminal state, whether
// by early release, natural expiry, or the bound exporter going away.
// nolint:unparam
func (r *LeaseReconciler) reconcileStatusEnded(
	ctx context.Context,
	result *ctrl.Result,
	lease *hilbrokerv1alpha1.Lease,
) error {
	now := time.Now()
	if lease.Status.Ended {
		return nil
	}

	if meta.IsStatusConditionTrue(lease.Status.Conditions, string(hilbrokerv1alpha1.LeaseConditionTypeInvalid)) {
		lease.Status.Ended = true
		lease.Status.EndTime = &metav1.Time{Time: now}
		return nil
	}

	if lease.Spec.Release {
		lease.Release(ctx)
		return nil
	}

	if lease.Status.ExporterRef != nil {
		evicted, err := r.reconcileEviction(ctx, lease)
		if err != nil {
			return err
		}
		if evicted {
			return nil
		}
	}

	if lease.Status.BeginTime != nil {
		// EndTime only ever advances, and only while the lease is still
		// active: extending spec.duration moves it, shrinking does not.
		expiration := lease.Status.BeginTime.Add(lease.Spec.Duration.Duration)
		if lease.Status.EndTime == nil || lease.Status.EndTime.Time.Before(expiration) {
			lease.Status.EndTime = &metav1.Time{Time: expiration}
		}
		if lease.Status.EndTime.Time.Before(now) {
			lease.Expire(ctx)
			return nil
		}
		result.RequeueAfter = lease.Status.EndTime.Sub(now)
		return nil
	}

	return nil
}

// reconcileEviction evicts a Ready lease whose bound exporter was deleted,
// or has stayed Online=False for longer than offlineLeaseGrace.
func (r *LeaseReconciler) reconcileEviction(ctx context.Context, lease *hilbrokerv1alpha1.Lease) (bool, error) {
	var exporter hilbrokerv1alpha1.Exporter
	err := r.Get(ctx, types.NamespacedName{
		Namespace: lease.Namespace,
		Name:      lease.Status.ExporterRef.Name,
	}, &exporter)
	if errors.IsNotFound(err) {
		lease.Evict(ctx, "ExporterDeleted", "the bound exporter was deleted")
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("reconcileEviction: failed to get bound exporter: %w", err)
	}

	online := meta.FindStatusCondition(exporter.Status.Conditions, string(hilbrokerv1alpha1.ExporterConditionTypeOnline))
	if online == nil || online.Status != metav1.ConditionFalse {
		return false, nil
	}

	if time.Since(online.LastTransitionTime.Time) > offlineLeaseGrace {
		lease.Evict(ctx, "ExporterOffline", "the bound exporter has been offline past the grace window")
		return true, nil
	}

	return false, nil
}

// nolint:unparam
func (r *LeaseReconciler) reconcileStatusBeginTime(
	ctx context.Context,
	lease *hilbrokerv1alpha1.Lease,
) error {
	logger := log.FromContext(ctx)

	now := time.Now()
	if lease.Status.BeginTime == nil && lease.Status.ExporterRef != nil {
		logger.Info("updating begin time for lease", "lease", lease.Name, "exporter", lease.GetExporterName(), "client", lease.GetClientName())
		lease.SetStatusReady(true, "Ready", "an exporter has been acquired for the client")
		lease.Status.BeginTime = &metav1.Time{Time: now}
		lease.Status.EndTime = &metav1.Time{Time: now.Add(lease.Spec.Duration.Duration)}
	}

	return nil
}

// reconcileStatusExporterRef also manages LeaseConditionTypeUnsatisfiable
// and LeaseConditionTypePending. It matches the lease's selector against
// Exporters, keeps only those reporting online, excludes exporters already
// bound to another active lease, and deterministically picks the
// lexicographically first remaining name.
func (r *LeaseReconciler) reconcileStatusExporterRef(
	ctx context.Context,
	result *ctrl.Result,
	lease *hilbrokerv1alpha1.Lease,
) error {
	logger := log.FromContext(ctx)

	if lease.Status.Ended || lease.Status.ExporterRef != nil {
		return nil
	}

	logger.Info("looking for a matching exporter for lease", "lease", lease.Name, "client", lease.GetClientName(), "selector", lease.Spec.Selector)

	selector, err := lease.GetExporterSelector()
	if err != nil {
		lease.SetStatusInvalid("InvalidSelector", err.Error())
		return nil
	}

	if lease.Spec.ExporterRef != nil {
		return r.reconcileStatusExporterRefExplicit(ctx, result, lease, selector)
	}

	matchingExporters, err := r.ListMatchingExporters(ctx, lease, selector)
	if err != nil {
		return fmt.Errorf("reconcileStatusExporterRef: failed to list matching exporters: %w", err)
	}

	if len(matchingExporters.Items) == 0 {
		// zero matching exporters at request time with a non-positive
		// duration is rejected outright rather than left to retry forever.
		if lease.Spec.Duration.Duration <= 0 {
			lease.SetStatusInvalid("NoMatch", "no exporter matches the selector and the requested duration is non-positive")
			return nil
		}
		lease.SetStatusUnsatisfiable("NoMatch", "no exporter matches the selector %s", lease.Spec.Selector.String())
		return nil
	}

	onlineExporters := filterOutOfflineExporters(matchingExporters.Items)
	if len(onlineExporters) == 0 {
		// the selector matches *existing* exporters, just none currently
		// available - that is Pending, not Unsatisfiable, and must retry once
		// one of them comes back online.
		lease.SetStatusPending(
			"Offline",
			"%d exporters match the selector, but none are online",
			len(matchingExporters.Items),
		)
		result.RequeueAfter = time.Second
		return nil
	}

	activeLeases, err := r.ListActiveLeases(ctx, lease.Namespace)
	if err != nil {
		return fmt.Errorf("reconcileStatusExporterRef: failed to list active leases: %w", err)
	}

	availableExporters := filterOutLeasedExporters(onlineExporters, activeLeases.Items)
	if len(availableExporters) == 0 {
		lease.SetStatusPending(
			"NotAvailable",
			"%d matching exporters are online, but all are already leased",
			len(onlineExporters),
		)
		result.RequeueAfter = time.Second
		return nil
	}

	slices.SortFunc(availableExporters, func(a, b hilbrokerv1alpha1.Exporter) int {
		return strings.Compare(a.Name, b.Name)
	})

	selected := availableExporters[0]
	lease.Status.ExporterRef = &corev1.LocalObjectReference{Name: selected.Name}

	return nil
}

// reconcileStatusExporterRefExplicit handles a lease that pins itself to one
// named exporter instead of
// letting the selector pick among several. The selector, if also set, still
// has to match the pinned exporter's labels.
func (r *LeaseReconciler) reconcileStatusExporterRefExplicit(
	ctx context.Context,
	result *ctrl.Result,
	lease *hilbrokerv1alpha1.Lease,
	selector labels.Selector,
) error {
	var exporter hilbrokerv1alpha1.Exporter
	err := r.Get(ctx, types.NamespacedName{
		Namespace: lease.Namespace,
		Name:      lease.Spec.ExporterRef.Name,
	}, &exporter)
	if errors.IsNotFound(err) {
		if !r.ProvisioningEnabled {
			lease.SetStatusInvalid(
				"ExporterNotFound",
				fmt.Sprintf("explicitly bound exporter %q does not exist and provisioning is disabled", lease.Spec.ExporterRef.Name),
			)
			return nil
		}
		lease.SetStatusPending(
			"ExporterNotFound",
			"waiting for explicitly bound exporter %q to be created",
			lease.Spec.ExporterRef.Name,
		)
		result.RequeueAfter = time.Second
		return nil
	}
	if err != nil {
		return fmt.Errorf("reconcileStatusExporterRefExplicit: failed to get bound exporter: %w", err)
	}

	if selector != nil && !selector.Empty() && !selector.Matches(labels.Set(exporter.Labels)) {
		lease.SetStatusInvalid(
			"SelectorMismatch",
			fmt.Sprintf("explicitly bound exporter %q does not match the lease selector %s", exporter.Name, lease.Spec.Selector.String()),
		)
		return nil
	}

	online := filterOutOfflineExporters([]hilbrokerv1alpha1.Exporter{exporter})
	if len(online) == 0 {
		lease.SetStatusPending("Offline", "explicitly bound exporter %q is not online", exporter.Name)
		result.RequeueAfter = time.Second
		return nil
	}

	activeLeases, err := r.ListActiveLeases(ctx, lease.Namespace)
	if err != nil {
		return fmt.Errorf("reconcileStatusExporterRefExplicit: failed to list active leases: %w", err)
	}

	available := filterOutLeasedExporters(online, activeLeases.Items)
	if len(available) == 0 {
		lease.SetStatusPending("NotAvailable", "explicitly bound exporter %q is already leased", exporter.Name)
		result.RequeueAfter = time.Second
		return nil
	}

	lease.Status.ExporterRef = &corev1.LocalObjectReference{Name: exporter.Name}
	return nil
}

// ListMatchingExporters returns the exporters in the lease's namespace whose
// labels satisfy selector.
func (r *LeaseReconciler) ListMatchingExporters(
	ctx context.Context,
	lease *hilbrokerv1alpha1.Lease,
	selector labels.Selector,
) (*hilbrokerv1alpha1.ExporterList, error) {
	var matchingExporters hilbrokerv1alpha1.ExporterList
	if err := r.List(
		ctx,
		&matchingExporters,
		client.InNamespace(lease.Namespace),
		client.MatchingLabelsSelector{Selector: selector},
	); err != nil {
		return nil, fmt.Errorf("ListMatchingExporters: failed to list exporters matching selector: %w", err)
	}
	return &matchingExporters, nil
}

// ListActiveLeases returns the still-open leases in namespace.
func (r *LeaseReconciler) ListActiveLeases(ctx context.Context, namespace string) (*hilbrokerv1alpha1.LeaseList, error) {
	var activeLeases hilbrokerv1alpha1.LeaseList
	if err := r.List(
		ctx,
		&activeLeases,
		client.InNamespace(namespace),
		MatchingActiveLeases(),
	); err != nil {
		return nil, err
	}
	return &activeLeases, nil
}

// filterOutOfflineExporters keeps only exporters with Registered=True and
// Online=True; offline exporters are ineligible for binding.
func filterOutOfflineExporters(exporters []hilbrokerv1alpha1.Exporter) []hilbrokerv1alpha1.Exporter {
	return slices.DeleteFunc(slices.Clone(exporters), func(exporter hilbrokerv1alpha1.Exporter) bool {
		return !meta.IsStatusConditionTrue(exporter.Status.Conditions, string(hilbrokerv1alpha1.ExporterConditionTypeRegistered)) ||
			!meta.IsStatusConditionTrue(exporter.Status.Conditions, string(hilbrokerv1alpha1.ExporterConditionTypeOnline))
	})
}

// filterOutLeasedExporters keeps only exporters with no currently active
// lease bound to them.
func filterOutLeasedExporters(
	exporters []hilbrokerv1alpha1.Exporter,
	activeLeases []hilbrokerv1alpha1.Lease,
) []hilbrokerv1alpha1.Exporter {
	leased := make(map[string]bool, len(activeLeases))
	for _, lease := range activeLeases {
		if lease.Status.ExporterRef != nil {
			leased[lease.Status.ExporterRef.Name] = true
		}
	}

	return slices.DeleteFunc(slices.Clone(exporters), func(exporter hilbrokerv1alpha1.Exporter) bool {
		return leased[exporter.Name]
	})
}

// SetupWithManager sets up the controller with the Manager. Exporter events
// re-enqueue every open lease in the namespace: a Pending or Unsatisfiable
// lease is retried whenever an exporter appears, changes labels, or flips
// its conditions; Pending leases are additionally requeued every second.
func (r *LeaseReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&hilbrokerv1alpha1.Lease{}).
		Watches(
			&hilbrokerv1alpha1.Exporter{},
			handler.EnqueueRequestsFromMapFunc(r.openLeasesForExporter),
		).
		Complete(r)
}

// openLeasesForExporter maps an exporter event to the not-yet-ended leases
// in its namespace.
func (r *LeaseReconciler) openLeasesForExporter(ctx context.Context, obj client.Object) []reconcile.Request {
	var leases hilbrokerv1alpha1.LeaseList
	if err := r.List(
		ctx,
		&leases,
		client.InNamespace(obj.GetNamespace()),
		MatchingActiveLeases(),
	); err != nil {
		log.FromContext(ctx).Error(err, "openLeasesForExporter: failed to list leases")
		return nil
	}

	requests := make([]reconcile.Request, 0, len(leases.Items))
	for _, lease := range leases.Items {
		requests = append(requests, reconcile.Request{
			NamespacedName: types.NamespacedName{Namespace: lease.Namespace, Name: lease.Name},
		})
	}
	return requests
}
