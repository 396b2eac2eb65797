package v1alpha1

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// GetExporterSelector converts the spec label selector to a labels.Selector,
// surfacing a syntax error the same way reconcileStatusExporterRef's Invalid
// transition expects.
func (l *Lease) GetExporterSelector() (labels.Selector, error) {
	selector, err := metav1.LabelSelectorAsSelector(&l.Spec.Selector)
	if err != nil {
		return nil, fmt.Errorf("GetExporterSelector: %w", err)
	}
	return selector, nil
}

func (l *Lease) GetExporterName() string {
	if l.Status.ExporterRef == nil {
		return "(none)"
	}
	return l.Status.ExporterRef.Name
}

func (l *Lease) GetClientName() string {
	return l.Spec.ClientRef.Name
}

func (l *Lease) setCondition(condType LeaseConditionType, status metav1.ConditionStatus, reason, message string) {
	cond := metav1.Condition{
		Type:               string(condType),
		Status:             status,
		Reason:             reason,
		Message:            message,
		ObservedGeneration: l.Generation,
	}
	meta.SetStatusCondition(&l.Status.Conditions, cond)
}

// clearCondition flips condType to False only if it was previously set,
// keeping condition lists short for leases that never entered the state.
func (l *Lease) clearCondition(condType LeaseConditionType, reason, message string) {
	if meta.FindStatusCondition(l.Status.Conditions, string(condType)) == nil {
		return
	}
	l.setCondition(condType, metav1.ConditionFalse, reason, message)
}

// SetStatusPending marks the lease Pending: a selector matches at least one
// exporter, but none is currently available to bind.
func (l *Lease) SetStatusPending(reason, format string, args ...any) {
	l.setCondition(LeaseConditionTypePending, metav1.ConditionTrue, reason, fmt.Sprintf(format, args...))
	l.setCondition(LeaseConditionTypeReady, metav1.ConditionFalse, reason, "not yet ready")
	l.clearCondition(LeaseConditionTypeUnsatisfiable, reason, "a matching exporter exists")
}

// SetStatusReady marks Pending=false, Ready=<ready>.
func (l *Lease) SetStatusReady(ready bool, reason, message string) {
	status := metav1.ConditionFalse
	if ready {
		status = metav1.ConditionTrue
	}
	l.setCondition(LeaseConditionTypeReady, status, reason, message)
	l.setCondition(LeaseConditionTypePending, metav1.ConditionFalse, reason, "no longer pending")
	l.clearCondition(LeaseConditionTypeUnsatisfiable, reason, "a matching exporter exists")
}

// SetStatusUnsatisfiable marks the lease Unsatisfiable: the selector matches
// no existing exporter at all (as opposed to Pending, where it matches some
// that are merely unavailable right now). Not terminal: the arbiter retries
// on every exporter create/update, and the lease leaves this state the
// moment a matching exporter appears.
func (l *Lease) SetStatusUnsatisfiable(reason, format string, args ...any) {
	l.setCondition(LeaseConditionTypeUnsatisfiable, metav1.ConditionTrue, reason, fmt.Sprintf(format, args...))
	l.setCondition(LeaseConditionTypeReady, metav1.ConditionFalse, reason, "unsatisfiable")
	l.setCondition(LeaseConditionTypePending, metav1.ConditionFalse, reason, "no exporter matches the selector")
}

// SetStatusInvalid marks the lease Invalid: malformed selector, no matching
// exporter at request time with a non-positive duration, or an explicit
// exporter binding that names a missing exporter (provisioning disabled) or
// one the selector does not match. reconcileStatusEnded then ends the lease.
func (l *Lease) SetStatusInvalid(reason, message string) {
	l.setCondition(LeaseConditionTypeInvalid, metav1.ConditionTrue, reason, message)
	l.setCondition(LeaseConditionTypeReady, metav1.ConditionFalse, reason, "invalid")
}

// Release transitions a Ready lease to terminal because the client asked for
// early release. Idempotent: it never resurrects a terminated lease.
func (l *Lease) Release(ctx context.Context) {
	logger := log.FromContext(ctx)
	logger.Info("releasing lease", "lease", l.Name, "exporter", l.GetExporterName(), "client", l.GetClientName())
	now := metav1.Now()
	l.setCondition(LeaseConditionTypeReady, metav1.ConditionFalse, "Released", "the client requested early release")
	l.Status.Ended = true
	l.Status.EndTime = &now
}

// Expire transitions a Ready lease to terminal because BeginTime+Duration
// has elapsed. EndTime
// stays as written at binding; only a lease that somehow never had one
// recorded gets stamped here.
func (l *Lease) Expire(ctx context.Context) {
	logger := log.FromContext(ctx)
	logger.Info("expiring lease", "lease", l.Name, "exporter", l.GetExporterName(), "client", l.GetClientName())
	l.setCondition(LeaseConditionTypeReady, metav1.ConditionFalse, "Expired", "the lease duration has elapsed")
	l.setCondition(LeaseConditionTypeExpired, metav1.ConditionTrue, "Expired", "the lease duration has elapsed")
	l.Status.Ended = true
	if l.Status.EndTime == nil {
		l.Status.EndTime = &metav1.Time{Time: time.Now()}
	}
}

// Evict transitions a Ready lease to terminal because its bound exporter
// stopped being usable out from under it: either the exporter was deleted,
// or it has stayed Online=False past the configured grace window: a Ready
// lease whose exporter disappears or goes dark must not stay Ready forever.
func (l *Lease) Evict(ctx context.Context, reason, message string) {
	logger := log.FromContext(ctx)
	logger.Info("evicting lease", "lease", l.Name, "exporter", l.GetExporterName(), "client", l.GetClientName(), "reason", reason)
	now := time.Now()
	l.setCondition(LeaseConditionTypeReady, metav1.ConditionFalse, reason, message)
	l.Status.Ended = true
	l.Status.EndTime = &metav1.Time{Time: now}
}
