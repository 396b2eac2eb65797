package v1alpha1

import (
	"fmt"
	"time"

	cpb "github.com/hil-broker/broker/internal/protocol/hilbroker/client/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
)

func exporterIdentifier(key types.NamespacedName) string {
	return fmt.Sprintf("namespaces/%s/exporters/%s", key.Namespace, key.Name)
}

func leaseIdentifier(key types.NamespacedName) string {
	return fmt.Sprintf("namespaces/%s/leases/%s", key.Namespace, key.Name)
}

// ToProtobuf projects an Exporter onto the client-facing resource shape.
func (e *Exporter) ToProtobuf() *cpb.Exporter {
	return &cpb.Exporter{
		Name:   exporterIdentifier(types.NamespacedName{Namespace: e.Namespace, Name: e.Name}),
		Labels: e.Labels,
	}
}

// ToProtobuf projects a page of Exporters, carrying over the continue token
// as the next page token.
func (l *ExporterList) ToProtobuf() *cpb.ListExportersResponse {
	var results []*cpb.Exporter
	for i := range l.Items {
		results = append(results, l.Items[i].ToProtobuf())
	}
	return &cpb.ListExportersResponse{
		Exporters:     results,
		NextPageToken: l.Continue,
	}
}

// ToProtobuf projects a Lease onto the client-facing resource shape.
func (l *Lease) ToProtobuf() *cpb.Lease {
	pb := &cpb.Lease{
		Name:         leaseIdentifier(types.NamespacedName{Namespace: l.Namespace, Name: l.Name}),
		Selector:     metav1.FormatLabelSelector(&l.Spec.Selector),
		DurationSecs: int64(l.Spec.Duration.Duration.Seconds()),
		Release:      l.Spec.Release,
	}

	switch {
	case l.Status.ExporterRef != nil:
		// The lease is bound: report the exporter it actually landed on.
		pb.ExporterName = l.Status.ExporterRef.Name
	case l.Spec.ExporterRef != nil:
		// Not bound yet, but the client pinned one explicitly: echo back what
		// was requested so a ListLeases/GetLease caller can tell a pending
		// pinned lease apart from a selector-only one.
		pb.ExporterName = l.Spec.ExporterRef.Name
	}
	if l.Spec.BeginTime != nil {
		pb.BeginTime = l.Spec.BeginTime.Unix()
	}
	if l.Spec.EndTime != nil {
		pb.EndTime = l.Spec.EndTime.Unix()
	}

	return pb
}

// LeaseFromProtobuf builds the desired Lease spec for a CreateLease or
// UpdateLease request. key names the object; clientRef is always derived
// from the authenticated caller, never the request body.
func LeaseFromProtobuf(pb *cpb.Lease, key types.NamespacedName, clientRef corev1.LocalObjectReference) (*Lease, error) {
	selector, err := metav1.ParseToLabelSelector(pb.Selector)
	if err != nil {
		return nil, fmt.Errorf("invalid lease selector %q: %w", pb.Selector, err)
	}

	lease := &Lease{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: key.Namespace,
			Name:      key.Name,
		},
		Spec: LeaseSpec{
			ClientRef: clientRef,
			Duration:  metav1.Duration{Duration: time.Duration(pb.DurationSecs) * time.Second},
			Selector:  *selector,
			Release:   pb.Release,
		},
	}

	if pb.BeginTime != 0 {
		t := metav1.NewTime(time.Unix(pb.BeginTime, 0))
		lease.Spec.BeginTime = &t
	}
	if pb.EndTime != 0 {
		t := metav1.NewTime(time.Unix(pb.EndTime, 0))
		lease.Spec.EndTime = &t
	}
	if pb.ExporterName != "" {
		lease.Spec.ExporterRef = &corev1.LocalObjectReference{Name: pb.ExporterName}
	}

	return lease, nil
}

// ReconcileLeaseTimeFields fills in whichever of beginTime/endTime is
// missing from the other plus duration, or validates that both agree with
// duration when both are already set.
func ReconcileLeaseTimeFields(beginTime, endTime **metav1.Time, duration *metav1.Duration) error {
	switch {
	case *beginTime != nil && *endTime != nil:
		expected := (*beginTime).Add(duration.Duration)
		if !expected.Equal((*endTime).Time) {
			return fmt.Errorf("beginTime + duration does not match endTime")
		}
	case *beginTime != nil && *endTime == nil:
		t := metav1.NewTime((*beginTime).Add(duration.Duration))
		*endTime = &t
	case *beginTime == nil && *endTime != nil:
		t := metav1.NewTime((*endTime).Add(-duration.Duration))
		*beginTime = &t
	}
	return nil
}
