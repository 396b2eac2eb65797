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

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// LeaseSpec defines the desired state of Lease.
type LeaseSpec struct {
	// ClientRef is the client requesting the lease.
	ClientRef corev1.LocalObjectReference `json:"clientRef"`
	// Duration is the requested reservation length. A zero duration is only
	// valid together with a selector that matches at least one exporter;
	// see reconcileStatusExporterRef's Invalid transition.
	Duration metav1.Duration `json:"duration"`
	// Selector picks eligible exporters by label equality.
	Selector metav1.LabelSelector `json:"selector"`
	// ExporterRef, if set, pins the lease to one named exporter instead of
	// letting the selector choose among several. The selector, if also set, still applies
	// on top of the pinned exporter. A binding that names a nonexistent
	// exporter is Invalid when provisioning is disabled, Pending (waiting
	// for it to be created) otherwise.
	ExporterRef *corev1.LocalObjectReference `json:"exporterRef,omitempty"`
	// Release requests early termination. Idempotent: once true, the lease
	// becomes and remains terminal regardless of how many times it is set.
	Release bool `json:"release,omitempty"`
	// BeginTime is the client-requested start of the reservation window.
	// UpdateLease keeps it consistent with EndTime and Duration
	// (ReconcileLeaseTimeFields). The arbiter does not read it: a lease binds
	// as soon as an exporter is available, and Status.BeginTime records when.
	BeginTime *metav1.Time `json:"beginTime,omitempty"`
	// EndTime is the client-requested end of the reservation window, kept
	// consistent with BeginTime and Duration the same way. The arbiter does
	// not read it either: expiry follows Status.BeginTime+Duration.
	EndTime *metav1.Time `json:"endTime,omitempty"`
}

// LeaseStatus defines the observed state of Lease
type LeaseStatus struct {
	// BeginTime is set once, atomically with ExporterRef, when the lease
	// transitions Pending->Ready. It never changes afterwards.
	BeginTime *metav1.Time `json:"beginTime,omitempty"`
	// EndTime is BeginTime+Duration, or the early-release/expiry time.
	EndTime *metav1.Time `json:"endTime,omitempty"`
	// ExporterRef is the bound exporter. Retained after the lease ends, for
	// record purposes.
	ExporterRef *corev1.LocalObjectReference `json:"exporterRef,omitempty"`
	// Ended is true once the lease reaches any terminal state.
	Ended      bool                `json:"ended"`
	Conditions []metav1.Condition  `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
}

type LeaseConditionType string

const (
	LeaseConditionTypePending       LeaseConditionType = "Pending"
	LeaseConditionTypeReady         LeaseConditionType = "Ready"
	LeaseConditionTypeUnsatisfiable LeaseConditionType = "Unsatisfiable"
	LeaseConditionTypeInvalid       LeaseConditionType = "Invalid"
	LeaseConditionTypeExpired       LeaseConditionType = "Expired"
)

type LeaseLabel string

const (
	// LeaseLabelEnded marks a lease terminal so MatchingActiveLeases can
	// exclude it cheaply via a label selector rather than scanning status.
	LeaseLabelEnded      LeaseLabel = "hil-broker.dev/lease-ended"
	LeaseLabelEndedValue string     = "true"
)

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:JSONPath=".status.ended",name=Ended,type=boolean
// +kubebuilder:printcolumn:JSONPath=".spec.clientRef.name",name=Client,type=string
// +kubebuilder:printcolumn:JSONPath=".status.exporterRef.name",name=Exporter,type=string

// Lease is the Schema for the leases API
type Lease struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   LeaseSpec   `json:"spec,omitempty"`
	Status LeaseStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// LeaseList contains a list of Lease
type LeaseList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Lease `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Lease{}, &LeaseList{})
}
