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

// ExporterSpec defines the desired state of Exporter. The label map itself
// lives on ObjectMeta.Labels (so it can be used as a selector target
// directly); Username is the only spec field of its own.
type ExporterSpec struct {
	// Username overrides the default internal-subject username used to match
	// this Exporter against an authenticated OIDC identity.
	Username *string `json:"username,omitempty"`
}

// ExporterStatus defines the observed state of Exporter
type ExporterStatus struct {
	Conditions []metav1.Condition           `json:"conditions,omitempty" patchStrategy:"merge" patchMergeKey:"type"`
	Credential *corev1.LocalObjectReference `json:"credential,omitempty"`
	Devices    []Device                     `json:"devices,omitempty"`
	LeaseRef   *corev1.LocalObjectReference `json:"leaseRef,omitempty"`
	LastSeen   metav1.Time                  `json:"lastSeen,omitempty"`
	Endpoint   string                       `json:"endpoint,omitempty"`
}

type ExporterConditionType string

const (
	ExporterConditionTypeRegistered ExporterConditionType = "Registered"
	ExporterConditionTypeOnline     ExporterConditionType = "Online"
)

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="Registered",type="string",JSONPath=".status.conditions[?(@.type=='Registered')].status"
// +kubebuilder:printcolumn:name="Online",type="string",JSONPath=".status.conditions[?(@.type=='Online')].status"

// Exporter is the Schema for the exporters API. An Exporter represents one
// process attached to a physical or virtual device under test; it registers
// itself, opens a long-lived Listen stream, and is matched against Lease
// selectors by label.
type Exporter struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ExporterSpec   `json:"spec,omitempty"`
	Status ExporterStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ExporterList contains a list of Exporter
type ExporterList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Exporter `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Exporter{}, &ExporterList{})
}
