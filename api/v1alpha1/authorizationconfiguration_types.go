package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// AuthorizationConfiguration selects which authorizer backend maps
// authenticated subjects to broker resources. Type is either "Basic"
// (username lookup on the resource spec) or "CEL".
type AuthorizationConfiguration struct {
	metav1.TypeMeta
	Type string            `json:"type"`
	CEL  *CELConfiguration `json:"cel,omitempty"`
}

// CELConfiguration holds the expression evaluated against
// {self, user, prefix, kind} for every authorization decision.
type CELConfiguration struct {
	Expression string `json:"expression"`
}

func init() {
	SchemeBuilder.Register(&AuthorizationConfiguration{})
}
