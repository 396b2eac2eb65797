package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	apiserverv1beta1 "k8s.io/apiserver/pkg/apis/apiserver/v1beta1"
)

// +k8s:deepcopy-gen:interfaces=k8s.io/apimachinery/pkg/runtime.Object

// AuthenticationConfiguration provides versioned configuration for the union
// authenticator: the internal-prefix mapping plus zero or more external OIDC
// JWT verifiers.
type AuthenticationConfiguration struct {
	metav1.TypeMeta

	Internal Internal                            `json:"internal"`
	JWT      []apiserverv1beta1.JWTAuthenticator `json:"jwt"`
}

type Internal struct {
	Prefix string `json:"prefix"`
}

func init() {
	SchemeBuilder.Register(&AuthenticationConfiguration{})
}
