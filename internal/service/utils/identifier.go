// Package utils parses and builds the AIP-style resource names
// ("namespaces/{ns}/{kind}/{name}") the client-facing service uses for
// Exporter, Lease, and Client resources.
package utils

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	kclient "sigs.k8s.io/controller-runtime/pkg/client"
)

// resourceSegments splits identifier on "/" and rejects anything that isn't
// exactly want segments, or that carries an empty segment anywhere (an empty
// namespace or name is never valid even though strings.Split happily
// produces one for "namespaces//exporters/foo").
func resourceSegments(identifier string, want int) ([]string, error) {
	segments := strings.Split(identifier, "/")
	if len(segments) != want {
		return nil, status.Errorf(
			codes.InvalidArgument,
			"resource name %q has %d segments, want %d",
			identifier, len(segments), want,
		)
	}
	for _, s := range segments {
		if s == "" {
			return nil, status.Errorf(codes.InvalidArgument, "resource name %q has an empty segment", identifier)
		}
	}
	return segments, nil
}

// ParseNamespaceIdentifier parses a "namespaces/{ns}" collection parent, the
// form ListExporters/ListLeases take in their Parent field.
func ParseNamespaceIdentifier(identifier string) (string, error) {
	segments, err := resourceSegments(identifier, 2)
	if err != nil {
		return "", err
	}
	if segments[0] != "namespaces" {
		return "", status.Errorf(codes.InvalidArgument, "resource name %q does not start with \"namespaces\"", identifier)
	}
	return segments[1], nil
}

// ParseObjectIdentifier parses a "namespaces/{ns}/{kind}/{name}" resource
// name, checking that the kind segment matches kind exactly.
func ParseObjectIdentifier(identifier string, kind string) (*kclient.ObjectKey, error) {
	segments, err := resourceSegments(identifier, 4)
	if err != nil {
		return nil, err
	}
	if segments[0] != "namespaces" {
		return nil, status.Errorf(codes.InvalidArgument, "resource name %q does not start with \"namespaces\"", identifier)
	}
	if segments[2] != kind {
		return nil, status.Errorf(
			codes.InvalidArgument,
			"resource name %q names a %q, want %q",
			identifier, segments[2], kind,
		)
	}
	return &kclient.ObjectKey{Namespace: segments[1], Name: segments[3]}, nil
}

// UnparseObjectIdentifier builds the resource name ParseObjectIdentifier(_, kind)
// would parse back into key.
func UnparseObjectIdentifier(key kclient.ObjectKey, kind string) string {
	return fmt.Sprintf("namespaces/%s/%s/%s", key.Namespace, kind, key.Name)
}

const (
	kindExporters = "exporters"
	kindLeases    = "leases"
	kindClients   = "clients"
)

func ParseExporterIdentifier(identifier string) (*kclient.ObjectKey, error) {
	return ParseObjectIdentifier(identifier, kindExporters)
}

func UnparseExporterIdentifier(key kclient.ObjectKey) string {
	return UnparseObjectIdentifier(key, kindExporters)
}

func ParseLeaseIdentifier(identifier string) (*kclient.ObjectKey, error) {
	return ParseObjectIdentifier(identifier, kindLeases)
}

func UnparseLeaseIdentifier(key kclient.ObjectKey) string {
	return UnparseObjectIdentifier(key, kindLeases)
}

func ParseClientIdentifier(identifier string) (*kclient.ObjectKey, error) {
	return ParseObjectIdentifier(identifier, kindClients)
}

func UnparseClientIdentifier(key kclient.ObjectKey) string {
	return UnparseObjectIdentifier(key, kindClients)
}
