package utils

import (
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	kclient "sigs.k8s.io/controller-runtime/pkg/client"
)

func TestParseObjectIdentifierRoundTrip(t *testing.T) {
	key := kclient.ObjectKey{Namespace: "lab", Name: "exporter-1"}

	parsed, err := ParseExporterIdentifier(UnparseExporterIdentifier(key))
	if err != nil {
		t.Fatalf("ParseExporterIdentifier: %v", err)
	}
	if *parsed != key {
		t.Fatalf("parsed = %v, want %v", parsed, key)
	}
}

func TestParseNamespaceIdentifier(t *testing.T) {
	namespace, err := ParseNamespaceIdentifier("namespaces/lab")
	if err != nil {
		t.Fatalf("ParseNamespaceIdentifier: %v", err)
	}
	if namespace != "lab" {
		t.Fatalf("namespace = %q, want %q", namespace, "lab")
	}
}

func TestParseObjectIdentifierRejectsMalformed(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"wrong segment count", "namespaces/lab/exporters"},
		{"empty namespace", "namespaces//exporters/foo"},
		{"empty name", "namespaces/lab/exporters/"},
		{"wrong prefix", "projects/lab/exporters/foo"},
		{"wrong kind", "namespaces/lab/leases/foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseExporterIdentifier(tt.identifier)
			if err == nil {
				t.Fatalf("expected %q to be rejected", tt.identifier)
			}
			if status.Code(err) != codes.InvalidArgument {
				t.Fatalf("code = %v, want InvalidArgument", status.Code(err))
			}
		})
	}
}
