package registry

import (
	"context"
	"testing"

	pb "github.com/hil-broker/broker/internal/protocol/hilbroker/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newEntry() (Entry, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	return Entry{Queue: make(chan *pb.ListenResponse, 1), Cancel: cancel}, ctx
}

func TestRegisterLookupUnregister(t *testing.T) {
	r := NewExporters()
	entry, _ := newEntry()

	if err := r.Register("exporter-1", entry); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len = %d, want 1", r.Len())
	}

	got, ok := r.Lookup("exporter-1")
	if !ok {
		t.Fatal("Lookup: expected entry to be found")
	}
	if got.Queue != entry.Queue {
		t.Fatal("Lookup returned a different queue than was registered")
	}

	r.Unregister("exporter-1")
	if r.Len() != 0 {
		t.Fatalf("Len after Unregister = %d, want 0", r.Len())
	}
	if _, ok := r.Lookup("exporter-1"); ok {
		t.Fatal("Lookup: expected entry to be gone after Unregister")
	}
}

// A second concurrent Listen for the same exporter subject is rejected with
// AlreadyExists, not silently overwritten or queued.
func TestRegisterRejectsDuplicateSubject(t *testing.T) {
	r := NewExporters()
	first, _ := newEntry()
	second, _ := newEntry()

	if err := r.Register("exporter-1", first); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	err := r.Register("exporter-1", second)
	if err == nil {
		t.Fatal("expected second Register for the same subject to fail")
	}
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("code = %v, want AlreadyExists", status.Code(err))
	}

	// the first entry must still be the one found, untouched by the rejected
	// second registration.
	got, ok := r.Lookup("exporter-1")
	if !ok || got.Queue != first.Queue {
		t.Fatal("duplicate Register must not disturb the existing entry")
	}
}

func TestRegisterAllowsReregistrationAfterUnregister(t *testing.T) {
	r := NewExporters()
	first, _ := newEntry()
	second, _ := newEntry()

	if err := r.Register("exporter-1", first); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	r.Unregister("exporter-1")

	if err := r.Register("exporter-1", second); err != nil {
		t.Fatalf("Register after Unregister: %v", err)
	}
	got, _ := r.Lookup("exporter-1")
	if got.Queue != second.Queue {
		t.Fatal("expected the re-registered entry to replace the old one")
	}
}

func TestEvictCancelsAndRemoves(t *testing.T) {
	r := NewExporters()
	entry, ctx := newEntry()

	if err := r.Register("exporter-1", entry); err != nil {
		t.Fatalf("Register: %v", err)
	}

	r.Evict("exporter-1")

	if _, ok := r.Lookup("exporter-1"); ok {
		t.Fatal("expected entry to be removed after Evict")
	}
	select {
	case <-ctx.Done():
	default:
		t.Fatal("expected Evict to cancel the entry's context")
	}
}

func TestEvictOfUnknownSubjectIsANoop(t *testing.T) {
	r := NewExporters()
	r.Evict("never-registered")
	if r.Len() != 0 {
		t.Fatalf("Len = %d, want 0", r.Len())
	}
}
