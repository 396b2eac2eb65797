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

// Package registry holds the Exporter Registry: the controller process's
// in-memory index of exporters with an open Listen stream.
// It exists so Dial can find the one live stream to push a router token
// into, and so a second concurrent Listen for the same subject is rejected
// rather than silently racing the first.
package registry

import (
	"context"
	"sync"

	pb "github.com/hil-broker/broker/internal/protocol/hilbroker/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Entry is one exporter's live Listen registration: a buffered queue the
// Listen handler drains and forwards over the stream, and the cancel func
// that tears the stream's context down from outside its own goroutine.
type Entry struct {
	Queue  chan *pb.ListenResponse
	Cancel context.CancelFunc
}

// Exporters is the map of currently-connected exporters, keyed by the
// exporter's namespaced name so deletion of the resource can evict the
// stream without knowing its UID. Reads (Dial's Lookup) vastly outnumber
// writes (Register/Unregister on Listen open/close), so lookups take the
// read lock.
type Exporters struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewExporters returns an empty registry.
func NewExporters() *Exporters {
	return &Exporters{entries: make(map[string]Entry)}
}

// Register adds subject's entry to the index. It refuses a second
// concurrent registration for the same subject with AlreadyExists: the
// exporter must call Bye (which evicts the stale entry) before it can
// Listen again.
func (r *Exporters) Register(subject string, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[subject]; exists {
		return status.Errorf(codes.AlreadyExists, "exporter %q already has a Listen stream open", subject)
	}
	r.entries[subject] = entry
	return nil
}

// Lookup returns the entry registered for subject, if any.
func (r *Exporters) Lookup(subject string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[subject]
	return entry, ok
}

// Unregister removes subject from the index without touching its cancel
// func. It is idempotent, and is what a Listen handler calls on its own way
// out (the context is already ending by then).
func (r *Exporters) Unregister(subject string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, subject)
}

// Evict forcibly cancels and removes subject's entry, if present. Used by
// Bye and by exporter deletion, where the stream must be torn down from
// outside its own handler goroutine.
func (r *Exporters) Evict(subject string) {
	r.mu.Lock()
	entry, ok := r.entries[subject]
	delete(r.entries, subject)
	r.mu.Unlock()

	if ok && entry.Cancel != nil {
		entry.Cancel()
	}
}

// Len reports how many exporters are currently registered. Used by tests.
func (r *Exporters) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
