package service

import (
	"context"
	"io"
	"testing"
	"time"

	pb "github.com/hil-broker/broker/internal/protocol/hilbroker/v1"
	"github.com/hil-broker/broker/internal/streamtoken"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// fakeStream is an in-memory RouterService_StreamServer: Recv drains the in
// channel (io.EOF once closed), Send feeds the out channel.
type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
	in  chan *pb.StreamRequest
	out chan *pb.StreamResponse
}

func newFakeStream(ctx context.Context) *fakeStream {
	return &fakeStream{
		ctx: ctx,
		in:  make(chan *pb.StreamRequest, 16),
		out: make(chan *pb.StreamResponse, 16),
	}
}

func (f *fakeStream) Context() context.Context { return f.ctx }

func (f *fakeStream) Recv() (*pb.StreamRequest, error) {
	msg, ok := <-f.in
	if !ok {
		return nil, io.EOF
	}
	return msg, nil
}

func (f *fakeStream) Send(msg *pb.StreamResponse) error {
	select {
	case f.out <- msg:
		return nil
	case <-f.ctx.Done():
		return f.ctx.Err()
	}
}

func streamContextWithToken(t *testing.T, secret []byte, subject string, lifetime time.Duration) context.Context {
	t.Helper()
	token, err := streamtoken.Mint(secret, subject, lifetime)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	md := metadata.New(map[string]string{"authorization": "Bearer " + token})
	return metadata.NewIncomingContext(context.Background(), md)
}

// An expired token is rejected before the pending map is ever consulted.
func TestStreamRejectsExpiredToken(t *testing.T) {
	t.Setenv("ROUTER_KEY", "router-test-key")
	svc := &RouterService{}

	stream := newFakeStream(streamContextWithToken(t, []byte("router-test-key"), "stream-exp", -time.Second))
	err := svc.Stream(stream)
	if err == nil {
		t.Fatal("expected Stream to fail with an expired token")
	}
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
	if _, loaded := svc.pending.Load("stream-exp"); loaded {
		t.Fatal("expired token must not leave a pending entry behind")
	}
}

// Two Stream calls with the same subject pair up; frames sent by either
// side arrive at the other in order, and when the forwarder's source closes
// the waiter observes end-of-stream.
func TestStreamPairsAndForwards(t *testing.T) {
	t.Setenv("ROUTER_KEY", "router-test-key")
	secret := []byte("router-test-key")
	svc := &RouterService{}

	waiter := newFakeStream(streamContextWithToken(t, secret, "stream-pair", time.Minute))
	waiterDone := make(chan error, 1)
	go func() { waiterDone <- svc.Stream(waiter) }()

	// wait until the first arrival has parked itself
	deadline := time.Now().Add(5 * time.Second)
	for {
		if _, loaded := svc.pending.Load("stream-pair"); loaded {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("first arrival never registered in the pending map")
		}
		time.Sleep(time.Millisecond)
	}

	forwarder := newFakeStream(streamContextWithToken(t, secret, "stream-pair", time.Minute))
	forwarderDone := make(chan error, 1)
	go func() { forwarderDone <- svc.Stream(forwarder) }()

	// forwarder side -> waiter side
	forwarder.in <- &pb.StreamRequest{Payload: []byte("ping")}
	select {
	case got := <-waiter.out:
		if string(got.GetPayload()) != "ping" {
			t.Fatalf("payload = %q, want %q", got.GetPayload(), "ping")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("frame never reached the waiter side")
	}

	// waiter side -> forwarder side, ordering preserved
	waiter.in <- &pb.StreamRequest{Payload: []byte("pong-1")}
	waiter.in <- &pb.StreamRequest{Payload: []byte("pong-2")}
	for _, want := range []string{"pong-1", "pong-2"} {
		select {
		case got := <-forwarder.out:
			if string(got.GetPayload()) != want {
				t.Fatalf("payload = %q, want %q", got.GetPayload(), want)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("frame never reached the forwarder side")
		}
	}

	// a ONE-sided close must end the pairing: the other side observes
	// end-of-stream within a bounded interval rather than waiting for its
	// own source to close too
	close(forwarder.in)
	select {
	case err := <-forwarderDone:
		if err != nil {
			t.Fatalf("forwarder Stream returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("forwarder never returned after one-sided close")
	}
	select {
	case err := <-waiterDone:
		if err != nil {
			t.Fatalf("waiter Stream returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter never observed the pairing end after one-sided close")
	}

	if _, loaded := svc.pending.Load("stream-pair"); loaded {
		t.Fatal("pairing must consume the pending entry")
	}

	// release the drained relay still parked on the waiter's source
	close(waiter.in)
}

// A token presented a third time finds the pending map empty (the second
// arrival consumed the entry) and parks until the token expires: liveness is
// lost, confidentiality is not.
func TestStreamThirdArrivalTimesOut(t *testing.T) {
	t.Setenv("ROUTER_KEY", "router-test-key")
	secret := []byte("router-test-key")
	svc := &RouterService{}

	// token expirations have one-second resolution, so the lifetime must
	// exceed a second for the token to pass verification at all
	third := newFakeStream(streamContextWithToken(t, secret, "stream-replay", 2*time.Second))
	done := make(chan error, 1)
	go func() { done <- svc.Stream(third) }()

	select {
	case err := <-done:
		if status.Code(err) != codes.DeadlineExceeded {
			t.Fatalf("code = %v, want DeadlineExceeded", status.Code(err))
		}
	case <-time.After(5 * time.Second):
		t.Fatal("waiter did not time out with its token")
	}
	if _, loaded := svc.pending.Load("stream-replay"); loaded {
		t.Fatal("timed-out waiter must remove its own pending entry")
	}
}
