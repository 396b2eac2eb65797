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

package service

import (
	"context"
	"net"
	"os"
	"sync"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	pb "github.com/hil-broker/broker/internal/protocol/hilbroker/v1"
	"github.com/hil-broker/broker/internal/streamtoken"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
)

// RouterService exposes a gRPC service
type RouterService struct {
	pb.UnimplementedRouterServiceServer
	ServerOption []grpc.ServerOption
	pending      sync.Map
}

type streamContext struct {
	cancel context.CancelFunc
	stream pb.RouterService_StreamServer
	paired chan struct{}
}

func (s *RouterService) authenticate(ctx context.Context) (string, time.Time, error) {
	return streamtoken.Verify(ctx, []byte(os.Getenv("ROUTER_KEY")))
}

// Stream pairs two calls presenting tokens with the same subject and relays
// frames between them. The first arrival parks itself in the
// pending map and waits, but only until its token expires: the token's
// deadline bounds the unpaired phase, never an established relay, which can
// live for as long as both sides keep it open. The second arrival consumes
// the entry atomically, so a token replayed a third time finds the map empty
// and parks until its token expires: liveness is lost rather than frames
// leaking to an extra peer.
func (s *RouterService) Stream(stream pb.RouterService_StreamServer) error {
	logger := log.FromContext(stream.Context())

	streamName, expires, err := s.authenticate(stream.Context())
	if err != nil {
		logger.Error(err, "failed to authenticate")
		return err
	}

	logger.Info("streaming", "stream", streamName)

	ctx, cancel := context.WithCancel(stream.Context())
	defer cancel()

	sctx := &streamContext{
		cancel: cancel,
		stream: stream,
		paired: make(chan struct{}),
	}

	for {
		actual, loaded := s.pending.LoadOrStore(streamName, sctx)
		if !loaded {
			logger.Info("waiting for the other side", "stream", streamName)

			timer := time.NewTimer(time.Until(expires))
			defer timer.Stop()

			select {
			case <-timer.C:
				if s.pending.CompareAndDelete(streamName, sctx) {
					return status.Error(codes.DeadlineExceeded, "no peer arrived before the stream token expired")
				}
				// a peer consumed the entry just as the token ran out; the
				// relay is live, wait for it like any paired stream
				<-sctx.paired
			case <-sctx.paired:
			case <-ctx.Done():
				s.pending.CompareAndDelete(streamName, sctx)
				return nil
			}

			// paired: the peer's forwarder drives this stream now and cancels
			// ctx when the relay ends
			<-ctx.Done()
			return nil
		}

		if !s.pending.CompareAndDelete(streamName, actual) {
			// lost the consume race with another arrival; try again
			continue
		}

		peer := actual.(*streamContext)
		close(peer.paired)
		defer peer.cancel()
		logger.Info("forwarding", "stream", streamName)
		return Forward(ctx, stream, peer.stream)
	}
}

func (s *RouterService) Start(ctx context.Context) error {
	log := log.FromContext(ctx)

	dnsnames, ipaddresses, err := endpointToSAN(routerEndpoint())
	if err != nil {
		return err
	}

	cert, err := NewSelfSignedCertificate("hil-broker router", dnsnames, ipaddresses)
	if err != nil {
		return err
	}

	serverOptions := append([]grpc.ServerOption{
		grpc.Creds(credentials.NewServerTLSFromCert(cert)),
		grpc.ChainUnaryInterceptor(recovery.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(recovery.StreamServerInterceptor()),
	}, s.ServerOption...)

	server := grpc.NewServer(serverOptions...)

	pb.RegisterRouterServiceServer(server, s)

	reflection.Register(server)
	listener, err := net.Listen("tcp", ":8083")
	if err != nil {
		return err
	}

	log.Info("Starting grpc router service")
	go func() {
		<-ctx.Done()
		log.Info("Stopping grpc router service")
		server.Stop()
	}()

	return server.Serve(listener)
}

// SetupWithManager sets up the controller with the Manager.
func (s *RouterService) SetupWithManager(mgr ctrl.Manager) error {
	return mgr.Add(s)
}
