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
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/hil-broker/broker/internal/authentication"
	"github.com/hil-broker/broker/internal/authorization"
	"github.com/hil-broker/broker/internal/config"
	"github.com/hil-broker/broker/internal/oidc"
	cpb "github.com/hil-broker/broker/internal/protocol/hilbroker/client/v1"
	pb "github.com/hil-broker/broker/internal/protocol/hilbroker/v1"
	"github.com/hil-broker/broker/internal/registry"
	"github.com/hil-broker/broker/internal/service/auth"
	clientsvcv1 "github.com/hil-broker/broker/internal/service/client/v1"
	"github.com/hil-broker/broker/internal/streamtoken"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
	k8suuid "k8s.io/apimachinery/pkg/util/uuid"
	"k8s.io/apiserver/pkg/authorization/authorizer"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	hilbrokerv1alpha1 "github.com/hil-broker/broker/api/v1alpha1"
	"github.com/hil-broker/broker/internal/controller"
)

// ControllerService is the broker's public control-plane surface: exporter
// registration and Listen, client-side exporter listing and leasing, and
// the Dial rendezvous between the two. A richer AIP-style
// resource surface (paginated List, lease update/soft-delete) lives in
// internal/service/client/v1, registered alongside this service on the
// same listener (see Start).
type ControllerService struct {
	pb.UnimplementedControllerServiceServer
	Client       client.WithWatch
	Scheme       *runtime.Scheme
	Authn        authentication.ContextAuthenticator
	Authz        authorizer.Authorizer
	Attr         authorization.ContextAttributesGetter
	ServerOption []grpc.ServerOption
	Router       config.Router
	// Exporters is the Exporter Registry: the in-memory index of exporters
	// with an open Listen stream, consulted by Dial and mutated by
	// Listen/Bye.
	Exporters *registry.Exporters
	// MaxLeaseDuration caps the duration LeaseExporter grants. Zero means
	// uncapped.
	MaxLeaseDuration time.Duration
}

type wrappedStream struct {
	grpc.ServerStream
}

func logContext(ctx context.Context) context.Context {
	p, ok := peer.FromContext(ctx)
	if ok {
		return log.IntoContext(ctx, log.FromContext(ctx, "peer", p.Addr))
	}
	return ctx
}

func (w *wrappedStream) Context() context.Context {
	return logContext(w.ServerStream.Context())
}

func (s *ControllerService) authenticateClient(ctx context.Context) (*hilbrokerv1alpha1.Client, error) {
	return oidc.VerifyClientObjectToken(
		ctx,
		s.Authn,
		s.Authz,
		s.Attr,
		s.Client,
	)
}

func (s *ControllerService) authenticateExporter(ctx context.Context) (*hilbrokerv1alpha1.Exporter, error) {
	return oidc.VerifyExporterObjectToken(
		ctx,
		s.Authn,
		s.Authz,
		s.Attr,
		s.Client,
	)
}

// Register refreshes the caller exporter's device inventory and its own
// label namespace; everything else about the exporter is managed
// externally.
func (s *ControllerService) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	logger := log.FromContext(ctx)

	exporter, err := s.authenticateExporter(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate exporter")
		return nil, err
	}

	logger = logger.WithValues("exporter", types.NamespacedName{
		Namespace: exporter.Namespace,
		Name:      exporter.Name,
	})
	logger.Info("registering exporter", "deviceCount", len(req.GetReports()))

	labelPatch := client.MergeFrom(exporter.DeepCopy())
	if exporter.Labels == nil {
		exporter.Labels = make(map[string]string)
	}
	for k := range exporter.Labels {
		if strings.HasPrefix(k, "hil-broker.dev/") {
			delete(exporter.Labels, k)
		}
	}
	for k, v := range req.GetLabels() {
		if strings.HasPrefix(k, "hil-broker.dev/") {
			exporter.Labels[k] = v
		}
	}
	if err := s.Client.Patch(ctx, exporter, labelPatch); err != nil {
		logger.Error(err, "unable to update exporter labels")
		return nil, status.Errorf(codes.Internal, "unable to update exporter: %s", err)
	}

	statusPatch := client.MergeFrom(exporter.DeepCopy())
	devices := make([]hilbrokerv1alpha1.Device, 0, len(req.GetReports()))
	for _, report := range req.GetReports() {
		devices = append(devices, hilbrokerv1alpha1.Device{
			Uuid:            report.GetUuid(),
			DriverInterface: report.GetDriverInterface(),
			Labels:          report.GetLabels(),
		})
	}
	exporter.Status.Devices = devices
	if err := s.Client.Status().Patch(ctx, exporter, statusPatch); err != nil {
		logger.Error(err, "unable to update exporter device inventory")
		return nil, status.Errorf(codes.Internal, "unable to update exporter status: %s", err)
	}

	return &pb.RegisterResponse{Uuid: string(exporter.UID)}, nil
}

// Bye handles an exporter's clean shutdown notice: the
// Listen stream's registry entry is evicted (tearing down its context so a
// subsequent Listen does not race AlreadyExists against a stale entry) and
// the reported device inventory is cleared, since it is no longer being
// refreshed by anyone. Registered is left alone - it tracks credential
// issuance, not connectivity; Online already tracks connectivity via the
// Listen heartbeat and decays on its own once Listen stops.
func (s *ControllerService) Bye(ctx context.Context, req *pb.ByeRequest) (*pb.ByeResponse, error) {
	logger := log.FromContext(ctx)

	exporter, err := s.authenticateExporter(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate exporter")
		return nil, err
	}

	logger = logger.WithValues("exporter", types.NamespacedName{
		Namespace: exporter.Namespace,
		Name:      exporter.Name,
	})
	logger.Info("exporter said goodbye", "reason", req.GetReason())

	s.Exporters.Evict(client.ObjectKeyFromObject(exporter).String())

	original := client.MergeFrom(exporter.DeepCopy())
	exporter.Status.Devices = nil
	if err := s.Client.Status().Patch(ctx, exporter, original); err != nil {
		logger.Error(err, "unable to clear exporter device inventory")
		return nil, status.Errorf(codes.Internal, "unable to update exporter status: %s", err)
	}

	return &pb.ByeResponse{}, nil
}

// Listen opens the exporter's long-lived stream. It registers the subject
// in the Exporter Registry for the duration of the call - rejecting a
// second concurrent Listen with AlreadyExists - drives the liveness
// heartbeat Listen now stands in for, and relays whatever Dial pushes into
// the registry entry's queue.
func (s *ControllerService) Listen(req *pb.ListenRequest, stream pb.ControllerService_ListenServer) error {
	ctx := stream.Context()
	logger := log.FromContext(ctx)

	exporter, err := s.authenticateExporter(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate exporter")
		return err
	}

	logger = logger.WithValues("exporter", types.NamespacedName{
		Namespace: exporter.Namespace,
		Name:      exporter.Name,
	})

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	subject := client.ObjectKeyFromObject(exporter).String()
	queue := make(chan *pb.ListenResponse, 8)
	if err := s.Exporters.Register(subject, registry.Entry{Queue: queue, Cancel: cancel}); err != nil {
		logger.Error(err, "rejecting concurrent Listen")
		return err
	}
	defer s.Exporters.Unregister(subject)

	logger.Info("exporter Listen stream opened")

	heartbeat := func() {
		patch := client.MergeFrom(exporter.DeepCopy())
		exporter.Status.LastSeen = metav1.Now()
		if err := s.Client.Status().Patch(ctx, exporter, patch); err != nil {
			logger.Error(err, "unable to record exporter heartbeat")
		}
	}
	// report online immediately; the ticker's first tick is one period away.
	heartbeat()

	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-streamCtx.Done():
			logger.Info("exporter Listen stream closed")
			return nil
		case <-ticker.C:
			heartbeat()
		case msg := <-queue:
			if err := stream.Send(msg); err != nil {
				logger.Error(err, "failed to deliver Dial response to exporter")
				return err
			}
		}
	}
}

// clientHoldsReadyLease reports whether caller currently holds a Ready
// lease bound to exporter - Dial's precondition.
func (s *ControllerService) clientHoldsReadyLease(
	ctx context.Context,
	caller *hilbrokerv1alpha1.Client,
	exporter *hilbrokerv1alpha1.Exporter,
) (bool, error) {
	var leases hilbrokerv1alpha1.LeaseList
	if err := s.Client.List(
		ctx,
		&leases,
		client.InNamespace(caller.Namespace),
		controller.MatchingActiveLeases(),
	); err != nil {
		return false, fmt.Errorf("clientHoldsReadyLease: failed to list active leases: %w", err)
	}

	for _, lease := range leases.Items {
		if lease.Spec.ClientRef.Name != caller.Name {
			continue
		}
		if lease.Status.ExporterRef == nil || lease.Status.ExporterRef.Name != exporter.Name {
			continue
		}
		if meta.IsStatusConditionTrue(lease.Status.Conditions, string(hilbrokerv1alpha1.LeaseConditionTypeReady)) {
			return true, nil
		}
	}
	return false, nil
}

// selectRouter picks a Router Directory entry for exporterLabels: the
// first, name-sorted entry whose labels are satisfied by the
// exporter wins; otherwise the entry named "default"; otherwise whichever
// entry sorts first, so the choice is deterministic rather than dependent
// on map iteration order.
func selectRouter(routers config.Router, exporterLabels map[string]string) (string, config.RouterEntry, error) {
	names := make([]string, 0, len(routers))
	for name := range routers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		entry := routers[name]
		if len(entry.Labels) == 0 {
			continue
		}
		matches := true
		for k, v := range entry.Labels {
			if exporterLabels[k] != v {
				matches = false
				break
			}
		}
		if matches {
			return name, entry, nil
		}
	}

	if entry, ok := routers["default"]; ok {
		return "default", entry, nil
	}
	for _, name := range names {
		return name, routers[name], nil
	}

	return "", config.RouterEntry{}, fmt.Errorf("no router available")
}

// Dial resolves exporter in the Exporter Registry, mints a one-time stream
// token pair, pushes one half to the exporter's Listen stream and returns
// the other to the client.
func (s *ControllerService) Dial(ctx context.Context, req *pb.DialRequest) (*pb.DialResponse, error) {
	logger := log.FromContext(ctx)

	caller, err := s.authenticateClient(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate client")
		return nil, err
	}

	exporterName := req.GetExporterName()
	if exporterName == "" {
		return nil, status.Errorf(codes.InvalidArgument, "exporter_name is required")
	}

	logger = logger.WithValues(
		"client", types.NamespacedName{Namespace: caller.Namespace, Name: caller.Name},
		"exporter", types.NamespacedName{Namespace: caller.Namespace, Name: exporterName},
	)

	var exporter hilbrokerv1alpha1.Exporter
	if err := s.Client.Get(ctx, types.NamespacedName{
		Namespace: caller.Namespace,
		Name:      exporterName,
	}, &exporter); err != nil {
		logger.Error(err, "unable to get exporter")
		return nil, err
	}

	ready, err := s.clientHoldsReadyLease(ctx, caller, &exporter)
	if err != nil {
		return nil, err
	}
	if !ready {
		return nil, status.Errorf(codes.FailedPrecondition, "client does not hold a Ready lease on exporter %q", exporterName)
	}

	entry, ok := s.Exporters.Lookup(client.ObjectKeyFromObject(&exporter).String())
	if !ok {
		return nil, status.Errorf(codes.Unavailable, "exporter %q is not currently connected", exporterName)
	}

	routerName, routerEntry, err := selectRouter(s.Router, exporter.Labels)
	if err != nil {
		logger.Error(err, "no router available")
		return nil, status.Errorf(codes.Unavailable, "no router available")
	}
	logger.Info("selected router", "router", routerName, "endpoint", routerEntry.Endpoint)

	streamID := string(k8suuid.NewUUID())
	secret := []byte(os.Getenv("ROUTER_KEY"))

	clientToken, err := streamtoken.Mint(secret, streamID, streamtoken.PairingWindow)
	if err != nil {
		logger.Error(err, "unable to sign client stream token")
		return nil, status.Errorf(codes.Internal, "unable to sign stream token")
	}
	exporterToken, err := streamtoken.Mint(secret, streamID, streamtoken.PairingWindow)
	if err != nil {
		logger.Error(err, "unable to sign exporter stream token")
		return nil, status.Errorf(codes.Internal, "unable to sign stream token")
	}

	push := &pb.ListenResponse{
		RouterEndpoint: routerEntry.Endpoint,
		RouterToken:    exporterToken,
		DeviceUuid:     req.GetDeviceUuid(),
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case entry.Queue <- push:
	}

	logger.Info("dial paired client with exporter", "stream", streamID)
	return &pb.DialResponse{
		RouterEndpoint: routerEntry.Endpoint,
		RouterToken:    clientToken,
	}, nil
}

func exporterToProtobuf(exporter *hilbrokerv1alpha1.Exporter) *pb.Exporter {
	reports := make([]*pb.DeviceReport, 0, len(exporter.Status.Devices))
	for _, device := range exporter.Status.Devices {
		reports = append(reports, &pb.DeviceReport{
			Uuid:            device.Uuid,
			DriverInterface: device.DriverInterface,
			Labels:          device.Labels,
		})
	}

	out := &pb.Exporter{
		Name:    exporter.Name,
		Labels:  exporter.Labels,
		Online:  meta.IsStatusConditionTrue(exporter.Status.Conditions, string(hilbrokerv1alpha1.ExporterConditionTypeOnline)),
		Reports: reports,
	}
	if exporter.Status.LeaseRef != nil {
		out.LeaseName = exporter.Status.LeaseRef.Name
	}
	return out
}

// ListExporters returns the exporters visible to the calling client,
// filtered by label equality.
func (s *ControllerService) ListExporters(ctx context.Context, req *pb.ListExportersRequest) (*pb.ListExportersResponse, error) {
	logger := log.FromContext(ctx)

	caller, err := s.authenticateClient(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate client")
		return nil, err
	}

	var exporters hilbrokerv1alpha1.ExporterList
	if err := s.Client.List(
		ctx,
		&exporters,
		client.InNamespace(caller.Namespace),
		client.MatchingLabels(req.GetLabels()),
	); err != nil {
		logger.Error(err, "unable to list exporters")
		return nil, err
	}

	response := &pb.ListExportersResponse{}
	for i := range exporters.Items {
		response.Exporters = append(response.Exporters, exporterToProtobuf(&exporters.Items[i]))
	}
	return response, nil
}

// GetExporter returns a single exporter by name.
func (s *ControllerService) GetExporter(ctx context.Context, req *pb.GetExporterRequest) (*pb.Exporter, error) {
	logger := log.FromContext(ctx)

	caller, err := s.authenticateClient(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate client")
		return nil, err
	}

	if req.GetName() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "name is required")
	}

	var exporter hilbrokerv1alpha1.Exporter
	if err := s.Client.Get(ctx, types.NamespacedName{
		Namespace: caller.Namespace,
		Name:      req.GetName(),
	}, &exporter); err != nil {
		return nil, err
	}

	return exporterToProtobuf(&exporter), nil
}

// LeaseExporter creates a Lease resource on the calling client's behalf.
// The call never blocks until the lease is
// Ready; the arbiter binds asynchronously and the Pending flag reports
// whether that has happened yet.
func (s *ControllerService) LeaseExporter(ctx context.Context, req *pb.LeaseExporterRequest) (*pb.LeaseExporterResponse, error) {
	logger := log.FromContext(ctx)

	caller, err := s.authenticateClient(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate client")
		return nil, err
	}

	duration := time.Duration(req.GetDurationSecs()) * time.Second
	if duration < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "duration must not be negative")
	}
	if s.MaxLeaseDuration > 0 && (duration == 0 || duration > s.MaxLeaseDuration) {
		duration = s.MaxLeaseDuration
	}
	if duration == 0 {
		// no cap configured either: an unbounded lease has to be asked for
		// explicitly through the resource API, not the RPC shortcut.
		return nil, status.Errorf(codes.InvalidArgument, "duration is required")
	}

	leaseName, err := uuid.NewV7()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "unable to generate lease name")
	}

	lease := hilbrokerv1alpha1.Lease{
		ObjectMeta: metav1.ObjectMeta{
			Namespace: caller.Namespace,
			Name:      leaseName.String(),
		},
		Spec: hilbrokerv1alpha1.LeaseSpec{
			ClientRef: corev1.LocalObjectReference{
				Name: caller.Name,
			},
			Duration: metav1.Duration{Duration: duration},
			Selector: metav1.LabelSelector{
				MatchLabels: req.GetLabels(),
			},
		},
	}
	if req.GetExporterName() != "" {
		lease.Spec.ExporterRef = &corev1.LocalObjectReference{Name: req.GetExporterName()}
	}

	if err := s.Client.Create(ctx, &lease); err != nil {
		logger.Error(err, "unable to create lease")
		return nil, err
	}

	logger.Info("created lease", "lease", lease.Name, "client", caller.Name, "duration", duration)

	pending := true
	var created hilbrokerv1alpha1.Lease
	if err := s.Client.Get(ctx, client.ObjectKeyFromObject(&lease), &created); err == nil {
		pending = !meta.IsStatusConditionTrue(created.Status.Conditions, string(hilbrokerv1alpha1.LeaseConditionTypeReady))
	}

	return &pb.LeaseExporterResponse{
		LeaseName:    lease.Name,
		DurationSecs: int64(duration / time.Second),
		Pending:      pending,
	}, nil
}

// ReleaseExporter requests early termination of a lease held by the calling
// client. Releasing an already-released lease
// is a no-op; releasing a lease that ended any other way is
// FailedPrecondition.
func (s *ControllerService) ReleaseExporter(ctx context.Context, req *pb.ReleaseExporterRequest) (*pb.ReleaseExporterResponse, error) {
	logger := log.FromContext(ctx)

	caller, err := s.authenticateClient(ctx)
	if err != nil {
		logger.Error(err, "unable to authenticate client")
		return nil, err
	}

	if req.GetLeaseName() == "" {
		return nil, status.Errorf(codes.InvalidArgument, "lease_name is required")
	}

	var lease hilbrokerv1alpha1.Lease
	if err := s.Client.Get(ctx, types.NamespacedName{
		Namespace: caller.Namespace,
		Name:      req.GetLeaseName(),
	}, &lease); err != nil {
		return nil, err
	}

	if lease.Spec.ClientRef.Name != caller.Name {
		return nil, status.Errorf(codes.PermissionDenied, "lease %q is not held by the calling client", lease.Name)
	}

	if lease.Spec.Release {
		return &pb.ReleaseExporterResponse{}, nil
	}
	if lease.Status.Ended {
		return nil, status.Errorf(codes.FailedPrecondition, "lease %q has already ended", lease.Name)
	}

	original := client.MergeFrom(lease.DeepCopy())
	lease.Spec.Release = true
	if err := s.Client.Patch(ctx, &lease, original); err != nil {
		logger.Error(err, "unable to release lease")
		return nil, err
	}

	logger.Info("released lease", "lease", lease.Name, "client", caller.Name)
	return &pb.ReleaseExporterResponse{}, nil
}

func (s *ControllerService) Start(ctx context.Context) error {
	logger := log.FromContext(ctx)

	dnsnames, ipaddresses, err := endpointToSAN(controllerEndpoint())
	if err != nil {
		return err
	}

	cert, err := NewSelfSignedCertificate("hil-broker controller", dnsnames, ipaddresses)
	if err != nil {
		return err
	}

	server := grpc.NewServer(append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(func(
			gctx context.Context,
			req any,
			_ *grpc.UnaryServerInfo,
			handler grpc.UnaryHandler,
		) (resp any, err error) {
			return handler(logContext(gctx), req)
		}, recovery.UnaryServerInterceptor()),
		grpc.ChainStreamInterceptor(func(
			srv any,
			ss grpc.ServerStream,
			_ *grpc.StreamServerInfo,
			handler grpc.StreamHandler,
		) error {
			return handler(srv, &wrappedStream{ServerStream: ss})
		}, recovery.StreamServerInterceptor()),
	}, s.ServerOption...)...)

	pb.RegisterControllerServiceServer(server, s)
	cpb.RegisterClientServiceServer(
		server,
		clientsvcv1.NewClientService(s.Client, *auth.NewAuth(s.Client, s.Authn, s.Authz, s.Attr)),
	)

	reflection.Register(server)

	gwmux := gwruntime.NewServeMux()

	listener, err := tls.Listen("tcp", ":8082", &tls.Config{
		Certificates: []tls.Certificate{*cert},
		NextProtos:   []string{"http/1.1", "h2"},
	})
	if err != nil {
		return err
	}

	logger.Info("starting Controller grpc service")

	go func() {
		<-ctx.Done()
		logger.Info("stopping Controller gRPC service")
		server.Stop()
	}()

	return http.Serve(listener, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ProtoMajor == 2 && strings.HasPrefix(
			r.Header.Get("Content-Type"), "application/grpc") {
			server.ServeHTTP(w, r)
		} else {
			gwmux.ServeHTTP(w, r)
		}
	}))
}

// SetupWithManager sets up the controller with the Manager.
func (s *ControllerService) SetupWithManager(mgr ctrl.Manager) error {
	return mgr.Add(s)
}
