package service

import (
	"context"
	"errors"
	"io"

	pb "github.com/hil-broker/broker/internal/protocol/hilbroker/v1"
	"golang.org/x/sync/errgroup"
)

// relayFrames copies frames from src to dst until src closes, dst rejects a
// frame, or src sends a RST_STREAM frame: a peer that resets explicitly
// wants the pairing torn down now, not after its next ordinary EOF.
func relayFrames(src, dst pb.RouterService_StreamServer) error {
	for {
		frame, err := src.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := dst.Send(&pb.StreamResponse{
			Payload:   frame.GetPayload(),
			FrameType: frame.GetFrameType(),
		}); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if frame.GetFrameType() == pb.FrameType_FRAME_TYPE_RST_STREAM {
			return nil
		}
	}
}

// Forward relays frames between two paired Stream calls in both directions
// concurrently: every byte one side sends reaches the other, in order,
// until either side closes. Completion of either direction cancels ctx, so
// a one-sided close ends the pairing instead of leaving the opposite relay
// parked on Recv. Recv has no way to observe cancellation directly;
// returning from here closes the handler's stream, which is what finally
// unblocks the still-running relay and lets both peers see end-of-stream.
func Forward(ctx context.Context, a, b pb.RouterService_StreamServer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { defer cancel(); return relayFrames(a, b) })
	g.Go(func() error { defer cancel(); return relayFrames(b, a) })

	go func() {
		_ = g.Wait()
	}()

	<-ctx.Done()
	return nil
}
