package robot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// Subjects exposed by the robot driver daemon.
const (
	SubjectJointsCommit = "robot.joints.commit"
	SubjectLiftHeight   = "robot.lift.height"
)

// DefaultRequestTimeout bounds driver requests when the caller's context
// carries no deadline of its own.
const DefaultRequestTimeout = 5 * time.Second

// commitRequest is the wire payload for a joint command batch.
type commitRequest struct {
	Targets map[string]float64 `json:"targets"`
}

// commitReply is the driver daemon's acknowledgement.
type commitReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// liftHeightReply reports the current lift position.
type liftHeightReply struct {
	Height float64 `json:"height"`
}

// NATSDriver talks to the robot driver daemon over NATS request/reply.
type NATSDriver struct {
	nc     *nats.Conn
	logger *zap.Logger
}

// NewNATSDriver wraps an existing NATS connection. It verifies the driver
// daemon is reachable by querying the lift height once.
func NewNATSDriver(nc *nats.Conn, logger *zap.Logger) (*NATSDriver, error) {
	d := &NATSDriver{nc: nc, logger: logger}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultRequestTimeout)
	defer cancel()
	if _, err := d.LiftHeight(ctx); err != nil {
		return nil, &InitError{Err: err}
	}
	return d, nil
}

// CommitJointTargets flushes a batch of joint targets as one command.
func (d *NATSDriver) CommitJointTargets(ctx context.Context, targets map[string]float64) error {
	data, err := json.Marshal(commitRequest{Targets: targets})
	if err != nil {
		return fmt.Errorf("marshal commit request: %w", err)
	}

	ctx, cancel := d.withDeadline(ctx)
	defer cancel()

	msg, err := d.nc.RequestWithContext(ctx, SubjectJointsCommit, data)
	if err != nil {
		return fmt.Errorf("commit request: %w", err)
	}

	var reply commitReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return fmt.Errorf("decode commit reply: %w", err)
	}
	if !reply.OK {
		return fmt.Errorf("driver rejected command: %s", reply.Error)
	}

	d.logger.Debug("joint targets committed", zap.Any("targets", targets))
	return nil
}

// LiftHeight queries the current lift position from the driver daemon.
func (d *NATSDriver) LiftHeight(ctx context.Context) (float64, error) {
	ctx, cancel := d.withDeadline(ctx)
	defer cancel()

	msg, err := d.nc.RequestWithContext(ctx, SubjectLiftHeight, nil)
	if err != nil {
		return 0, fmt.Errorf("lift height request: %w", err)
	}

	var reply liftHeightReply
	if err := json.Unmarshal(msg.Data, &reply); err != nil {
		return 0, fmt.Errorf("decode lift height reply: %w", err)
	}
	return reply.Height, nil
}

// Close is a no-op: the NATS connection is owned by the caller.
func (d *NATSDriver) Close() error { return nil }

func (d *NATSDriver) withDeadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, DefaultRequestTimeout)
}
