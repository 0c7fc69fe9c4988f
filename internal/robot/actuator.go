package robot

import (
	"context"
	"time"
)

// Config holds actuator timing parameters.
type Config struct {
	// SettleDelay is the fixed wait after a commit approximating physical
	// motion completion.
	SettleDelay time.Duration
}

// DefaultConfig returns timings tuned on the physical arm.
func DefaultConfig() Config {
	return Config{SettleDelay: time.Second}
}

// Actuator sequences joint command batches against the driver, blocking
// after each commit until the motion is expected to have settled.
type Actuator struct {
	driver Driver
	config Config
	sleep  func(time.Duration)
}

// NewActuator creates an Actuator over the given driver.
func NewActuator(d Driver, cfg Config) *Actuator {
	return &Actuator{driver: d, config: cfg, sleep: time.Sleep}
}

// SetWristOrientation commits yaw and roll as one batch, then waits for
// the wrist to settle. Both targets share a batch so the joints move
// together.
func (a *Actuator) SetWristOrientation(ctx context.Context, yaw, roll float64) error {
	targets := map[string]float64{
		JointWristYaw:  yaw,
		JointWristRoll: roll,
	}
	if err := a.driver.CommitJointTargets(ctx, targets); err != nil {
		return &ActuatorError{Op: "wrist", Err: err}
	}
	a.sleep(a.config.SettleDelay)
	return nil
}

// SetGripperOpening commits the gripper target, then waits for settle.
func (a *Actuator) SetGripperOpening(ctx context.Context, value float64) error {
	targets := map[string]float64{JointGripper: value}
	if err := a.driver.CommitJointTargets(ctx, targets); err != nil {
		return &ActuatorError{Op: "gripper", Err: err}
	}
	a.sleep(a.config.SettleDelay)
	return nil
}

// MoveLiftTo commits an absolute lift target, then waits for settle.
func (a *Actuator) MoveLiftTo(ctx context.Context, height float64) error {
	targets := map[string]float64{JointLift: height}
	if err := a.driver.CommitJointTargets(ctx, targets); err != nil {
		return &ActuatorError{Op: "lift", Err: err}
	}
	a.sleep(a.config.SettleDelay)
	return nil
}

// BobLift raises the lift by deltaUp, holds, and returns it to the height
// recorded at entry. Each call is self-contained, so repeated bobs across
// countdown words behave identically.
func (a *Actuator) BobLift(ctx context.Context, deltaUp float64, hold time.Duration) error {
	height, err := a.driver.LiftHeight(ctx)
	if err != nil {
		return &ActuatorError{Op: "lift", Err: err}
	}

	up := map[string]float64{JointLift: height + deltaUp}
	if err := a.driver.CommitJointTargets(ctx, up); err != nil {
		return &ActuatorError{Op: "lift", Err: err}
	}
	a.sleep(hold)

	back := map[string]float64{JointLift: height}
	if err := a.driver.CommitJointTargets(ctx, back); err != nil {
		return &ActuatorError{Op: "lift", Err: err}
	}
	a.sleep(hold)
	return nil
}
