package robot

import "context"

// Joint names understood by the driver daemon.
const (
	JointLift      = "lift"
	JointWristYaw  = "wrist_yaw"
	JointWristRoll = "wrist_roll"
	JointGripper   = "stretch_gripper"
)

// Driver is the hardware collaborator contract. A single CommitJointTargets
// call carries a whole batch of staged targets and flushes it as one
// coordinated command; joints meant to move together must share a batch.
type Driver interface {
	// CommitJointTargets flushes the given joint targets to the hardware
	// as one command batch.
	CommitJointTargets(ctx context.Context, targets map[string]float64) error

	// LiftHeight reports the current lift position.
	LiftHeight(ctx context.Context) (float64, error)

	// Close releases the driver connection. Idempotent.
	Close() error
}
