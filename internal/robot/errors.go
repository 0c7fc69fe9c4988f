package robot

import "fmt"

// ActuatorError indicates a hardware command failed or did not settle.
// Physical state after a partial command is unknown, so actuator errors
// are fatal to the session and never retried.
type ActuatorError struct {
	Op  string // "wrist", "gripper", "lift"
	Err error
}

func (e *ActuatorError) Error() string {
	return fmt.Sprintf("actuator %s command failed: %v", e.Op, e.Err)
}

func (e *ActuatorError) Unwrap() error { return e.Err }

// InitError indicates the robot could not be initialized.
type InitError struct {
	Err error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("robot initialization failed: %v", e.Err)
}

func (e *InitError) Unwrap() error { return e.Err }
