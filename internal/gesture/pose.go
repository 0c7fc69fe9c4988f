package gesture

// JointPose is the target joint configuration realizing a gesture.
// Gripper is the gripper opening, WristYaw and WristRoll are radians.
type JointPose struct {
	Gripper   float64
	WristYaw  float64
	WristRoll float64
}

// Pose values were tuned on the physical arm; Scissors is an open gripper
// rolled 90 degrees, Paper a closed gripper yawed flat.
var poses = map[Gesture]JointPose{
	Reset:    {Gripper: 100.0, WristYaw: 0.0, WristRoll: 0.0},
	Rock:     {Gripper: 0.0, WristYaw: 0.0, WristRoll: 0.0},
	Paper:    {Gripper: 0.0, WristYaw: 1.57, WristRoll: 0.0},
	Scissors: {Gripper: 100.0, WristYaw: 0.0, WristRoll: 1.57},
}

// PoseFor returns the joint pose for a gesture. The lookup is total:
// unknown gestures map to the Reset pose rather than failing.
func PoseFor(g Gesture) JointPose {
	if p, ok := poses[g]; ok {
		return p
	}
	return poses[Reset]
}
