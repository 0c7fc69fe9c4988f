package gesture

import "testing"

func TestPoseFor(t *testing.T) {
	tests := []struct {
		gesture Gesture
		want    JointPose
	}{
		{Reset, JointPose{Gripper: 100.0, WristYaw: 0.0, WristRoll: 0.0}},
		{Rock, JointPose{Gripper: 0.0, WristYaw: 0.0, WristRoll: 0.0}},
		{Paper, JointPose{Gripper: 0.0, WristYaw: 1.57, WristRoll: 0.0}},
		{Scissors, JointPose{Gripper: 100.0, WristYaw: 0.0, WristRoll: 1.57}},
	}

	for _, tt := range tests {
		got := PoseFor(tt.gesture)
		if got != tt.want {
			t.Errorf("PoseFor(%s) = %+v, want %+v", tt.gesture, got, tt.want)
		}
	}
}

func TestPoseFor_Deterministic(t *testing.T) {
	for _, g := range All() {
		first := PoseFor(g)
		second := PoseFor(g)
		if first != second {
			t.Errorf("PoseFor(%s) not deterministic: %+v vs %+v", g, first, second)
		}
	}
}

func TestPoseFor_UnknownFallsBackToReset(t *testing.T) {
	got := PoseFor(Gesture("lizard"))
	if got != PoseFor(Reset) {
		t.Errorf("PoseFor(unknown) = %+v, want reset pose", got)
	}
}

func TestAll_CoversPoseTable(t *testing.T) {
	if len(All()) != len(poses) {
		t.Errorf("All() has %d gestures, pose table has %d entries", len(All()), len(poses))
	}
	for _, g := range All() {
		if _, ok := poses[g]; !ok {
			t.Errorf("gesture %s missing from pose table", g)
		}
	}
}
