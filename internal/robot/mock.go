package robot

import (
	"context"
	"sync"
)

// MockDriver is a deterministic Driver for testing. It records every
// committed batch in order and returns scripted failures.
type MockDriver struct {
	mu      sync.Mutex
	Commits []map[string]float64

	// Height is returned by LiftHeight.
	Height float64

	// FailOn, when non-empty, causes CommitJointTargets to fail for any
	// batch containing the named joint.
	FailOn string

	// Err is the error returned on scripted failure. A generic fault is
	// used when nil.
	Err error

	Closed int
}

var _ Driver = (*MockDriver)(nil)

type mockFault struct{}

func (mockFault) Error() string { return "mock driver fault" }

func (m *MockDriver) CommitJointTargets(_ context.Context, targets map[string]float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailOn != "" {
		if _, ok := targets[m.FailOn]; ok {
			return m.fault()
		}
	}

	batch := make(map[string]float64, len(targets))
	for k, v := range targets {
		batch[k] = v
	}
	m.Commits = append(m.Commits, batch)
	return nil
}

func (m *MockDriver) LiftHeight(_ context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Height, nil
}

func (m *MockDriver) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed++
	return nil
}

// CommitCount returns the number of recorded batches.
func (m *MockDriver) CommitCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Commits)
}

func (m *MockDriver) fault() error {
	if m.Err != nil {
		return m.Err
	}
	return mockFault{}
}
