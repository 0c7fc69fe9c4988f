package speech

import (
	"context"
	"sync"
)

// MockSpeaker records utterances for testing. When Err is set, every
// Say call fails with it.
type MockSpeaker struct {
	mu         sync.Mutex
	Utterances []string
	Err        error
}

var _ Speaker = (*MockSpeaker)(nil)

func (m *MockSpeaker) Say(_ context.Context, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Utterances = append(m.Utterances, text)
	return nil
}

// Spoken returns a copy of the recorded utterances in order.
func (m *MockSpeaker) Spoken() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.Utterances))
	copy(out, m.Utterances)
	return out
}
