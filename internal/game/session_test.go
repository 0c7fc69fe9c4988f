package game

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/gesture"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/speech"
	"github.com/SimplyMinimal/stretch-rock-paper-scissors/internal/store"
)

// fakeLift records re-home targets.
type fakeLift struct {
	mu      sync.Mutex
	heights []float64
	err     error
}

func (f *fakeLift) MoveLiftTo(_ context.Context, height float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.heights = append(f.heights, height)
	return nil
}

// fakeHistory counts repo calls so teardown recording can be asserted.
type fakeHistory struct {
	mu     sync.Mutex
	begins int
	ends   int
	played int
	rounds []store.RoundEventData
}

func (f *fakeHistory) BeginSession(_ context.Context, _ string, _ int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.begins++
	return nil
}

func (f *fakeHistory) EndSession(_ context.Context, _ string, played int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ends++
	f.played = played
	return nil
}

func (f *fakeHistory) AppendRound(_ context.Context, data store.RoundEventData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rounds = append(f.rounds, data)
	return nil
}

type sessionFixture struct {
	session *Session
	choreo  *fakeChoreo
	lift    *fakeLift
	speaker *speech.MockSpeaker
	history *fakeHistory
	out     *bytes.Buffer
}

func newTestSession(t *testing.T, rounds int, choreo *fakeChoreo, opponent *fakeOpponent) *sessionFixture {
	t.Helper()
	speaker := &speech.MockSpeaker{}
	lift := &fakeLift{}
	history := &fakeHistory{}
	out := &bytes.Buffer{}

	round := NewRound(choreo, speaker, opponent, rand.New(rand.NewSource(1)), out, zap.NewNop())
	cfg := SessionConfig{Rounds: rounds, PreRoundLiftHeight: 0.5}
	session, err := NewSession(cfg, round, choreo, lift, speaker, history, out, zap.NewNop())
	require.NoError(t, err)

	return &sessionFixture{
		session: session,
		choreo:  choreo,
		lift:    lift,
		speaker: speaker,
		history: history,
		out:     out,
	}
}

func TestNewSession_RejectsZeroRounds(t *testing.T) {
	_, err := NewSession(SessionConfig{Rounds: 0}, nil, nil, nil, nil, nil, nil, zap.NewNop())
	require.Error(t, err)
}

func TestSession_ResetThenRoundCycles(t *testing.T) {
	const rounds = 3
	opponent := &fakeOpponent{moves: []Move{Rock, Paper, Scissors}}
	f := newTestSession(t, rounds, &fakeChoreo{}, opponent)

	require.NoError(t, f.session.Run(context.Background()))

	// Every round is preceded by a lift re-home and a Reset commit.
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, f.lift.heights)

	var resets, moves int
	for _, g := range f.choreo.gestures {
		if g == gesture.Reset {
			resets++
		} else {
			moves++
		}
	}
	assert.Equal(t, rounds, resets)
	assert.Equal(t, rounds, moves)

	// Reset always lands before the round's own gesture commit.
	for i := 0; i < len(f.choreo.gestures); i += 2 {
		assert.Equal(t, gesture.Reset, f.choreo.gestures[i], "commit %d", i)
	}

	assert.Len(t, f.history.rounds, rounds)
	assert.Equal(t, 1, f.history.begins)
	assert.Equal(t, 1, f.history.ends)
	assert.Equal(t, rounds, f.history.played)
	assert.Contains(t, f.speaker.Spoken(), "Thanks for playing!")
	assert.Contains(t, f.out.String(), "Round 2")
}

func TestSession_SingleRoundSkipsFarewellAndHeader(t *testing.T) {
	opponent := &fakeOpponent{moves: []Move{Rock}}
	f := newTestSession(t, 1, &fakeChoreo{}, opponent)

	require.NoError(t, f.session.Run(context.Background()))

	assert.NotContains(t, f.speaker.Spoken(), "Thanks for playing!")
	assert.NotContains(t, f.out.String(), "Round 1")
}

func TestSession_ActuatorFaultAbortsRemainingRounds(t *testing.T) {
	fault := errors.New("wrist stalled")
	// Commits run reset, move, reset, move, ... Failing the 4th commit
	// faults round 2's gesture commit.
	choreo := &fakeChoreo{commitErr: fault, failAtCommit: 4}
	opponent := &fakeOpponent{moves: []Move{Rock, Paper, Scissors}}
	f := newTestSession(t, 3, choreo, opponent)

	err := f.session.Run(context.Background())
	require.ErrorIs(t, err, fault)

	// Round 1 completed, round 2 faulted, round 3 never started.
	assert.Len(t, f.history.rounds, 1)
	assert.Equal(t, 1, f.history.played)
	// Teardown recording still ran exactly once.
	assert.Equal(t, 1, f.history.ends)
}

func TestSession_CancellationSkipsRemainingRounds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	opponent := &fakeOpponent{moves: []Move{Rock, Paper, Scissors}, cancelAfter: 1, cancel: cancel}
	f := newTestSession(t, 3, &fakeChoreo{}, opponent)

	require.NoError(t, f.session.Run(ctx))

	// Round 1 completed; rounds 2 and 3 were skipped.
	assert.Len(t, f.history.rounds, 1)
	assert.Equal(t, 1, opponent.calls)

	// Farewell attempted, teardown recorded once.
	assert.Contains(t, f.speaker.Spoken(), "Game interrupted. Goodbye!")
	assert.Contains(t, f.out.String(), "Game interrupted by user")
	assert.Equal(t, 1, f.history.ends)
	assert.NotContains(t, f.speaker.Spoken(), "Thanks for playing!")
}

func TestSession_NilHistoryIsAllowed(t *testing.T) {
	opponent := &fakeOpponent{moves: []Move{Rock}}
	speaker := &speech.MockSpeaker{}
	out := &bytes.Buffer{}
	choreo := &fakeChoreo{}
	round := NewRound(choreo, speaker, opponent, rand.New(rand.NewSource(1)), out, zap.NewNop())

	session, err := NewSession(SessionConfig{Rounds: 1, PreRoundLiftHeight: 0.5}, round, choreo, &fakeLift{}, speaker, nil, out, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, session.Run(context.Background()))
}
