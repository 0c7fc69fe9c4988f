package speech

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func startTestNATSServer(t *testing.T) *natsserver.Server {
	t.Helper()
	opts := &natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1,
		NoLog:  true,
		NoSigs: true,
	}

	server, err := natsserver.NewServer(opts)
	require.NoError(t, err)

	go server.Start()

	if !server.ReadyForConnections(5 * time.Second) {
		t.Fatal("NATS server not ready")
	}

	t.Cleanup(func() {
		server.Shutdown()
		server.WaitForShutdown()
	})

	return server
}

func TestNATSSpeaker_PublishesUtterance(t *testing.T) {
	server := startTestNATSServer(t)
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	ch := make(chan *nats.Msg, 1)
	sub, err := nc.ChanSubscribe(SubjectSay, ch)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	speaker := NewNATSSpeaker(nc, DefaultCharDuration, zap.NewNop())
	speaker.sleep = func(time.Duration) {}

	require.NoError(t, speaker.Say(context.Background(), "Let's play!"))

	select {
	case msg := <-ch:
		var say sayMessage
		require.NoError(t, json.Unmarshal(msg.Data, &say))
		assert.Equal(t, "Let's play!", say.Text)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for utterance")
	}
}

func TestNATSSpeaker_WaitProportionalToLength(t *testing.T) {
	server := startTestNATSServer(t)
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	speaker := NewNATSSpeaker(nc, 10*time.Millisecond, zap.NewNop())

	var slept time.Duration
	speaker.sleep = func(d time.Duration) { slept = d }

	require.NoError(t, speaker.Say(context.Background(), "Rock"))
	assert.Equal(t, 40*time.Millisecond, slept)
}

func TestSayBestEffort_SwallowsFailure(t *testing.T) {
	mock := &MockSpeaker{Err: errors.New("sound daemon down")}

	// Must not panic or propagate: speech failure is cosmetic.
	SayBestEffort(context.Background(), mock, "Hello!", zap.NewNop())
	assert.Empty(t, mock.Spoken())
}

func TestMockSpeaker_RecordsInOrder(t *testing.T) {
	mock := &MockSpeaker{}
	for _, w := range []string{"Rock", "Paper", "Scissors"} {
		require.NoError(t, mock.Say(context.Background(), w))
	}
	assert.Equal(t, []string{"Rock", "Paper", "Scissors"}, mock.Spoken())
}
