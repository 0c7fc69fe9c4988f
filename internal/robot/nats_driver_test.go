package robot

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	natsserver "github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// startTestNATSServer starts an embedded NATS server for testing.
func startTestNATSServer(t *testing.T) *natsserver.Server {
	t.Helper()
	opts := &natsserver.Options{
		Host:   "127.0.0.1",
		Port:   -1, // Random port
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

// fakeDriverDaemon answers driver subjects like the real daemon would.
// It records committed batches and reports a fixed lift height.
type fakeDriverDaemon struct {
	commits chan map[string]float64
	reject  bool
}

func startFakeDriverDaemon(t *testing.T, nc *nats.Conn, reject bool) *fakeDriverDaemon {
	t.Helper()
	d := &fakeDriverDaemon{commits: make(chan map[string]float64, 16), reject: reject}

	subCommit, err := nc.Subscribe(SubjectJointsCommit, func(msg *nats.Msg) {
		var req commitRequest
		if err := json.Unmarshal(msg.Data, &req); err != nil {
			return
		}
		var reply commitReply
		if d.reject {
			reply = commitReply{OK: false, Error: "joint stalled"}
		} else {
			d.commits <- req.Targets
			reply = commitReply{OK: true}
		}
		data, _ := json.Marshal(reply)
		_ = msg.Respond(data)
	})
	require.NoError(t, err)

	subHeight, err := nc.Subscribe(SubjectLiftHeight, func(msg *nats.Msg) {
		data, _ := json.Marshal(liftHeightReply{Height: 0.42})
		_ = msg.Respond(data)
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = subCommit.Unsubscribe()
		_ = subHeight.Unsubscribe()
	})
	return d
}

func TestNATSDriver_CommitAndHeight(t *testing.T) {
	server := startTestNATSServer(t)
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	daemon := startFakeDriverDaemon(t, nc, false)

	driver, err := NewNATSDriver(nc, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	height, err := driver.LiftHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.42, height)

	targets := map[string]float64{JointWristYaw: 1.57, JointWristRoll: 0.0}
	require.NoError(t, driver.CommitJointTargets(ctx, targets))

	select {
	case got := <-daemon.commits:
		assert.Equal(t, targets, got)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for commit at daemon")
	}
}

func TestNATSDriver_RejectedCommand(t *testing.T) {
	server := startTestNATSServer(t)
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	startFakeDriverDaemon(t, nc, true)

	driver, err := NewNATSDriver(nc, zap.NewNop())
	require.NoError(t, err)

	err = driver.CommitJointTargets(context.Background(), map[string]float64{JointGripper: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "joint stalled")
}

func TestNewNATSDriver_DaemonUnreachable(t *testing.T) {
	server := startTestNATSServer(t)
	nc, err := nats.Connect(server.ClientURL())
	require.NoError(t, err)
	defer nc.Close()

	// No daemon subscribed: the init probe must fail fast.
	_, err = NewNATSDriver(nc, zap.NewNop())
	require.Error(t, err)

	var initErr *InitError
	require.ErrorAs(t, err, &initErr)
}
