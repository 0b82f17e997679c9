package vehicle

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeVehicle answers every request line with the next scripted result. An
// empty result means the request is left unanswered.
type fakeVehicle struct {
	listener net.Listener
	results  chan string
	mu       sync.Mutex
	requests []Request
}

func startFakeVehicle(t *testing.T) (*fakeVehicle, string) {
	t.Helper()

	socketName := filepath.Join(t.TempDir(), "vehicle.sock")
	listener, err := net.Listen("unix", socketName)
	require.NoError(t, err)

	v := &fakeVehicle{
		listener: listener,
		results:  make(chan string, 16),
	}
	t.Cleanup(func() { listener.Close() })

	go v.serve()
	return v, socketName
}

func (v *fakeVehicle) serve() {
	for {
		conn, err := v.listener.Accept()
		if err != nil {
			return
		}
		go v.handle(conn)
	}
}

func (v *fakeVehicle) handle(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return
		}

		var rq Request
		if err := json.Unmarshal(line, &rq); err != nil {
			return
		}
		v.mu.Lock()
		v.requests = append(v.requests, rq)
		v.mu.Unlock()

		result := <-v.results
		if result == "" {
			continue
		}

		data, _ := json.Marshal(&Response{Result: result})
		if _, err := conn.Write(append(data, '\n')); err != nil {
			return
		}
	}
}

func (v *fakeVehicle) receivedRequests() []Request {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Request(nil), v.requests...)
}

func newTestAdapter(socketName string, queueSize int, ioTimeout time.Duration) *Adapter {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	return NewAdapter(socketName, queueSize, ioTimeout, &logger)
}

func runAdapter(t *testing.T, a *Adapter) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		a.Run()
	}()

	t.Cleanup(func() {
		a.Stop()
		<-done
	})
}

func waitResult(t *testing.T, results <-chan mission.Result) mission.Result {
	t.Helper()

	select {
	case r := <-results:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("callback was not invoked")
		return mission.ResultUnknown
	}
}

func resultChan() (chan mission.Result, mission.ResultCallback) {
	results := make(chan mission.Result, 1)
	return results, func(r mission.Result) { results <- r }
}

func TestUploadMissionRoundTrip(t *testing.T) {
	v, socketName := startFakeVehicle(t)
	a := newTestAdapter(socketName, 4, time.Second)
	runAdapter(t, a)

	items := []mission.MissionItem{
		{LatitudeDeg: 41.848695, LongitudeDeg: 75.132751, RelativeAltitudeM: 50.4, SpeedMS: 8.3,
			GimbalPitchDeg: 45.2, GimbalYawDeg: 90.3},
		{LatitudeDeg: 46.522626, LongitudeDeg: 6.635356, RelativeAltitudeM: 76.2, SpeedMS: 6.0,
			IsFlyThrough: true, CameraAction: mission.CameraActionTakePhoto},
	}

	v.results <- "SUCCESS"
	results, callback := resultChan()
	a.UploadMissionAsync(items, callback)
	assert.Equal(t, mission.ResultSuccess, waitResult(t, results))

	v.results <- "NO_MISSION_AVAILABLE"
	results, callback = resultChan()
	a.StartMissionAsync(callback)
	assert.Equal(t, mission.ResultNoMissionAvailable, waitResult(t, results))

	requests := v.receivedRequests()
	require.Len(t, requests, 2)
	assert.Equal(t, cmdUploadMission, requests[0].Cmd)
	assert.Equal(t, items, requests[0].MissionItems)
	assert.Equal(t, cmdStartMission, requests[1].Cmd)
	assert.Empty(t, requests[1].MissionItems)
}

func TestUnknownResultName(t *testing.T) {
	v, socketName := startFakeVehicle(t)
	a := newTestAdapter(socketName, 4, time.Second)
	runAdapter(t, a)

	v.results <- "FLYING_SAUCER"
	results, callback := resultChan()
	a.StartMissionAsync(callback)
	assert.Equal(t, mission.ResultUnknown, waitResult(t, results))
}

func TestConnectFailure(t *testing.T) {
	a := newTestAdapter(filepath.Join(t.TempDir(), "absent.sock"), 4, time.Second)
	runAdapter(t, a)

	results, callback := resultChan()
	a.StartMissionAsync(callback)
	assert.Equal(t, mission.ResultError, waitResult(t, results))
}

func TestResponseTimeoutReconnects(t *testing.T) {
	v, socketName := startFakeVehicle(t)
	a := newTestAdapter(socketName, 4, 50*time.Millisecond)
	runAdapter(t, a)

	v.results <- ""
	results, callback := resultChan()
	a.StartMissionAsync(callback)
	assert.Equal(t, mission.ResultTimeout, waitResult(t, results))

	v.results <- "SUCCESS"
	results, callback = resultChan()
	a.StartMissionAsync(callback)
	assert.Equal(t, mission.ResultSuccess, waitResult(t, results))
}

func TestBusyWhenQueueIsFull(t *testing.T) {
	a := newTestAdapter("unused.sock", 1, time.Second)

	queued, queuedCallback := resultChan()
	a.StartMissionAsync(queuedCallback)

	results, callback := resultChan()
	a.StartMissionAsync(callback)
	assert.Equal(t, mission.ResultBusy, waitResult(t, results))

	select {
	case r := <-queued:
		t.Fatalf("queued command completed with %s before Run", r)
	default:
	}
}

func TestErrorAfterStop(t *testing.T) {
	a := newTestAdapter("unused.sock", 4, time.Second)

	queued, queuedCallback := resultChan()
	a.UploadMissionAsync(nil, queuedCallback)

	a.Stop()
	a.Run()

	assert.Equal(t, mission.ResultError, waitResult(t, queued))

	results, callback := resultChan()
	a.StartMissionAsync(callback)
	assert.Equal(t, mission.ResultError, waitResult(t, results))
}

func TestDeadlineFailureDropsConnection(t *testing.T) {
	a := newTestAdapter("unused.sock", 4, time.Second)

	local, remote := net.Pipe()
	defer remote.Close()
	local.Close()

	a.conn = local
	a.reader = bufio.NewReader(local)

	assert.Equal(t, mission.ResultError, a.execute(&cmd{cmd: cmdStartMission}))
	assert.Nil(t, a.conn)
}
