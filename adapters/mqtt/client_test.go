package mqtt

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/moosethebrown/mission-net-bridge/adapters/simvehicle"
	"github.com/moosethebrown/mission-net-bridge/core"
	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/moosethebrown/mission-net-bridge/rpc"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient() *Client {
	logger := zerolog.Nop()
	return NewClient(testMqttConfig(), &logger)
}

// loopback delivers client requests straight to the adapter and adapter
// responses straight back to the client, in place of a broker.
func loopback(t *testing.T, c *Client, a *Adapter) {
	c.publish = func(payload []byte) error {
		a.handleMessage(payload)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		for {
			select {
			case data := <-a.responseChan:
				c.handleResponse(data)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func TestClientAgainstSimulatedVehicle(t *testing.T) {
	logger := zerolog.Nop()
	sim := simvehicle.NewSimulator(time.Millisecond, 10, &logger)
	a := newTestAdapter(testMqttConfig(), core.NewMissionService(sim, &logger))
	c := newTestClient()
	loopback(t, c, a)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start, err := c.StartMission(ctx, &rpc.StartMissionRequest{})
	require.NoError(t, err)
	assert.Equal(t, rpc.MissionResult_NO_MISSION_AVAILABLE, start.GetMissionResult().GetResult())

	items := []mission.MissionItem{
		{LatitudeDeg: 48.142652, LongitudeDeg: 3.626236, RelativeAltitudeM: 56.9, SpeedMS: 5.4,
			GimbalPitchDeg: 14.6, GimbalYawDeg: 31.5, CameraAction: mission.CameraActionStartVideo},
		{LatitudeDeg: 11.142334, LongitudeDeg: 4.622234, RelativeAltitudeM: 65.3, SpeedMS: 5.7,
			IsFlyThrough: true, GimbalPitchDeg: 17.2, GimbalYawDeg: 90.0, CameraAction: mission.CameraActionStopVideo},
	}

	upload, err := c.UploadMission(ctx, &rpc.UploadMissionRequest{Mission: core.TranslateMissionToRPC(items)})
	require.NoError(t, err)
	assert.Equal(t, rpc.MissionResult_SUCCESS, upload.GetMissionResult().GetResult())

	uploaded, _ := sim.Mission()
	assert.Equal(t, items, uploaded)

	start, err = c.StartMission(ctx, &rpc.StartMissionRequest{})
	require.NoError(t, err)
	assert.Equal(t, rpc.MissionResult_SUCCESS, start.GetMissionResult().GetResult())

	upload, err = c.UploadMission(ctx, &rpc.UploadMissionRequest{
		Mission: core.TranslateMissionToRPC(make([]mission.MissionItem, 11)),
	})
	require.NoError(t, err)
	assert.Equal(t, rpc.MissionResult_TOO_MANY_MISSION_ITEMS, upload.GetMissionResult().GetResult())
}

func TestClientTransportError(t *testing.T) {
	c := newTestClient()
	c.publish = func(payload []byte) error {
		var rq Request
		require.NoError(t, json.Unmarshal(payload, &rq))
		assert.NotEmpty(t, rq.ID)

		data, _ := json.Marshal(&Response{ID: rq.ID, Method: rq.Method, Error: errTimeout})
		go c.handleResponse(data)
		return nil
	}

	_, err := c.StartMission(context.Background(), &rpc.StartMissionRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start_mission: timeout")
}

func TestClientContextExpires(t *testing.T) {
	c := newTestClient()
	c.publish = func(payload []byte) error { return nil }

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.UploadMission(ctx, nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	c.mu.Lock()
	assert.Empty(t, c.pending)
	c.mu.Unlock()

	// a late response is dropped without blocking
	c.handleResponse([]byte(`{"id":"gone","method":"upload_mission","result":{}}`))
}
