// Package simvehicle provides an in-process vehicle for running the bridge
// without hardware.
package simvehicle

import (
	"sync"
	"time"

	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/rs/zerolog"
)

var _ mission.Mission = (*Simulator)(nil)

// Simulator completes every operation after a fixed latency, from a timer
// goroutine. Only one operation may be in flight; overlapping ones are
// rejected with ResultBusy.
type Simulator struct {
	latency    time.Duration
	maxItems   int
	mu         sync.Mutex
	busy       bool
	items      []mission.MissionItem
	hasMission bool
	running    bool
	logger     *zerolog.Logger
}

func NewSimulator(latency time.Duration, maxItems int, logger *zerolog.Logger) *Simulator {
	return &Simulator{
		latency:  latency,
		maxItems: maxItems,
		logger:   logger,
	}
}

func (s *Simulator) UploadMissionAsync(items []mission.MissionItem, callback mission.ResultCallback) {
	if !s.begin(callback) {
		return
	}

	items = append([]mission.MissionItem(nil), items...)

	time.AfterFunc(s.latency, func() {
		s.mu.Lock()
		result := mission.ResultSuccess
		if len(items) > s.maxItems {
			result = mission.ResultTooManyMissionItems
		} else {
			s.items = items
			s.hasMission = len(items) > 0
			s.running = false
		}
		s.busy = false
		s.mu.Unlock()

		s.logger.Debug().Int("items", len(items)).Str("result", result.String()).Msg("upload")
		callback(result)
	})
}

func (s *Simulator) StartMissionAsync(callback mission.ResultCallback) {
	if !s.begin(callback) {
		return
	}

	time.AfterFunc(s.latency, func() {
		s.mu.Lock()
		result := mission.ResultSuccess
		if !s.hasMission {
			result = mission.ResultNoMissionAvailable
		} else {
			s.running = true
		}
		s.busy = false
		s.mu.Unlock()

		s.logger.Debug().Str("result", result.String()).Msg("start")
		callback(result)
	})
}

// Mission returns the last accepted mission and whether it has been started.
func (s *Simulator) Mission() ([]mission.MissionItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]mission.MissionItem(nil), s.items...), s.running
}

func (s *Simulator) begin(callback mission.ResultCallback) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		go callback(mission.ResultBusy)
		return false
	}

	s.busy = true
	return true
}
