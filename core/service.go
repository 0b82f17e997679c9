// Package core implements the synchronous mission service on top of the
// asynchronous device-control capability of the vehicle.
package core

import (
	"github.com/moosethebrown/mission-net-bridge/bridge"
	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/moosethebrown/mission-net-bridge/rpc"
	"github.com/rs/zerolog"
)

var _ rpc.MissionServiceServer = (*MissionService)(nil)

type MissionService struct {
	mission mission.Mission
	logger  *zerolog.Logger
}

func NewMissionService(m mission.Mission, logger *zerolog.Logger) *MissionService {
	return &MissionService{
		mission: m,
		logger:  logger,
	}
}

// UploadMission uploads the requested mission and blocks until the vehicle
// reports the outcome. It always returns nil; failures are carried by the
// result written into response.
func (s *MissionService) UploadMission(request *rpc.UploadMissionRequest,
	response *rpc.UploadMissionResponse) error {
	items := translateMission(request.GetMission())
	s.logger.Debug().Int("items", len(items)).Msg("uploading mission")

	result := bridge.Await(func(callback func(mission.Result)) {
		s.mission.UploadMissionAsync(items, callback)
	})
	s.logger.Debug().Str("result", result.String()).Msg("mission upload finished")

	if response != nil {
		response.MissionResult = &rpc.MissionResult{
			Result: translateResult(result),
		}
	}

	return nil
}

// StartMission starts the uploaded mission and blocks until the vehicle
// reports the outcome.
func (s *MissionService) StartMission(request *rpc.StartMissionRequest,
	response *rpc.StartMissionResponse) error {
	s.logger.Debug().Msg("starting mission")

	result := bridge.Await(func(callback func(mission.Result)) {
		s.mission.StartMissionAsync(callback)
	})
	s.logger.Debug().Str("result", result.String()).Msg("mission start finished")

	if response != nil {
		response.MissionResult = &rpc.MissionResult{
			Result: translateResult(result),
		}
	}

	return nil
}
