package core

import (
	"testing"

	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/moosethebrown/mission-net-bridge/rpc"
	"github.com/stretchr/testify/assert"
)

type resultPair struct {
	name   string
	result mission.Result
}

func generateResultPairs() []resultPair {
	return []resultPair{
		{"UNKNOWN", mission.ResultUnknown},
		{"SUCCESS", mission.ResultSuccess},
		{"ERROR", mission.ResultError},
		{"TOO_MANY_MISSION_ITEMS", mission.ResultTooManyMissionItems},
		{"BUSY", mission.ResultBusy},
		{"TIMEOUT", mission.ResultTimeout},
		{"INVALID_ARGUMENT", mission.ResultInvalidArgument},
		{"UNSUPPORTED", mission.ResultUnsupported},
		{"NO_MISSION_AVAILABLE", mission.ResultNoMissionAvailable},
		{"FAILED_TO_OPEN_PLAN", mission.ResultFailedToOpenPlan},
		{"FAILED_TO_PARSE_PLAN", mission.ResultFailedToParsePlan},
		{"UNSUPPORTED_MISSION_CMD", mission.ResultUnsupportedMissionCmd},
	}
}

func TestTranslateResult(t *testing.T) {
	pairs := generateResultPairs()
	assert.Len(t, pairs, len(mission.Results))

	for _, pair := range pairs {
		t.Run(pair.name, func(t *testing.T) {
			assert.Equal(t, pair.name, translateResult(pair.result).String())
		})
	}
}

func TestTranslateResultNamesMatchDomainNames(t *testing.T) {
	seen := make(map[string]bool)

	for _, result := range mission.Results {
		name := translateResult(result).String()
		assert.Equal(t, result.String(), name)
		assert.False(t, seen[name], "duplicate wire name %s", name)
		seen[name] = true
	}

	assert.Len(t, rpc.MissionResult_Result_name, len(mission.Results))
}

func TestTranslateResultPanicsOnUnknownValue(t *testing.T) {
	assert.Panics(t, func() {
		translateResult(mission.Result(len(mission.Results)))
	})
}

func TestCameraActionRoundTrip(t *testing.T) {
	for value := range rpc.MissionItem_CameraAction_name {
		action := rpc.MissionItem_CameraAction(value)
		assert.Equal(t, action, translateCameraActionToRPC(translateCameraAction(action)))
	}

	for _, action := range []mission.CameraAction{
		mission.CameraActionNone,
		mission.CameraActionTakePhoto,
		mission.CameraActionStartPhotoInterval,
		mission.CameraActionStopPhotoInterval,
		mission.CameraActionStartVideo,
		mission.CameraActionStopVideo,
	} {
		assert.Equal(t, action, translateCameraAction(translateCameraActionToRPC(action)))
	}
}

func TestUnrecognizedCameraActionIsNone(t *testing.T) {
	assert.Equal(t, mission.CameraActionNone, translateCameraAction(rpc.MissionItem_CameraAction(6)))
	assert.Equal(t, mission.CameraActionNone, translateCameraAction(rpc.MissionItem_CameraAction(-1)))
}

func TestTranslateMissionDefaults(t *testing.T) {
	items := translateMission(nil)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items = translateMission(&rpc.Mission{})
	assert.NotNil(t, items)
	assert.Empty(t, items)

	items = translateMission(&rpc.Mission{MissionItems: []*rpc.MissionItem{nil}})
	assert.Equal(t, []mission.MissionItem{{}}, items)
}

func TestTranslateMissionToRPCRoundTrip(t *testing.T) {
	items := generateListOfMultipleItems()
	assert.Equal(t, items, translateMission(TranslateMissionToRPC(items)))
}
