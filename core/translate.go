package core

import (
	"fmt"

	"github.com/moosethebrown/mission-net-bridge/mission"
	"github.com/moosethebrown/mission-net-bridge/rpc"
)

// translateMission never returns nil; an absent mission is an empty one.
func translateMission(rpcMission *rpc.Mission) []mission.MissionItem {
	rpcItems := rpcMission.GetMissionItems()
	items := make([]mission.MissionItem, 0, len(rpcItems))

	for _, rpcItem := range rpcItems {
		items = append(items, translateMissionItem(rpcItem))
	}

	return items
}

func translateMissionItem(rpcItem *rpc.MissionItem) mission.MissionItem {
	return mission.MissionItem{
		LatitudeDeg:       rpcItem.GetLatitudeDeg(),
		LongitudeDeg:      rpcItem.GetLongitudeDeg(),
		RelativeAltitudeM: rpcItem.GetRelativeAltitudeM(),
		SpeedMS:           rpcItem.GetSpeedMS(),
		IsFlyThrough:      rpcItem.GetIsFlyThrough(),
		GimbalPitchDeg:    rpcItem.GetGimbalPitchDeg(),
		GimbalYawDeg:      rpcItem.GetGimbalYawDeg(),
		CameraAction:      translateCameraAction(rpcItem.GetCameraAction()),
	}
}

// TranslateMissionToRPC builds the wire form of a mission.
func TranslateMissionToRPC(items []mission.MissionItem) *rpc.Mission {
	rpcMission := &rpc.Mission{
		MissionItems: make([]*rpc.MissionItem, 0, len(items)),
	}

	for _, item := range items {
		rpcMission.MissionItems = append(rpcMission.MissionItems, translateMissionItemToRPC(item))
	}

	return rpcMission
}

func translateMissionItemToRPC(item mission.MissionItem) *rpc.MissionItem {
	return &rpc.MissionItem{
		LatitudeDeg:       item.LatitudeDeg,
		LongitudeDeg:      item.LongitudeDeg,
		RelativeAltitudeM: item.RelativeAltitudeM,
		SpeedMS:           item.SpeedMS,
		IsFlyThrough:      item.IsFlyThrough,
		GimbalPitchDeg:    item.GimbalPitchDeg,
		GimbalYawDeg:      item.GimbalYawDeg,
		CameraAction:      translateCameraActionToRPC(item.CameraAction),
	}
}

// translateCameraAction maps tags outside the known set to CameraActionNone.
func translateCameraAction(action rpc.MissionItem_CameraAction) mission.CameraAction {
	switch action {
	case rpc.MissionItem_TAKE_PHOTO:
		return mission.CameraActionTakePhoto
	case rpc.MissionItem_START_PHOTO_INTERVAL:
		return mission.CameraActionStartPhotoInterval
	case rpc.MissionItem_STOP_PHOTO_INTERVAL:
		return mission.CameraActionStopPhotoInterval
	case rpc.MissionItem_START_VIDEO:
		return mission.CameraActionStartVideo
	case rpc.MissionItem_STOP_VIDEO:
		return mission.CameraActionStopVideo
	case rpc.MissionItem_NONE:
		fallthrough
	default:
		return mission.CameraActionNone
	}
}

func translateCameraActionToRPC(action mission.CameraAction) rpc.MissionItem_CameraAction {
	switch action {
	case mission.CameraActionTakePhoto:
		return rpc.MissionItem_TAKE_PHOTO
	case mission.CameraActionStartPhotoInterval:
		return rpc.MissionItem_START_PHOTO_INTERVAL
	case mission.CameraActionStopPhotoInterval:
		return rpc.MissionItem_STOP_PHOTO_INTERVAL
	case mission.CameraActionStartVideo:
		return rpc.MissionItem_START_VIDEO
	case mission.CameraActionStopVideo:
		return rpc.MissionItem_STOP_VIDEO
	case mission.CameraActionNone:
		fallthrough
	default:
		return rpc.MissionItem_NONE
	}
}

// translateResult panics on a value outside the closed set of results: that
// is a programming error, not a result to report.
func translateResult(result mission.Result) rpc.MissionResult_Result {
	switch result {
	case mission.ResultUnknown:
		return rpc.MissionResult_UNKNOWN
	case mission.ResultSuccess:
		return rpc.MissionResult_SUCCESS
	case mission.ResultError:
		return rpc.MissionResult_ERROR
	case mission.ResultTooManyMissionItems:
		return rpc.MissionResult_TOO_MANY_MISSION_ITEMS
	case mission.ResultBusy:
		return rpc.MissionResult_BUSY
	case mission.ResultTimeout:
		return rpc.MissionResult_TIMEOUT
	case mission.ResultInvalidArgument:
		return rpc.MissionResult_INVALID_ARGUMENT
	case mission.ResultUnsupported:
		return rpc.MissionResult_UNSUPPORTED
	case mission.ResultNoMissionAvailable:
		return rpc.MissionResult_NO_MISSION_AVAILABLE
	case mission.ResultFailedToOpenPlan:
		return rpc.MissionResult_FAILED_TO_OPEN_PLAN
	case mission.ResultFailedToParsePlan:
		return rpc.MissionResult_FAILED_TO_PARSE_PLAN
	case mission.ResultUnsupportedMissionCmd:
		return rpc.MissionResult_UNSUPPORTED_MISSION_CMD
	}

	panic(fmt.Sprintf("core: untranslatable mission result %d", int(result)))
}
