package rpc

// Method names carried in the RPC envelope.
const (
	MethodUploadMission = "upload_mission"
	MethodStartMission  = "start_mission"
)

type UploadMissionRequest struct {
	Mission *Mission `json:"mission,omitempty"`
}

func (m *UploadMissionRequest) GetMission() *Mission {
	if m != nil {
		return m.Mission
	}
	return nil
}

type UploadMissionResponse struct {
	MissionResult *MissionResult `json:"missionResult,omitempty"`
}

func (m *UploadMissionResponse) GetMissionResult() *MissionResult {
	if m != nil {
		return m.MissionResult
	}
	return nil
}

type StartMissionRequest struct{}

type StartMissionResponse struct {
	MissionResult *MissionResult `json:"missionResult,omitempty"`
}

func (m *StartMissionResponse) GetMissionResult() *MissionResult {
	if m != nil {
		return m.MissionResult
	}
	return nil
}

// MissionServiceServer is the synchronous mission service exposed over the
// network. A nil request means an empty request; a nil response means the
// caller does not want the result recorded.
type MissionServiceServer interface {
	UploadMission(*UploadMissionRequest, *UploadMissionResponse) error
	StartMission(*StartMissionRequest, *StartMissionResponse) error
}
