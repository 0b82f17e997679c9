package vehicle

import "github.com/moosethebrown/mission-net-bridge/mission"

const (
	rqTypeCmd = "cmd"
)

const (
	cmdUploadMission = "upload_mission"
	cmdStartMission  = "start_mission"
)

// Request is one newline-terminated JSON line sent to the vehicle daemon.
type Request struct {
	Type         string                `json:"type"`
	Cmd          string                `json:"cmd"`
	MissionItems []mission.MissionItem `json:"missionItems,omitempty"`
}

// Response carries the result name reported by the vehicle daemon.
type Response struct {
	Result string `json:"result"`
}
