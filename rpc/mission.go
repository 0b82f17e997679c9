// Package rpc defines the wire representation of the mission service. Every
// message field may be absent; getters are nil-safe and return zero values.
package rpc

import (
	"encoding/json"
	"strconv"
)

type MissionItem_CameraAction int32

const (
	MissionItem_NONE                 MissionItem_CameraAction = 0
	MissionItem_TAKE_PHOTO           MissionItem_CameraAction = 1
	MissionItem_START_PHOTO_INTERVAL MissionItem_CameraAction = 2
	MissionItem_STOP_PHOTO_INTERVAL  MissionItem_CameraAction = 3
	MissionItem_START_VIDEO          MissionItem_CameraAction = 4
	MissionItem_STOP_VIDEO           MissionItem_CameraAction = 5
)

var MissionItem_CameraAction_name = map[int32]string{
	0: "NONE",
	1: "TAKE_PHOTO",
	2: "START_PHOTO_INTERVAL",
	3: "STOP_PHOTO_INTERVAL",
	4: "START_VIDEO",
	5: "STOP_VIDEO",
}

var MissionItem_CameraAction_value = map[string]int32{
	"NONE":                 0,
	"TAKE_PHOTO":           1,
	"START_PHOTO_INTERVAL": 2,
	"STOP_PHOTO_INTERVAL":  3,
	"START_VIDEO":          4,
	"STOP_VIDEO":           5,
}

func (x MissionItem_CameraAction) String() string {
	if name, ok := MissionItem_CameraAction_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}

func (x MissionItem_CameraAction) MarshalJSON() ([]byte, error) {
	if name, ok := MissionItem_CameraAction_name[int32(x)]; ok {
		return json.Marshal(name)
	}
	return json.Marshal(int32(x))
}

// UnmarshalJSON accepts either the action name or its number. Numbers are
// kept as sent, even outside the known set.
func (x *MissionItem_CameraAction) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*x = MissionItem_CameraAction(MissionItem_CameraAction_value[name])
		return nil
	}

	var num int32
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*x = MissionItem_CameraAction(num)
	return nil
}

type MissionItem struct {
	LatitudeDeg       float64                  `json:"latitudeDeg,omitempty"`
	LongitudeDeg      float64                  `json:"longitudeDeg,omitempty"`
	RelativeAltitudeM float32                  `json:"relativeAltitudeM,omitempty"`
	SpeedMS           float32                  `json:"speedMS,omitempty"`
	IsFlyThrough      bool                     `json:"isFlyThrough,omitempty"`
	GimbalPitchDeg    float32                  `json:"gimbalPitchDeg,omitempty"`
	GimbalYawDeg      float32                  `json:"gimbalYawDeg,omitempty"`
	CameraAction      MissionItem_CameraAction `json:"cameraAction,omitempty"`
}

func (m *MissionItem) GetLatitudeDeg() float64 {
	if m != nil {
		return m.LatitudeDeg
	}
	return 0
}

func (m *MissionItem) GetLongitudeDeg() float64 {
	if m != nil {
		return m.LongitudeDeg
	}
	return 0
}

func (m *MissionItem) GetRelativeAltitudeM() float32 {
	if m != nil {
		return m.RelativeAltitudeM
	}
	return 0
}

func (m *MissionItem) GetSpeedMS() float32 {
	if m != nil {
		return m.SpeedMS
	}
	return 0
}

func (m *MissionItem) GetIsFlyThrough() bool {
	if m != nil {
		return m.IsFlyThrough
	}
	return false
}

func (m *MissionItem) GetGimbalPitchDeg() float32 {
	if m != nil {
		return m.GimbalPitchDeg
	}
	return 0
}

func (m *MissionItem) GetGimbalYawDeg() float32 {
	if m != nil {
		return m.GimbalYawDeg
	}
	return 0
}

func (m *MissionItem) GetCameraAction() MissionItem_CameraAction {
	if m != nil {
		return m.CameraAction
	}
	return MissionItem_NONE
}

type Mission struct {
	MissionItems []*MissionItem `json:"missionItems,omitempty"`
}

func (m *Mission) GetMissionItems() []*MissionItem {
	if m != nil {
		return m.MissionItems
	}
	return nil
}
