package mission

import "fmt"

type CameraAction int

const (
	CameraActionNone CameraAction = iota
	CameraActionTakePhoto
	CameraActionStartPhotoInterval
	CameraActionStopPhotoInterval
	CameraActionStartVideo
	CameraActionStopVideo
)

var cameraActionNames = map[CameraAction]string{
	CameraActionNone:               "NONE",
	CameraActionTakePhoto:          "TAKE_PHOTO",
	CameraActionStartPhotoInterval: "START_PHOTO_INTERVAL",
	CameraActionStopPhotoInterval:  "STOP_PHOTO_INTERVAL",
	CameraActionStartVideo:         "START_VIDEO",
	CameraActionStopVideo:          "STOP_VIDEO",
}

func (a CameraAction) String() string {
	if name, ok := cameraActionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("CameraAction(%d)", int(a))
}

func (a CameraAction) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText maps unknown names to CameraActionNone.
func (a *CameraAction) UnmarshalText(text []byte) error {
	*a = CameraActionNone
	for action, name := range cameraActionNames {
		if name == string(text) {
			*a = action
			break
		}
	}
	return nil
}

// MissionItem is one waypoint of a mission. Angles are in degrees, altitude
// in meters relative to takeoff, speed in m/s.
type MissionItem struct {
	LatitudeDeg       float64      `json:"latitudeDeg" yaml:"latitudeDeg"`
	LongitudeDeg      float64      `json:"longitudeDeg" yaml:"longitudeDeg"`
	RelativeAltitudeM float32      `json:"relativeAltitudeM" yaml:"relativeAltitudeM"`
	SpeedMS           float32      `json:"speedMS" yaml:"speedMS"`
	IsFlyThrough      bool         `json:"isFlyThrough" yaml:"isFlyThrough"`
	GimbalPitchDeg    float32      `json:"gimbalPitchDeg" yaml:"gimbalPitchDeg"`
	GimbalYawDeg      float32      `json:"gimbalYawDeg" yaml:"gimbalYawDeg"`
	CameraAction      CameraAction `json:"cameraAction" yaml:"cameraAction"`
}
