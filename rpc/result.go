package rpc

import (
	"encoding/json"
	"strconv"
)

type MissionResult_Result int32

const (
	MissionResult_UNKNOWN                 MissionResult_Result = 0
	MissionResult_SUCCESS                 MissionResult_Result = 1
	MissionResult_ERROR                   MissionResult_Result = 2
	MissionResult_TOO_MANY_MISSION_ITEMS  MissionResult_Result = 3
	MissionResult_BUSY                    MissionResult_Result = 4
	MissionResult_TIMEOUT                 MissionResult_Result = 5
	MissionResult_INVALID_ARGUMENT        MissionResult_Result = 6
	MissionResult_UNSUPPORTED             MissionResult_Result = 7
	MissionResult_NO_MISSION_AVAILABLE    MissionResult_Result = 8
	MissionResult_FAILED_TO_OPEN_PLAN     MissionResult_Result = 9
	MissionResult_FAILED_TO_PARSE_PLAN    MissionResult_Result = 10
	MissionResult_UNSUPPORTED_MISSION_CMD MissionResult_Result = 11
)

// Wire names are published and must never be renamed or reused.
var MissionResult_Result_name = map[int32]string{
	0:  "UNKNOWN",
	1:  "SUCCESS",
	2:  "ERROR",
	3:  "TOO_MANY_MISSION_ITEMS",
	4:  "BUSY",
	5:  "TIMEOUT",
	6:  "INVALID_ARGUMENT",
	7:  "UNSUPPORTED",
	8:  "NO_MISSION_AVAILABLE",
	9:  "FAILED_TO_OPEN_PLAN",
	10: "FAILED_TO_PARSE_PLAN",
	11: "UNSUPPORTED_MISSION_CMD",
}

var MissionResult_Result_value = map[string]int32{
	"UNKNOWN":                 0,
	"SUCCESS":                 1,
	"ERROR":                   2,
	"TOO_MANY_MISSION_ITEMS":  3,
	"BUSY":                    4,
	"TIMEOUT":                 5,
	"INVALID_ARGUMENT":        6,
	"UNSUPPORTED":             7,
	"NO_MISSION_AVAILABLE":    8,
	"FAILED_TO_OPEN_PLAN":     9,
	"FAILED_TO_PARSE_PLAN":    10,
	"UNSUPPORTED_MISSION_CMD": 11,
}

func (x MissionResult_Result) String() string {
	if name, ok := MissionResult_Result_name[int32(x)]; ok {
		return name
	}
	return strconv.Itoa(int(x))
}

func (x MissionResult_Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func (x *MissionResult_Result) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	*x = MissionResult_Result(MissionResult_Result_value[name])
	return nil
}

type MissionResult struct {
	Result MissionResult_Result `json:"result"`
}

func (m *MissionResult) GetResult() MissionResult_Result {
	if m != nil {
		return m.Result
	}
	return MissionResult_UNKNOWN
}
