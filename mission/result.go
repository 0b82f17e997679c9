package mission

import "fmt"

type Result int

const (
	ResultUnknown Result = iota
	ResultSuccess
	ResultError
	ResultTooManyMissionItems
	ResultBusy
	ResultTimeout
	ResultInvalidArgument
	ResultUnsupported
	ResultNoMissionAvailable
	ResultFailedToOpenPlan
	ResultFailedToParsePlan
	ResultUnsupportedMissionCmd
)

// Results lists every Result in declaration order.
var Results = []Result{
	ResultUnknown,
	ResultSuccess,
	ResultError,
	ResultTooManyMissionItems,
	ResultBusy,
	ResultTimeout,
	ResultInvalidArgument,
	ResultUnsupported,
	ResultNoMissionAvailable,
	ResultFailedToOpenPlan,
	ResultFailedToParsePlan,
	ResultUnsupportedMissionCmd,
}

var resultNames = [...]string{
	ResultUnknown:               "UNKNOWN",
	ResultSuccess:               "SUCCESS",
	ResultError:                 "ERROR",
	ResultTooManyMissionItems:   "TOO_MANY_MISSION_ITEMS",
	ResultBusy:                  "BUSY",
	ResultTimeout:               "TIMEOUT",
	ResultInvalidArgument:       "INVALID_ARGUMENT",
	ResultUnsupported:           "UNSUPPORTED",
	ResultNoMissionAvailable:    "NO_MISSION_AVAILABLE",
	ResultFailedToOpenPlan:      "FAILED_TO_OPEN_PLAN",
	ResultFailedToParsePlan:     "FAILED_TO_PARSE_PLAN",
	ResultUnsupportedMissionCmd: "UNSUPPORTED_MISSION_CMD",
}

func (r Result) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return fmt.Sprintf("Result(%d)", int(r))
	}
	return resultNames[r]
}

// ParseResult returns the Result named name and false if there is none.
func ParseResult(name string) (Result, bool) {
	for r, n := range resultNames {
		if n == name {
			return Result(r), true
		}
	}
	return ResultUnknown, false
}
