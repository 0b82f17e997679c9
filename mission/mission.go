// Package mission holds the domain model of a vehicle mission and the
// interface of the device-control capability that executes it.
package mission

// ResultCallback receives the outcome of an asynchronous mission operation.
type ResultCallback func(Result)

// Mission is the asynchronous device-control capability of a vehicle.
//
// Both methods return immediately. The callback is invoked exactly once, at
// some later time, on a goroutine chosen by the implementation.
type Mission interface {
	UploadMissionAsync(items []MissionItem, callback ResultCallback)
	StartMissionAsync(callback ResultCallback)
}
