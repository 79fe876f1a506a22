package driver

// Stage identifies the phase a check run is in for one file.
type Stage uint8

const (
	StageNone Stage = iota
	StageParse
	StageRoundTrip
)

// Status is the per-file progress state.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is a progress notification emitted by CheckDir. File is empty for
// run-wide events.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

func emit(events chan<- Event, ev Event) {
	if events == nil {
		return
	}
	events <- ev
}
