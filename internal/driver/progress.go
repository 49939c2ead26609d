package driver

// Stage identifies where a file is in the normalization pipeline.
type Stage uint8

const (
	StageParse Stage = iota
	StageNormalize
	StageWrite
)

// Status is the lifecycle state reported for a file.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event is one progress notification for the UI. An empty File targets
// the run as a whole.
type Event struct {
	File   string
	Stage  Stage
	Status Status
}

func emit(ch chan<- Event, ev Event) {
	if ch != nil {
		ch <- ev
	}
}
