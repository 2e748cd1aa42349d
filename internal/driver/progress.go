package driver

import "time"

// Stage describes a per-file pipeline phase.
type Stage string

const (
	// StageParse covers reading, lexing and parsing.
	StageParse Stage = "parse"
	// StageFormat covers printing and the optional round-trip check.
	StageFormat Stage = "format"
	// StageWrite covers rewriting the file on disk.
	StageWrite Stage = "write"
)

// Status captures progress state within a stage.
type Status string

const (
	StatusQueued  Status = "queued"
	StatusWorking Status = "working"
	StatusDone    Status = "done"
	StatusError   Status = "error"
	// StatusCached means the cache proved the file already formatted.
	StatusCached Status = "cached"
)

// Event reports progress for a file (or for the whole run when File is empty).
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// ProgressSink consumes progress events. Implementations must be safe for
// concurrent use.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

func emit(sink ProgressSink, evt Event) {
	if sink == nil {
		return
	}
	sink.OnEvent(evt)
}

func emitQueued(sink ProgressSink, files []string) {
	for _, file := range files {
		emit(sink, Event{File: file, Stage: StageParse, Status: StatusQueued})
	}
}
