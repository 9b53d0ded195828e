package bloom

// EventSink is the interface for optional lifecycle observers, such as an ECS
// bridge. When set on an Engine, events are delivered synchronously from
// inside Spawn, Step and Clear.
type EventSink interface {
	EmitEvent(event Event)
}

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventSpawn     EventType = iota // entities were created by Spawn
	EventVineGrown                  // a vine stopped growing and started to fade
	EventRetire                     // entities of one kind were removed by Step
	EventClear                      // all collections were emptied
)

func (t EventType) String() string {
	switch t {
	case EventSpawn:
		return "spawn"
	case EventVineGrown:
		return "vine-grown"
	case EventRetire:
		return "retire"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event carries lifecycle data to an EventSink.
type Event struct {
	Type EventType
	Kind Kind
	// Mode is set for EventSpawn.
	Mode Mode
	// Origin is the spawn point (EventSpawn) or the vine anchor
	// (EventVineGrown).
	Origin Point
	// Count is the number of entities created, retired or evicted.
	Count int
	// Frame is the engine's step counter when the event fired.
	Frame uint64
}

// SetEventSink installs sink as the engine's event observer. Pass nil to
// detach.
func (e *Engine) SetEventSink(sink EventSink) {
	if e == nil {
		return
	}
	e.sink = sink
}

func (e *Engine) emit(ev Event) {
	if e.sink == nil {
		return
	}
	ev.Frame = e.frame
	e.sink.EmitEvent(ev)
}
