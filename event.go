package meshwarp

// EventType identifies a kind of warp event.
type EventType uint8

const (
	EventRebuild   EventType = iota // grid regenerated from text measurements
	EventRescale                    // distorted grid re-targeted to new text dimensions
	EventRestore                    // grid reconstructed from a persisted record
	EventDetach                     // warp removed from its text object
	EventDragStart                  // a control point was picked
	EventDrag                       // a picked control point moved
	EventDragEnd                    // the drag finished or was cancelled
	EventReset                      // points returned to the reference lattice
)

var eventNames = [...]string{"rebuild", "rescale", "restore", "detach", "drag-start", "drag", "drag-end", "reset"}

// String returns the lower-case event name.
func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}

// WarpEvent carries warp state changes to an EventSink.
type WarpEvent struct {
	Type   EventType
	Object *TextObject
	// Index is the control point index for drag events, -1 otherwise.
	Index int
	// Position is the point position for drag events.
	Position Vec2
}

// EventSink is the interface for optional event forwarding (ECS bridges,
// history recorders). EmitEvent is called synchronously.
type EventSink interface {
	EmitEvent(event WarpEvent)
}
