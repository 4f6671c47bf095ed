package meshwarp

// pointerAction is the kind of a synthetic pointer event.
type pointerAction uint8

const (
	pointerDown pointerAction = iota
	pointerMove
	pointerUp
)

// syntheticPointerEvent is a single injected pointer event in world space.
type syntheticPointerEvent struct {
	action pointerAction
	pos    Vec2
}

// InputQueue buffers synthetic pointer events and feeds them to a Controller
// one per frame, the same way real pointer input arrives.
type InputQueue struct {
	events []syntheticPointerEvent
	last   Vec2 // position of the last dispatched event
}

// Press queues a pointer press at (x, y).
func (q *InputQueue) Press(x, y float64) {
	q.events = append(q.events, syntheticPointerEvent{action: pointerDown, pos: Vec2{x, y}})
}

// Move queues a pointer move to (x, y) with the button held.
func (q *InputQueue) Move(x, y float64) {
	q.events = append(q.events, syntheticPointerEvent{action: pointerMove, pos: Vec2{x, y}})
}

// Release queues a pointer release at (x, y).
func (q *InputQueue) Release(x, y float64) {
	q.events = append(q.events, syntheticPointerEvent{action: pointerUp, pos: Vec2{x, y}})
}

// Click queues a press followed by a release at the same position.
// Consumes two frames.
func (q *InputQueue) Click(x, y float64) {
	q.Press(x, y)
	q.Release(x, y)
}

// Drag queues a full drag: press at (fromX, fromY), linearly interpolated
// moves over frames-2 intermediate frames, and release at (toX, toY). A
// release away from the last position moves the held point there first.
// Minimum frames is 2.
func (q *InputQueue) Drag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	q.Press(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		q.Move(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	q.Release(toX, toY)
}

// Len returns the number of pending events.
func (q *InputQueue) Len() int { return len(q.events) }

// Step pops one event and dispatches it to c. Returns false when the queue
// was empty.
func (q *InputQueue) Step(c *Controller) bool {
	if len(q.events) == 0 {
		return false
	}
	evt := q.events[0]
	copy(q.events, q.events[1:])
	q.events = q.events[:len(q.events)-1]

	switch evt.action {
	case pointerDown:
		c.PointerDown(evt.pos)
	case pointerMove:
		c.PointerMove(evt.pos)
	case pointerUp:
		if evt.pos != q.last {
			c.PointerMove(evt.pos)
		}
		c.PointerUp()
	}
	q.last = evt.pos
	return true
}
