package meshwarp

// DragState is the interaction controller state: either Idle or Dragging.
type DragState interface {
	dragState()
}

// Idle is the resting state; no control point is held.
type Idle struct{}

// Dragging holds the index of the control point under the pointer.
type Dragging struct {
	Index int
}

func (Idle) dragState()     {}
func (Dragging) dragState() {}

// Controller hit-tests and drags the control points of the selected text
// object. Pointer positions are world space, already un-projected by the host.
type Controller struct {
	engine    *Engine
	selection *TextObject
	state     DragState
	zoom      float64

	// PickRadius is the handle pick radius in screen pixels. Zero uses the
	// engine configuration.
	PickRadius float64

	// OnRedraw is called synchronously after every mutation of the mesh.
	OnRedraw func()
}

// NewController creates an idle controller bound to e.
func NewController(e *Engine) *Controller {
	return &Controller{engine: e, state: Idle{}, zoom: 1}
}

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// Selection returns the active text object, or nil.
func (c *Controller) Selection() *TextObject { return c.selection }

// Select makes obj the active selection. Changing the selection cancels any
// drag in progress. nil deselects.
func (c *Controller) Select(obj *TextObject) {
	if obj != c.selection {
		c.Cancel()
	}
	c.selection = obj
}

// Deselect clears the selection, cancelling any drag.
func (c *Controller) Deselect() { c.Select(nil) }

// ObjectRemoved cancels the drag and clears the selection when obj is the
// selected object. Call it when the host deletes a text object.
func (c *Controller) ObjectRemoved(obj *TextObject) {
	if obj == c.selection {
		c.Deselect()
	}
}

// SetZoom sets the view zoom used to convert the pick radius from screen
// pixels to world units. Non-positive values are ignored.
func (c *Controller) SetZoom(zoom float64) {
	if zoom > 0 {
		c.zoom = zoom
	}
}

// Zoom returns the view zoom.
func (c *Controller) Zoom() float64 { return c.zoom }

// pickRadius returns the pick radius in world units.
func (c *Controller) pickRadius() float64 {
	r := c.PickRadius
	if r <= 0 {
		r = c.engine.config.PickRadius
	}
	return r / c.zoom
}

// toGrid maps a world position into the selected object's grid space by
// undoing the object rotation about its center.
func (c *Controller) toGrid(world Vec2) Vec2 {
	return c.selection.WorldToGrid(world)
}

// PointerDown picks the nearest control point within the pick radius and
// starts dragging it. Returns true when a point was picked.
func (c *Controller) PointerDown(world Vec2) bool {
	c.Cancel()
	if c.selection == nil {
		return false
	}
	g := c.engine.Grid(c.selection)
	p := c.toGrid(world)

	radius := c.pickRadius()
	best := -1
	var bestDist float64
	for i, pt := range g.points {
		d := dist(pt, p)
		if d <= radius && (best < 0 || d < bestDist) {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return false
	}
	c.state = Dragging{Index: best}
	c.engine.emit(WarpEvent{Type: EventDragStart, Object: c.selection, Index: best, Position: g.points[best]})
	return true
}

// PointerMove moves the dragged point to world. No-op when idle.
func (c *Controller) PointerMove(world Vec2) {
	d, ok := c.state.(Dragging)
	if !ok || c.selection == nil {
		return
	}
	g := c.selection.Grid()
	if g == nil || d.Index >= g.Len() {
		c.state = Idle{}
		return
	}
	p := c.toGrid(world)
	g.SetPoint(d.Index, p)
	c.engine.commit(c.selection)
	c.engine.emit(WarpEvent{Type: EventDrag, Object: c.selection, Index: d.Index, Position: p})
	c.redraw()
}

// PointerUp finishes the drag.
func (c *Controller) PointerUp() {
	d, ok := c.state.(Dragging)
	if !ok {
		return
	}
	c.state = Idle{}
	if c.selection == nil {
		return
	}
	if g := c.selection.Grid(); g != nil && g.HasCustomDistortion {
		g.captureRelative()
		c.engine.commit(c.selection)
	}
	c.engine.emit(WarpEvent{Type: EventDragEnd, Object: c.selection, Index: d.Index})
}

// Cancel abandons a drag in progress without further updates.
func (c *Controller) Cancel() {
	d, ok := c.state.(Dragging)
	c.state = Idle{}
	if ok && c.selection != nil {
		c.engine.emit(WarpEvent{Type: EventDragEnd, Object: c.selection, Index: d.Index})
	}
}

func (c *Controller) redraw() {
	if c.OnRedraw != nil {
		c.OnRedraw()
	}
}
