package meshwarp

import (
	"math"
	"testing"
)

func newTestController() (*Controller, *TextObject, *eventLog) {
	e, log := newTestEngine()
	obj := hello()
	c := NewController(e)
	c.Select(obj)
	return c, obj, log
}

func TestControllerStartsIdle(t *testing.T) {
	c := NewController(NewEngine(monoMeasurer{}, DefaultConfig()))
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("state = %#v, want Idle", c.State())
	}
	if c.PointerDown(Vec2{}) {
		t.Error("PointerDown without a selection picked a point")
	}
}

func TestControllerHitTest(t *testing.T) {
	tests := []struct {
		name    string
		pointer Vec2
		want    int // -1 for no hit
	}{
		{"exact top-left", Vec2{-135, -60}, 0},
		{"near interior", Vec2{3, -24}, 7},
		{"edge of radius", Vec2{135, 50}, 19},
		{"outside radius", Vec2{-100, -60}, -1},
		{"far away", Vec2{1000, 1000}, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _, _ := newTestController()
			hit := c.PointerDown(tt.pointer)
			switch s := c.State().(type) {
			case Idle:
				if tt.want >= 0 || hit {
					t.Errorf("state Idle (hit=%v), want Dragging{%d}", hit, tt.want)
				}
			case Dragging:
				if s.Index != tt.want || !hit {
					t.Errorf("state Dragging{%d} (hit=%v), want %d", s.Index, hit, tt.want)
				}
			}
		})
	}
}

func TestControllerPicksNearest(t *testing.T) {
	c, _, _ := newTestController()
	c.PickRadius = 100
	c.PointerDown(Vec2{-80, -55})
	if d, ok := c.State().(Dragging); !ok || d.Index != 1 {
		t.Errorf("state = %#v, want Dragging{1}", c.State())
	}
}

func TestControllerTieGoesToLowerIndex(t *testing.T) {
	c, _, _ := newTestController()
	c.PickRadius = 100
	c.PointerDown(Vec2{-101.25, -60}) // halfway between points 0 and 1
	if d, ok := c.State().(Dragging); !ok || d.Index != 0 {
		t.Errorf("state = %#v, want Dragging{0}", c.State())
	}
}

func TestControllerZoomScalesRadius(t *testing.T) {
	c, _, _ := newTestController()
	c.SetZoom(2) // 10 screen px = 5 world units
	if c.PointerDown(Vec2{-135, -53}) {
		t.Error("picked a point 7 units away at zoom 2")
	}
	c.SetZoom(0.5) // 20 world units
	if !c.PointerDown(Vec2{-135, -45}) {
		t.Error("missed a point 15 units away at zoom 0.5")
	}
	c.SetZoom(-1)
	if c.Zoom() != 0.5 {
		t.Errorf("zoom = %v after a negative SetZoom", c.Zoom())
	}
}

func TestControllerDrag(t *testing.T) {
	c, obj, log := newTestController()
	redraws := 0
	c.OnRedraw = func() { redraws++ }

	c.PointerDown(Vec2{-135, -60})
	c.PointerMove(Vec2{-125, -70})
	c.PointerMove(Vec2{-115, -80})

	g := obj.Grid()
	assertVec(t, "dragged point", g.Point(0, 0), Vec2{-115, -80}, epsilon)
	if !g.HasCustomDistortion {
		t.Error("drag did not mark the grid custom")
	}
	if len(g.RelativePoints()) != g.Len() {
		t.Errorf("relative points = %d, want %d", len(g.RelativePoints()), g.Len())
	}
	assertVec(t, "relative", g.RelativePoints()[0], Vec2{20.0 / 270, -20.0 / 120}, 1e-12)
	if redraws != 2 {
		t.Errorf("redraws = %d, want 2", redraws)
	}
	if obj.Warp == nil || !obj.Warp.HasCustomDistortion {
		t.Error("drag not mirrored into the record")
	}

	c.PointerUp()
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("state = %#v after PointerUp", c.State())
	}

	want := []EventType{EventRebuild, EventDragStart, EventDrag, EventDrag, EventDragEnd}
	got := log.types()
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
	if log.events[1].Index != 0 || log.events[4].Index != 0 {
		t.Errorf("drag event indices = %d, %d", log.events[1].Index, log.events[4].Index)
	}
}

func TestControllerMoveWhileIdleIsNoop(t *testing.T) {
	c, obj, _ := newTestController()
	c.PointerMove(Vec2{5, 5})
	if obj.HasWarp() && obj.Grid().HasCustomDistortion {
		t.Error("PointerMove while idle distorted the grid")
	}
	c.PointerUp()
}

func TestControllerSelectionChangeCancels(t *testing.T) {
	c, obj, log := newTestController()
	c.PointerDown(Vec2{-135, -60})

	other := hello()
	c.Select(other)
	if _, ok := c.State().(Idle); !ok {
		t.Fatalf("state = %#v after selection change", c.State())
	}
	c.PointerMove(Vec2{0, 0})
	if obj.Grid().HasCustomDistortion {
		t.Error("move after cancel reached the old selection")
	}
	if log.count(EventDragEnd) != 1 {
		t.Errorf("events = %v, want one drag end", log.types())
	}

	// Re-selecting the same object keeps the drag.
	c.PointerDown(Vec2{-135, -60})
	c.Select(other)
	if _, ok := c.State().(Dragging); !ok {
		t.Error("re-selecting the same object cancelled the drag")
	}
}

func TestControllerObjectRemoved(t *testing.T) {
	c, obj, _ := newTestController()
	c.PointerDown(Vec2{-135, -60})

	c.ObjectRemoved(hello())
	if c.Selection() != obj {
		t.Error("removing another object cleared the selection")
	}

	c.ObjectRemoved(obj)
	if c.Selection() != nil {
		t.Error("selection not cleared")
	}
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("state = %#v after removal", c.State())
	}
}

func TestControllerDetachedMidDrag(t *testing.T) {
	c, obj, _ := newTestController()
	c.PointerDown(Vec2{-135, -60})
	c.engine.Detach(obj)

	c.PointerMove(Vec2{10, 10})
	if _, ok := c.State().(Idle); !ok {
		t.Errorf("state = %#v after the mesh was detached", c.State())
	}
	if obj.HasWarp() {
		t.Error("PointerMove re-created a detached mesh")
	}
}

func TestControllerRotatedObject(t *testing.T) {
	c, obj, _ := newTestController()
	obj.X, obj.Y = 100, 100
	obj.Rotation = math.Pi / 2
	g := c.engine.Grid(obj)

	// Grid point 0 sits at (100-135, 100-60) unrotated; rotated by 90° about
	// the center it lands at (160, -35).
	world := obj.GridToWorld(g.Point(0, 0))
	assertVec(t, "world", world, Vec2{160, -35}, 1e-9)

	if !c.PointerDown(world) {
		t.Fatal("rotated handle not picked")
	}
	if d := c.State().(Dragging); d.Index != 0 {
		t.Errorf("picked %d, want 0", d.Index)
	}

	// Moving the pointer 10 units right in world space is 10 units up in
	// the unrotated grid frame.
	c.PointerMove(world.Add(Vec2{10, 0}))
	assertVec(t, "grid point", g.Point(0, 0), Vec2{-35, 30}, 1e-9)
}
