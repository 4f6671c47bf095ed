package meshwarp

import (
	"encoding/json"
	"fmt"
	"log/slog"
)

// gestureStep is a single action in a gesture script. Positions are world
// space.
type gestureStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Object int     `json:"object,omitempty"` // index into the objects passed to Step
	Zoom   float64 `json:"zoom,omitempty"`
}

// gestureScript is the top-level JSON structure for a gesture script.
type gestureScript struct {
	Steps []gestureStep `json:"steps"`
}

var gestureActions = map[string]bool{
	"down": true, "move": true, "up": true, "click": true, "drag": true,
	"wait": true, "select": true, "deselect": true, "zoom": true, "reset": true,
}

// GestureScript replays scripted pointer input against a Controller, one
// frame per Step. Scripts are JSON:
//
//	{"steps": [
//	  {"action": "select", "object": 0},
//	  {"action": "drag", "fromX": 10, "fromY": 4, "toX": 30, "toY": 20, "frames": 6}
//	]}
type GestureScript struct {
	steps     []gestureStep
	cursor    int
	waitCount int
	done      bool
	queue     InputQueue
}

// LoadGestureScript parses a JSON gesture script.
func LoadGestureScript(jsonData []byte) (*GestureScript, error) {
	var script gestureScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	for i, st := range script.Steps {
		if !gestureActions[st.Action] {
			return nil, fmt.Errorf("parse gesture script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &GestureScript{steps: script.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *GestureScript) Done() bool {
	return s.done
}

// Step advances the script by one frame. objects are the text objects
// "select" steps index into.
func (s *GestureScript) Step(c *Controller, objects []*TextObject) {
	if s.done {
		return
	}
	// Drain pending pointer events before advancing.
	if s.queue.Step(c) {
		s.checkDone()
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "down":
		s.queue.Press(st.X, st.Y)
	case "move":
		s.queue.Move(st.X, st.Y)
	case "up":
		s.queue.Release(st.X, st.Y)
	case "click":
		s.queue.Click(st.X, st.Y)
	case "drag":
		s.queue.Drag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "select":
		if st.Object < 0 || st.Object >= len(objects) {
			logger.Warn("meshwarp: gesture selects missing object",
				slog.Int("object", st.Object), slog.Int("count", len(objects)))
			c.Deselect()
			break
		}
		c.Select(objects[st.Object])
	case "deselect":
		c.Deselect()
	case "zoom":
		c.SetZoom(st.Zoom)
	case "reset":
		if obj := c.Selection(); obj != nil {
			c.Cancel()
			c.engine.Reset(obj)
		}
	}

	// Pointer steps take effect in the frame they are read.
	s.queue.Step(c)
	s.checkDone()
}

func (s *GestureScript) checkDone() {
	if s.cursor >= len(s.steps) && s.waitCount == 0 && s.queue.Len() == 0 {
		s.done = true
	}
}

// Play runs the script to completion and returns the number of frames it
// took.
func (s *GestureScript) Play(c *Controller, objects ...*TextObject) int {
	frames := 0
	for !s.done {
		s.Step(c, objects)
		frames++
	}
	return frames
}
