package meshwarp

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Record is the serializable form of a mesh, stored on the host text object.
type Record struct {
	Rows                int    `json:"rows"`
	Cols                int    `json:"cols"`
	BoundingRect        Rect   `json:"boundingRect"`
	RelativePoints      []Vec2 `json:"relativePoints"`
	HasCustomDistortion bool   `json:"hasCustomDistortion"`
	ShowGrid            bool   `json:"showGrid"`

	// Text is the bound text snapshot at save time. Optional.
	Text *TextSnapshot `json:"text,omitempty"`
}

// TextSnapshot is the last-seen text content, font size and measured text
// dimensions. Rescaling is relative to these values.
type TextSnapshot struct {
	Content  string  `json:"content"`
	FontSize float64 `json:"fontSize"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
}

var (
	errNoRelativePoints = errors.New("no relative points")
	errNotDistorted     = errors.New("no custom distortion")
)

// ToRecord captures g. Relative points are recaptured first so the record
// always reflects the live lattice.
func ToRecord(g *Grid) *Record {
	if g.HasCustomDistortion || len(g.relative) > 0 {
		g.captureRelative()
	}
	return &Record{
		Rows:                g.rows,
		Cols:                g.cols,
		BoundingRect:        g.bounds,
		RelativePoints:      append([]Vec2(nil), g.relative...),
		HasCustomDistortion: g.HasCustomDistortion,
		ShowGrid:            g.ShowGrid,
	}
}

// Validate reports why r cannot be restored, or nil if it can.
func (r *Record) Validate() error {
	if r == nil {
		return errors.New("nil record")
	}
	if r.Rows < 2 || r.Cols < 2 {
		return fmt.Errorf("invalid lattice %dx%d", r.Rows, r.Cols)
	}
	if len(r.RelativePoints) == 0 {
		return errNoRelativePoints
	}
	if !r.HasCustomDistortion {
		return errNotDistorted
	}
	// Compare without multiplying; rows*cols can overflow on hostile input.
	if n := len(r.RelativePoints); n%r.Cols != 0 || n/r.Cols != r.Rows {
		return fmt.Errorf("%d relative points for a %dx%d lattice", len(r.RelativePoints), r.Rows, r.Cols)
	}
	for _, p := range r.RelativePoints {
		if !finite(p.X) || !finite(p.Y) {
			return errors.New("non-finite relative point")
		}
	}
	b := r.BoundingRect
	if !finite(b.X) || !finite(b.Y) || !finite(b.Width) || !finite(b.Height) || b.Width < 0 || b.Height < 0 {
		return errors.New("invalid bounding rect")
	}
	return nil
}

// FromRecord rebuilds a grid anchored at origin from r. It returns nil when
// the record is not restorable; callers fall back to a rebuild.
func FromRecord(r *Record, origin Vec2) *Grid {
	if r.Validate() != nil {
		return nil
	}
	g := NewGrid(r.Rows, r.Cols, origin, r.BoundingRect)
	g.relative = append([]Vec2(nil), r.RelativePoints...)
	g.applyRelative()
	g.HasCustomDistortion = true
	g.ShowGrid = r.ShowGrid
	return g
}

// MarshalRecord encodes r as JSON.
func MarshalRecord(r *Record) ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("meshwarp: encode record: %w", err)
	}
	return data, nil
}

// UnmarshalRecord decodes a JSON record. Decoding does not validate; a
// decoded record that fails Validate is refused at restoration time.
func UnmarshalRecord(data []byte) (*Record, error) {
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("meshwarp: decode record: %w", err)
	}
	return &r, nil
}
