// Command warprender renders mesh-warped text to a PNG without a window.
//
// A persisted record restores a saved distortion; a gesture script replays
// pointer input against the text before rendering. The resulting record can
// be written back out as JSON.
//
//	warprender -text HELLO -size 100 -gesture drag.json -out hello.png -save-record hello.json
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/meshwarp"
	"github.com/phanxgames/meshwarp/rasterwarp"
)

func main() {
	var (
		content    = flag.String("text", "HELLO", "text to render")
		size       = flag.Float64("size", 100, "font size")
		spacing    = flag.Float64("spacing", 0, "letter spacing")
		rotation   = flag.Float64("rotation", 0, "text rotation in radians")
		italic     = flag.Bool("italic", false, "faux italic")
		rows       = flag.Int("rows", meshwarp.DefaultRows, "lattice rows")
		cols       = flag.Int("cols", meshwarp.DefaultCols, "lattice columns")
		width      = flag.Int("width", 800, "image width")
		height     = flag.Int("height", 400, "image height")
		fontPath   = flag.String("font", "", "TTF/OTF file (default Go Regular)")
		recordPath = flag.String("record", "", "persisted record to restore")
		scriptPath = flag.String("gesture", "", "gesture script to replay")
		showGrid   = flag.Bool("grid", false, "draw the lattice overlay")
		output     = flag.String("out", "warp.png", "output file")
		saveRecord = flag.String("save-record", "", "write the resulting record as JSON")
		verbose    = flag.Bool("v", false, "log lifecycle events")
	)
	flag.Parse()

	if *verbose {
		meshwarp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	obj := &meshwarp.TextObject{
		Content:       *content,
		Style:         meshwarp.FontStyle{Size: *size, Italic: *italic},
		X:             float64(*width) / 2,
		Y:             float64(*height) / 2,
		Rotation:      *rotation,
		LetterSpacing: *spacing,
	}
	opts := options{
		fontPath:   *fontPath,
		recordPath: *recordPath,
		scriptPath: *scriptPath,
		showGrid:   *showGrid,
		rows:       *rows,
		cols:       *cols,
		width:      *width,
		height:     *height,
		output:     *output,
		saveRecord: *saveRecord,
	}
	if err := run(obj, opts); err != nil {
		log.Fatalf("warprender: %v", err)
	}
	log.Printf("Rendered %q to %s (%dx%d)\n", obj.Content, *output, *width, *height)
}

type options struct {
	fontPath, recordPath, scriptPath string
	showGrid                         bool
	rows, cols                       int
	width, height                    int
	output, saveRecord               string
}

func run(obj *meshwarp.TextObject, opts options) error {
	ttf := goregular.TTF
	if opts.fontPath != "" {
		data, err := os.ReadFile(opts.fontPath)
		if err != nil {
			return fmt.Errorf("read font: %w", err)
		}
		ttf = data
	}
	m, err := rasterwarp.NewMeasurer(ttf)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()

	if opts.recordPath != "" {
		data, err := os.ReadFile(opts.recordPath)
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		rec, err := meshwarp.UnmarshalRecord(data)
		if err != nil {
			return err
		}
		obj.Warp = rec
	}

	engine := meshwarp.NewEngine(m, meshwarp.Config{Rows: opts.rows, Cols: opts.cols})
	engine.Grid(obj)

	if opts.scriptPath != "" {
		data, err := os.ReadFile(opts.scriptPath)
		if err != nil {
			return fmt.Errorf("read gesture script: %w", err)
		}
		script, err := meshwarp.LoadGestureScript(data)
		if err != nil {
			return err
		}
		c := meshwarp.NewController(engine)
		c.Select(obj)
		frames := script.Play(c, obj)
		meshwarp.Logger().Debug("warprender: gesture replayed", slog.Int("frames", frames))
	}
	if opts.showGrid {
		engine.SetShowGrid(obj, true)
	}

	cv := rasterwarp.NewCanvas(opts.width, opts.height, m)
	defer func() { _ = cv.Close() }()
	cv.Clear(meshwarp.ColorWhite)
	placer := meshwarp.NewGlyphPlacer(engine, cv)
	placer.Draw(obj, meshwarp.GlyphStyle{
		Fill:   meshwarp.Color{R: 0.1, G: 0.1, B: 0.12, A: 1},
		Shadow: &meshwarp.Shadow{Color: meshwarp.Color{A: 0.2}, Offset: meshwarp.Vec2{X: 3, Y: 3}},
	})
	cv.DrawGrid(obj, meshwarp.Idle{})

	if err := cv.SavePNG(opts.output); err != nil {
		return err
	}

	if opts.saveRecord != "" {
		data, err := meshwarp.MarshalRecord(obj.Warp)
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.saveRecord, data, 0o644); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}
	return nil
}
