// Package meshwarp bends text runs with a user-editable mesh.
//
// A [Grid] is a rows×cols lattice of control points laid over a single line
// of text. Dragging points distorts the lattice; every glyph is then placed
// by bilinear interpolation of its undistorted center inside the cell that
// contains it, and stretched by the ratio of the deformed cell's edge lengths
// to the undeformed ones.
//
// # Quick start
//
// Create an [Engine] with a [Measurer], attach it to a [TextObject] and
// place the glyphs each frame:
//
//	m, _ := meshwarp.ParseSFNTMeasurer(goregular.TTF)
//	engine := meshwarp.NewEngine(m, meshwarp.DefaultConfig())
//
//	obj := &meshwarp.TextObject{
//		Content: "HELLO",
//		Style:   meshwarp.FontStyle{Size: 100},
//		X: 320, Y: 240,
//	}
//	placer := meshwarp.NewGlyphPlacer(engine, renderer)
//	placer.Draw(obj, meshwarp.GlyphStyle{Fill: meshwarp.ColorWhite})
//
// The renderer is any [GlyphRenderer]. Package ebitenwarp draws with
// [Ebitengine]; package rasterwarp draws headless with [gg].
//
// # Lifecycle
//
// [Engine.EnsureGrid] keeps the mesh in line with the text. The first call
// restores the mesh from [TextObject.Warp] when a restorable [Record] is
// present, and builds an undeformed lattice otherwise. Later calls translate
// the lattice when the object moves, rebuild it when the text changes
// without custom distortion, and rescale it when the text changes after a
// drag. Rescaling prefers the captured relative points; the incremental path
// is used only when none exist. A lattice whose coordinates drift past
// [Config.DriftLimit] is rebuilt.
//
// After every operation the live mesh is mirrored into [TextObject.Warp],
// which the host saves with [MarshalRecord].
//
// # Interaction
//
// A [Controller] hit-tests the control points of the selected object and
// drags the nearest one. Its state is a [DragState]: [Idle] or [Dragging].
// Changing the selection cancels a drag. Pointer positions are world space;
// the controller undoes the object rotation itself.
//
// Scripted input for tests and tools comes from [InputQueue] and
// [GestureScript].
//
// # Animation
//
// [Engine.AnimateReset] eases a distorted mesh back to its reference lattice
// using [gween].
//
// # Events
//
// An [EventSink] receives a [WarpEvent] for every rebuild, rescale, restore,
// detach, reset and drag step. The [Donburi] adapter lives in meshwarp/ecs.
//
// # Logging
//
// meshwarp is silent by default. [SetLogger] installs a [log/slog] logger.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package meshwarp
