// Package ebitenwarp connects meshwarp to [Ebitengine]: a text/v2 glyph
// renderer and measurer, a vector grid overlay, a pan and zoom View, and a
// mouse PointerSource for the interaction controller.
//
//	m, _ := ebitenwarp.NewMeasurer(goregular.TTF)
//	engine := meshwarp.NewEngine(m, meshwarp.DefaultConfig())
//	view := ebitenwarp.NewView(meshwarp.Rect{Width: 640, Height: 480})
//	placer := meshwarp.NewGlyphPlacer(engine, ebitenwarp.NewRenderer(nil, m, view))
//
// Set Renderer.Target to the screen image in ebiten.Game.Draw before
// calling GlyphPlacer.Draw.
//
// [Ebitengine]: https://ebitengine.org
package ebitenwarp
