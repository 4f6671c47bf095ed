// Package rasterwarp renders meshwarp text headlessly with [gg].
//
// Glyphs are drawn as filled outlines under their full placement matrix, so
// rotation, anisotropic scale and faux italic shear are exact. Canvas also
// draws the grid overlay and writes PNG output.
//
//	m, _ := rasterwarp.NewMeasurer(goregular.TTF)
//	engine := meshwarp.NewEngine(m, meshwarp.DefaultConfig())
//	cv := rasterwarp.NewCanvas(640, 240, m)
//	cv.Clear(meshwarp.Color{R: 1, G: 1, B: 1, A: 1})
//	meshwarp.NewGlyphPlacer(engine, cv).Draw(obj, style)
//	_ = cv.SavePNG("out.png")
//
// [gg]: https://github.com/gogpu/gg
package rasterwarp
