// Package render turns boards and dictionaries into pictures.
//
// # Overview
//
// Rendering happens in two steps. The [nodelink] subpackage writes Graphviz
// DOT source for a board's adjacency graph or a dictionary trie, and
// [Render] lays that source out with Graphviz and encodes it:
//
//	dot := nodelink.GridDOT(g, nodelink.Options{})
//	svg, err := render.Render(ctx, dot, render.FormatSVG)
//
// # Formats
//
//   - [FormatDOT]: the DOT source itself, for external Graphviz tools
//   - [FormatSVG]: scalable output with a normalized viewBox
//   - [FormatPNG]: raster output
//
// # Dependencies
//
// Graphviz runs in-process through [github.com/goccy/go-graphviz], so no
// system installation is required.
//
// [nodelink]: github.com/matzehuels/wordhunt/pkg/render/nodelink
package render
