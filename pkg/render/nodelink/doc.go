// Package nodelink writes Graphviz DOT source for boards and dictionary
// tries.
//
// # Boards
//
// [GridDOT] draws the tile adjacency graph as an undirected graph. Tiles
// are pinned to their board positions, so the picture looks like the board
// with its king-move edges drawn between tiles:
//
//	dot := nodelink.GridDOT(g, nodelink.Options{})
//	svg, err := render.Render(ctx, dot, render.FormatSVG)
//
// # Tries
//
// [TrieDOT] draws the dictionary trie top to bottom under a synthetic root.
// Nodes that end a word are drawn with a double outline. With
// Options.Detailed every node is labeled with its arena id as well.
//
// Large dictionaries produce very large drawings; callers should check
// trie.Trie.Len before rendering.
package nodelink
