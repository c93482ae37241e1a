// Package meshstitch joins the disconnected pieces of a triangle mesh into
// one surface by bridging their open boundaries.
//
// 🚀 What is meshstitch?
//
//	A small, deterministic mesh-repair toolkit that brings together:
//		• A half-edge-free triangle engine with incremental adjacency
//		• Component labeling and boundary loop extraction
//		• Closest boundary pair search across pieces
//		• A two-triangle bridge that merges two boundary loops into one
//		• OBJ and STL readers/writers and a command-line front end
//
// ✨ How does a stitch work?
//
//   - Label every triangle with its connected component.
//   - Walk every open boundary loop and note which piece owns it.
//   - Over every pair of loops from different pieces, find the two
//     boundary vertices that sit closest together.
//   - Insert two triangles between them; the pieces now share a loop.
//   - Repeat until one piece is left or no open loops remain to pair.
//
// Packages:
//
//	mesh/             triangle engine: positions, adjacency, boundary walk, bridge
//	stitch/           labeler, loop extractor, closest-pair matcher, Join/JoinOnce
//	meshio/           Wavefront OBJ and STL (binary, ASCII input) codecs
//	cmd/meshstitch/   CLI: load, optionally prune, join, save, report
//
// Quick start:
//
//	m, _ := meshio.Load("scan.stl")
//	res, _ := stitch.Join(m)
//	_ = meshio.Save("scan-joined.obj", m)
//	fmt.Println(res.Merges, "bridges,", res.Components, "pieces left")
//
//	go install github.com/katalvlaran/meshstitch/cmd/meshstitch@latest
package meshstitch
