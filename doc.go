// Package gridkit is your toolbox for bounded 2D grids — the rectangular,
// row-major playing fields of maze, patrol, and word-search puzzles — and
// the algorithms that walk them.
//
// 🚀 What is gridkit?
//
//	A small, focused library that brings together:
//		• Core primitives: Point, the 8 Directions, and a generic Grid[T]
//		  with O(1) index↔point conversion and bounded neighbor lookup
//		• Regions: flood-fill discovery of equal-valued areas, with
//		  area, perimeter and side counts
//		• Traversal: BFS with passability predicates and step filters
//		• Cheapest paths: Dijkstra with per-move costs and turn penalties
//		• Simulation: straight-until-blocked walks with loop detection and
//		  what-if obstacle search over cloned grids
//		• Dispatch: a registry of two-phase puzzle solvers keyed by number
//
// ✨ Why choose gridkit?
//
//   - One boundary policy everywhere – Neighbor's comma-ok result is how
//     every algorithm stops at the edge; no wraparound, no sentinels
//   - Value semantics – grids clone deeply; what-if scenarios never share
//     mutable state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – functional options and hooks (OnVisit, Passable,
//     FilterStep, Turn…) for custom logic
//
// Under the hood, everything is organized under seven subpackages:
//
//	grid/     — Point, Direction and Grid[T] fundamentals
//	regions/  — connected-region discovery and fence metrics
//	bfs/      — unweighted shortest paths over passable cells
//	dijkstra/ — weighted cheapest paths, optional turn costs
//	scan/     — directional word-search rays and X-crosses
//	walk/     — patrol simulation, loop detection, obstacle what-ifs
//	solve/    — numeric-id registry of PartOne/PartTwo solvers
//
// Quick ASCII example:
//
//	    S.#
//	    .##
//	    ..E
//
//	a 3×3 maze: bfs finds the 4-step route from S to E along the left wall.
//
//	go get github.com/katalvlaran/gridkit
package gridkit
