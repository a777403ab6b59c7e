// Package kanjipath finds the cheapest order in which to learn kanji.
//
// Every character is a vertex; an edge A → B means B is built from A, so A
// should be learned first. Edge weights come from one explicit policy per
// build (stroke-count disparity by default, or a blend of stroke, grade,
// proficiency, frequency and radical difficulty). Dijkstra over the frozen
// table answers "what is the easiest way from 口 to 話?".
//
// Packages:
//
//	core/          Table, Vertex, Edge and Attributes; frozen before queries
//	builder/       turns metrics + decomposition into a weighted Table
//	dijkstra/      single-source shortest paths with lazy decrease-key
//	learnpath/     path reconstruction and the query service (logs, metrics, spans)
//	bfs/           unweighted reach over the composed-by edges
//	dfs/           learning order and decomposition cycle checks
//	internal/      config (viper), logging (slog), loader (CSV/SQLite/JSON/YAML), HTTP server
//	cmd/kanjipath  the CLI: path, examples, inspect, order, check, import, serve
//
// Quick example:
//
//	口 ──256──▶ 言 ──1296──▶ 話
//	 └──────────10000─────────┘
//
// The cheapest way from 口 to 話 goes through 言 (weight 1552).
//
//	go install github.com/katalvlaran/kanjipath/cmd/kanjipath@latest
package kanjipath
