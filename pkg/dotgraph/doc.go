// Package dotgraph parses the line-oriented Graphviz DOT dialect produced by
// the connection-graph exporter.
//
// # Format
//
// The first line is an opaque header (typically "digraph G {"). It is
// followed by a block of node declarations, one per line:
//
//	1[label="source", uuid="3f2c...", region="ff00aa", shape="record"];
//
// Attribute order is irrelevant and unknown attributes are ignored, but
// label, uuid and region are required. The block ends at the first line that
// does not start with "<digits>[". That line and everything after it (edges,
// the closing brace) form the trailer, which is kept verbatim.
//
// # Colors
//
// [RegionToColor] turns a hex region code into a fill color by keeping its
// low 24 bits. Every rewritten declaration produced by [Node.Declaration]
// carries that color.
package dotgraph
