// Package render holds the output stage of forestmerge.
//
// Rendering lives in subpackages so that each output family can pull in its
// own dependencies:
//
//   - [nodelink]: clustered DOT text, plus SVG and syntax checking through
//     Graphviz (github.com/goccy/go-graphviz)
//
// The DOT writer never lays anything out itself; it only emits subgraph
// blocks and the rewritten node declarations. Layout is left to Graphviz,
// either in-process via [nodelink.RenderSVG] or by piping the DOT output to
// the dot command.
//
// [nodelink]: github.com/matzehuels/forestmerge/pkg/render/nodelink
package render
