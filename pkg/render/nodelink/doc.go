// Package nodelink renders a merged graph as Graphviz DOT with nested
// clusters, and optionally lays it out as SVG.
//
// # DOT Output
//
// [ToDOT] keeps the original graph description intact around a new cluster
// section:
//
//	digraph G {
//	subgraph cluster_0 {
//	  label="Alpha";
//	  1;
//	  subgraph cluster_1 {
//	    label="Beta";
//	    2;
//	    3;
//	  }
//	}
//
//	1[label="A", fillcolor="#ff0000", style="filled"];
//	2[label="B", fillcolor="#ff", style="filled"];
//	3[label="C", fillcolor="#ff00", style="filled"];
//	1->2;
//	}
//
// Cluster numbers and pseudo-node ids come from a [Counter] owned by the
// render call, so repeated renders of the same hierarchy produce identical
// output.
//
// # SVG
//
// [RenderSVG] and [Check] use [github.com/goccy/go-graphviz], which embeds
// Graphviz as WebAssembly, so no system installation is required.
package nodelink
