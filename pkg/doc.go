// Package pkg provides the libraries behind the forestmerge command.
//
// # Overview
//
// forestmerge combines a Graphviz graph description with a forest file that
// names every node and lists its ancestors, and writes the graph back out
// with the nodes nested in subgraph clusters. The pkg directory is organized
// by stage:
//
//  1. [dotgraph] - parse the graph description, convert region codes to colors
//  2. [forest] - read forest files (JSON or YAML, key order preserved)
//  3. [cluster] - registry of leaves and groups, hierarchy construction
//  4. [render] - clustered DOT and SVG output
//  5. [pipeline] - orchestration (parse → build → render)
//
// Supporting packages: [errors] (coded errors), [observability] (stage
// hooks) and [buildinfo] (version stamping).
//
// # Architecture
//
//	graph.dot        forest.json
//	    ↓                 ↓
//	[dotgraph]        [forest]
//	    ↘                ↙
//	      [cluster.Build]
//	            ↓
//	  [render/nodelink] → DOT or SVG
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	_, err := runner.Execute(ctx, pipeline.Options{
//	    ForestPath: "forest.json",
//	    GraphPath:  "graph.dot",
//	}, os.Stdout)
//
// [dotgraph]: github.com/matzehuels/forestmerge/pkg/dotgraph
// [forest]: github.com/matzehuels/forestmerge/pkg/forest
// [cluster]: github.com/matzehuels/forestmerge/pkg/cluster
// [render]: github.com/matzehuels/forestmerge/pkg/render
// [pipeline]: github.com/matzehuels/forestmerge/pkg/pipeline
// [errors]: github.com/matzehuels/forestmerge/pkg/errors
// [observability]: github.com/matzehuels/forestmerge/pkg/observability
// [buildinfo]: github.com/matzehuels/forestmerge/pkg/buildinfo
package pkg
