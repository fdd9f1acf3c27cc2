// Package pipeline runs a complete forestmerge transformation.
//
// # Architecture
//
// The pipeline consists of four strictly sequential stages:
//
//  1. Parse graph: read the DOT graph description ([dotgraph.Import])
//  2. Parse forest: read the forest file ([forest.Import])
//  3. Build: nest nodes into groups ([cluster.Build])
//  4. Render: write clustered DOT, or SVG laid out by Graphviz
//
// Any error aborts the run. Output is only written once rendering succeeds.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    ForestPath: "forest.json",
//	    GraphPath:  "graph.dot",
//	}, os.Stdout)
package pipeline

import (
	"time"

	"github.com/matzehuels/forestmerge/pkg/cluster"
	"github.com/matzehuels/forestmerge/pkg/dotgraph"
	"github.com/matzehuels/forestmerge/pkg/errors"
	"github.com/matzehuels/forestmerge/pkg/render/nodelink"
)

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// DefaultFormat is the output format used when none is given.
const DefaultFormat = FormatDOT

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatDOT: true,
	FormatSVG: true,
}

// Options configures a pipeline run.
type Options struct {
	ForestPath string // forest file (.json, .yaml, .yml)
	GraphPath  string // graph description file

	Format    string // "dot" (default) or "svg"
	Strict    bool   // reject identifiers missing from the graph description
	Check     bool   // parse the DOT output with Graphviz before writing it
	FillStyle string // style attribute of rewritten declarations
	Indent    int    // spaces per cluster nesting level
}

// ValidateAndSetDefaults fills in defaults and checks the options.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if o.FillStyle == "" {
		o.FillStyle = dotgraph.DefaultFillStyle
	}
	if o.Indent == 0 {
		o.Indent = nodelink.DefaultIndent
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}
	if err := errors.ValidateInputPath(o.ForestPath); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "forest path")
	}
	if err := errors.ValidateInputPath(o.GraphPath); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "graph path")
	}
	return nil
}

// ValidateFormat checks a single output format.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be 'dot' or 'svg')", format)
	}
	return nil
}

// Result describes a completed run.
type Result struct {
	Nodes   int            // node declarations parsed
	Entries int            // forest entries processed
	Build   cluster.Stats  // hierarchy statistics
	Render  nodelink.Stats // emitted DOT statistics
	Bytes   int            // bytes written
	Stats   Stats
}

// Stats holds stage timings.
type Stats struct {
	ParseTime  time.Duration
	BuildTime  time.Duration
	RenderTime time.Duration
}
