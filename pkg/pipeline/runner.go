package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/forestmerge/pkg/cluster"
	"github.com/matzehuels/forestmerge/pkg/dotgraph"
	"github.com/matzehuels/forestmerge/pkg/forest"
	"github.com/matzehuels/forestmerge/pkg/observability"
	"github.com/matzehuels/forestmerge/pkg/render/nodelink"
)

// Runner executes merge runs and logs each stage.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs parse → build → render and writes the output to w.
func (r *Runner) Execute(ctx context.Context, opts Options, w io.Writer) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	desc, err := r.parseGraph(ctx, opts.GraphPath)
	if err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}
	f, err := r.parseForest(ctx, opts.ForestPath)
	if err != nil {
		return nil, fmt.Errorf("parse forest: %w", err)
	}
	result.Nodes = len(desc.Nodes)
	result.Entries = f.Len()
	result.Stats.ParseTime = time.Since(parseStart)

	r.Logger.Info("parsed inputs",
		"nodes", result.Nodes,
		"trailer", len(desc.Trailer),
		"entries", result.Entries,
		"duration", result.Stats.ParseTime)

	// Stage 2: Build
	buildStart := time.Now()
	hooks.OnBuildStart(ctx, f.Len())
	h, err := cluster.Build(desc.Registry(), f, cluster.Options{Strict: opts.Strict})
	result.Stats.BuildTime = time.Since(buildStart)
	if err != nil {
		hooks.OnBuildComplete(ctx, 0, 0, result.Stats.BuildTime, err)
		return nil, fmt.Errorf("build: %w", err)
	}
	hooks.OnBuildComplete(ctx, h.Stats.Roots, h.Stats.Promotions, result.Stats.BuildTime, nil)
	result.Build = h.Stats

	if h.Stats.Placeholders > 0 {
		r.Logger.Warn("forest references identifiers missing from the graph", "placeholders", h.Stats.Placeholders)
	}
	r.Logger.Info("built hierarchy",
		"roots", h.Stats.Roots,
		"promotions", h.Stats.Promotions,
		"duration", result.Stats.BuildTime)

	// Stage 3: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Format)
	out, stats, err := r.render(ctx, desc, h, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Format, len(out), result.Stats.RenderTime, err)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Render = stats

	n, err := w.Write(out)
	result.Bytes = n
	if err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}

	r.Logger.Info("rendered output",
		"format", opts.Format,
		"clusters", stats.Clusters,
		"bytes", n,
		"duration", result.Stats.RenderTime)

	return result, nil
}

func (r *Runner) parseGraph(ctx context.Context, path string) (*dotgraph.Description, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, "graph", path)
	start := time.Now()

	desc, err := dotgraph.Import(path)
	count := 0
	if desc != nil {
		count = len(desc.Nodes)
	}
	hooks.OnParseComplete(ctx, "graph", path, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("parsed graph description", "path", path, "header", desc.Header)
	return desc, nil
}

func (r *Runner) parseForest(ctx context.Context, path string) (*forest.Forest, error) {
	hooks := observability.Pipeline()
	hooks.OnParseStart(ctx, "forest", path)
	start := time.Now()

	f, err := forest.Import(path)
	count := 0
	if f != nil {
		count = f.Len()
	}
	hooks.OnParseComplete(ctx, "forest", path, count, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("parsed forest", "path", path, "roots", len(f.Roots()))
	return f, nil
}

// render produces the output bytes for opts.Format.
func (r *Runner) render(ctx context.Context, desc *dotgraph.Description, h *cluster.Hierarchy, opts Options) ([]byte, nodelink.Stats, error) {
	dot, stats := nodelink.ToDOT(desc, h, nodelink.Options{
		Indent:    opts.Indent,
		FillStyle: opts.FillStyle,
	})

	switch opts.Format {
	case FormatSVG:
		svg, err := nodelink.RenderSVG(ctx, []byte(dot))
		return svg, stats, err
	default:
		if opts.Check {
			if err := nodelink.Check(ctx, []byte(dot)); err != nil {
				return nil, stats, err
			}
			r.Logger.Debug("output parsed by graphviz")
		}
		return []byte(dot), stats, nil
	}
}
