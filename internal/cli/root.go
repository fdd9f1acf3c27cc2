package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/forestmerge/pkg/observability"
	"github.com/matzehuels/forestmerge/pkg/pipeline"
)

// mergeOpts holds the command-line flags for the merge (root) command.
type mergeOpts struct {
	output    string // output file, "" or "-" for stdout
	format    string // "dot" or "svg"
	strict    bool   // reject identifiers missing from the graph
	check     bool   // parse DOT output with Graphviz before writing
	config    string // explicit config file
	fillStyle string // style attribute for rewritten declarations
	indent    int    // spaces per nesting level
	metrics   string // Prometheus textfile written after the run
	verbose   bool
}

// mergeCommand creates the root command that merges a forest into a graph
// description.
func (c *CLI) mergeCommand() *cobra.Command {
	var opts mergeOpts

	cmd := &cobra.Command{
		Use:   "forestmerge [flags] <forest> <graph>",
		Short: "Merge a forest file into a DOT graph as nested clusters",
		Long: `forestmerge reads a forest file (JSON or YAML mapping of node id to
[name, ancestors...]) and a DOT graph description whose node lines carry
uuid and region attributes, and prints the graph with every node grouped
into subgraph clusters that mirror the forest hierarchy.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.verbose {
				c.SetLogLevel(LogDebug)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMerge(cmd.Context(), cmd, args[0], args[1], &opts)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot (default), svg")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on forest identifiers missing from the graph")
	cmd.Flags().BoolVar(&opts.check, "check", false, "verify the DOT output parses with Graphviz")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default $XDG_CONFIG_HOME/forestmerge/config.toml)")
	cmd.Flags().StringVar(&opts.fillStyle, "fill-style", "", "style attribute of node declarations (default filled)")
	cmd.Flags().IntVar(&opts.indent, "indent", 0, "spaces per cluster nesting level (default 2, negative for none)")
	cmd.Flags().StringVar(&opts.metrics, "metrics", "", "write Prometheus metrics for the run to this file")

	return cmd
}

// runMerge loads configuration, runs the pipeline and writes the result.
func (c *CLI) runMerge(ctx context.Context, cmd *cobra.Command, forestPath, graphPath string, opts *mergeOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	if cfg.path != "" {
		logger.Debug("loaded config", "path", cfg.path)
	}
	for _, k := range cfg.unknown {
		logger.Warn("unknown config key", "key", k)
	}

	popts := pipeline.Options{
		ForestPath: forestPath,
		GraphPath:  graphPath,
		Format:     opts.format,
		Strict:     opts.strict,
		Check:      opts.check,
		FillStyle:  opts.fillStyle,
		Indent:     opts.indent,
	}
	cfg.apply(&popts, cmd.Flags().Changed)
	if popts.Format == "" {
		popts.Format = formatFromPath(opts.output)
	}

	toFile := opts.output != "" && opts.output != "-"
	logger.Infof("Merging %s into %s", forestPath, graphPath)
	prog := newProgress(logger)

	var buf bytes.Buffer
	out := cmd.OutOrStdout()
	if toFile {
		out = &buf
	}

	if opts.metrics != "" {
		m := observability.NewMetrics()
		observability.SetPipelineHooks(m)
		defer observability.Reset()
		defer func() {
			if werr := m.WriteTextfile(opts.metrics); werr != nil {
				logger.Warn("could not write metrics", "path", opts.metrics, "err", werr)
				return
			}
			logger.Debug("wrote metrics", "path", opts.metrics)
		}()
	}

	res, err := pipeline.NewRunner(logger).Execute(ctx, popts, out)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Merged %d nodes into %d clusters", res.Nodes, res.Render.Clusters))

	if !toFile {
		return nil
	}
	if err := os.WriteFile(opts.output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess(c.stderr, "Wrote %s output", popts.Format)
	printFile(c.stderr, opts.output)
	printStats(c.stderr, res)
	return nil
}

// formatFromPath infers the output format from a file extension, falling
// back to DOT.
func formatFromPath(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if pipeline.ValidFormats[ext] {
		return ext
	}
	return pipeline.DefaultFormat
}
