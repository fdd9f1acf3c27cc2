package nodelink

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/forestmerge/pkg/cluster"
	"github.com/matzehuels/forestmerge/pkg/dotgraph"
)

// DefaultIndent is the number of spaces per nesting level.
const DefaultIndent = 2

// Options configures clustered DOT output.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero means
	// DefaultIndent; a negative value disables indentation.
	Indent int
	// FillStyle is the style attribute of rewritten node declarations.
	// Empty means dotgraph.DefaultFillStyle.
	FillStyle string
}

func (o Options) indent() string {
	switch {
	case o.Indent == 0:
		return strings.Repeat(" ", DefaultIndent)
	case o.Indent < 0:
		return ""
	}
	return strings.Repeat(" ", o.Indent)
}

// Counter numbers rendered clusters and allocates ids for the pseudo-nodes
// of empty groups. Synthetic ids start just above base, so a base at least as
// large as every declared node id keeps them disjoint from real nodes.
type Counter struct {
	base     int
	clusters int
}

// NewCounter returns a counter allocating synthetic ids above base.
func NewCounter(base int) *Counter {
	return &Counter{base: base}
}

// Next returns the number of the next cluster.
func (c *Counter) Next() int {
	n := c.clusters
	c.clusters++
	return n
}

// SyntheticID returns the pseudo-node id belonging to cluster n.
func (c *Counter) SyntheticID(n int) int {
	return c.base + n + 1
}

// Clusters returns how many clusters have been numbered.
func (c *Counter) Clusters() int { return c.clusters }

// Stats reports what [ToDOT] emitted.
type Stats struct {
	Clusters     int // subgraph blocks
	Leaves       int // leaf statements inside clusters
	Synthetic    int // pseudo-nodes for empty groups
	Declarations int // rewritten node declarations
}

// WriteDOT writes the merged graph to w. See [ToDOT] for the layout.
func WriteDOT(w io.Writer, d *dotgraph.Description, h *cluster.Hierarchy, opts Options) (Stats, error) {
	out, stats := ToDOT(d, h, opts)
	if _, err := io.WriteString(w, out); err != nil {
		return stats, fmt.Errorf("write: %w", err)
	}
	return stats, nil
}

// ToDOT renders the merged graph:
//
//  1. the original header line;
//  2. one nested subgraph cluster per root, each followed by a blank line;
//  3. every node declaration rewritten with its fill color, in file order;
//  4. the original trailer.
//
// Groups become "subgraph cluster_N" blocks labelled with the group name,
// leaves become "<id>;" statements. A root leaf is wrapped in a cluster of
// its own. An empty group holds a single pseudo-node labelled with the
// group's name.
func ToDOT(d *dotgraph.Description, h *cluster.Hierarchy, opts Options) (string, Stats) {
	r := &renderer{
		reg:      h.Registry,
		counter:  NewCounter(d.SyntheticBase()),
		indent:   opts.indent(),
		visiting: make(map[string]bool),
	}

	r.buf.WriteString(d.Header)
	if !strings.HasSuffix(d.Header, "\n") {
		r.buf.WriteByte('\n')
	}

	for _, id := range h.Roots {
		r.root(id)
		r.buf.WriteByte('\n')
	}

	for _, n := range d.Nodes {
		r.buf.WriteString(n.Declaration(opts.FillStyle))
		r.buf.WriteByte('\n')
		r.stats.Declarations++
	}

	for _, line := range d.Trailer {
		r.buf.WriteString(line)
	}

	r.stats.Clusters = r.counter.Clusters()
	return r.buf.String(), r.stats
}

type renderer struct {
	buf      bytes.Buffer
	reg      *cluster.Registry
	counter  *Counter
	indent   string
	visiting map[string]bool
	stats    Stats
}

func (r *renderer) pad(depth int) {
	r.buf.WriteString(strings.Repeat(r.indent, depth))
}

// root renders a top-level entity. A root that never acquired children is
// still a leaf; it gets a cluster of its own so every root is a block.
func (r *renderer) root(id string) {
	e, ok := r.reg.Lookup(id)
	if !ok {
		return
	}
	leaf, ok := e.(*cluster.Leaf)
	if !ok {
		r.entity(id, 0)
		return
	}

	r.open(0, r.counter.Next(), leaf.Name)
	r.leaf(leaf, 1)
	r.close(0)
}

func (r *renderer) entity(id string, depth int) {
	e, ok := r.reg.Lookup(id)
	if !ok {
		return
	}

	switch v := e.(type) {
	case *cluster.Leaf:
		r.leaf(v, depth)
	case *cluster.Group:
		r.group(id, v, depth)
	}
}

func (r *renderer) leaf(l *cluster.Leaf, depth int) {
	r.pad(depth)
	fmt.Fprintf(&r.buf, "%s;\n", l.Num)
	r.stats.Leaves++
}

func (r *renderer) group(id string, g *cluster.Group, depth int) {
	n := r.counter.Next()
	r.open(depth, n, g.Name)

	// A group reachable from itself is drawn empty on the second visit.
	if g.Len() == 0 || r.visiting[id] {
		r.pad(depth + 1)
		fmt.Fprintf(&r.buf, "%d[label=\"%s\"];\n", r.counter.SyntheticID(n), escape(g.Name))
		r.stats.Synthetic++
	} else {
		r.visiting[id] = true
		for _, child := range g.Children() {
			r.entity(child, depth+1)
		}
		delete(r.visiting, id)
	}

	r.close(depth)
}

func (r *renderer) open(depth, n int, name string) {
	r.pad(depth)
	fmt.Fprintf(&r.buf, "subgraph cluster_%d {\n", n)
	r.pad(depth + 1)
	fmt.Fprintf(&r.buf, "label=\"%s\";\n", escape(name))
}

func (r *renderer) close(depth int) {
	r.pad(depth)
	r.buf.WriteString("}\n")
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
