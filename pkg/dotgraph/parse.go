package dotgraph

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/forestmerge/pkg/cluster"
	"github.com/matzehuels/forestmerge/pkg/errors"
)

var (
	nodeLineRe = regexp.MustCompile(`^(\d+)\[`)
	labelRe    = regexp.MustCompile(`\blabel="([^"]*)"`)
	uuidRe     = regexp.MustCompile(`\buuid="([^"]+)"`)
	regionRe   = regexp.MustCompile(`\bregion="([^"]+)"`)
)

// Node is one parsed node declaration.
type Node struct {
	ID     string // numeric id, as written
	Label  string
	UUID   string
	Region string
	Color  string // RegionToColor(Region)
	Line   int    // 1-based line number in the source
}

// Declaration renders the rewritten declaration line with the region replaced
// by a fill color. style is the value of the style attribute, "filled" when
// empty.
func (n Node) Declaration(style string) string {
	if style == "" {
		style = DefaultFillStyle
	}
	return fmt.Sprintf("%s[label=\"%s\", fillcolor=\"%s\", style=\"%s\"];", n.ID, n.Label, n.Color, style)
}

// DefaultFillStyle is the style attribute written on rewritten declarations.
const DefaultFillStyle = "filled"

// Description is a parsed graph description.
type Description struct {
	// Header is the first line, including its line terminator if it had one.
	Header string
	// Nodes holds the node block in file order.
	Nodes []Node
	// Trailer holds every line after the node block, terminators included.
	Trailer []string
}

// MaxID returns the largest numeric node id, or -1 if there are no nodes.
func (d *Description) MaxID() int {
	highest := -1
	for _, n := range d.Nodes {
		if v, err := strconv.Atoi(n.ID); err == nil && v > highest {
			highest = v
		}
	}
	return highest
}

// SyntheticBase returns a number no smaller than the node count or any
// parsed id. Ids allocated above it cannot collide with declared nodes.
func (d *Description) SyntheticBase() int {
	return max(len(d.Nodes), d.MaxID())
}

// Registry returns a registry holding one leaf per node, keyed by uuid.
// A uuid declared twice keeps its last declaration.
func (d *Description) Registry() *cluster.Registry {
	reg := cluster.NewRegistry()
	for _, n := range d.Nodes {
		reg.Set(n.UUID, &cluster.Leaf{
			Num:    n.ID,
			Label:  n.Label,
			UUID:   n.UUID,
			Region: n.Region,
		})
	}
	return reg
}

// Parse reads a graph description from r.
//
// Parse returns an error if the input is empty, if a line in the node block
// lacks a label, uuid or region attribute, or if a region is not
// hexadecimal. A line that does not look like a node declaration is not an
// error: it ends the node block. Parse does not close r.
func Parse(r io.Reader) (*Description, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "graph description is empty")
	}

	lines := strings.SplitAfter(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	d := &Description{Header: lines[0]}
	i := 1
	for ; i < len(lines); i++ {
		if !nodeLineRe.MatchString(lines[i]) {
			break
		}
		n, err := parseNode(lines[i], i+1)
		if err != nil {
			return nil, err
		}
		d.Nodes = append(d.Nodes, n)
	}
	d.Trailer = lines[i:]
	return d, nil
}

func parseNode(line string, lineNo int) (Node, error) {
	n := Node{ID: nodeLineRe.FindStringSubmatch(line)[1], Line: lineNo}

	attrs := []struct {
		name string
		re   *regexp.Regexp
		dst  *string
	}{
		{"label", labelRe, &n.Label},
		{"uuid", uuidRe, &n.UUID},
		{"region", regionRe, &n.Region},
	}
	for _, a := range attrs {
		m := a.re.FindStringSubmatch(line)
		if m == nil {
			return Node{}, errors.New(errors.ErrCodeInvalidNode, "line %d: node %s has no %s attribute", lineNo, n.ID, a.name)
		}
		*a.dst = m[1]
	}

	color, err := RegionToColor(n.Region)
	if err != nil {
		return Node{}, errors.New(errors.ErrCodeInvalidRegion, "line %d: node %s: region %q is not hexadecimal", lineNo, n.ID, n.Region)
	}
	n.Color = color
	return n, nil
}

// Import reads the graph description at path.
func Import(path string) (*Description, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
