package cluster

// PromotedSuffix is appended to an identifier to re-key the leaf that used to
// occupy its slot when the slot is promoted to a [Group].
const PromotedSuffix = "x"

// Entity is the value stored in a [Registry] slot: either a *Leaf or a *Group.
type Entity interface {
	// DisplayName returns the forest-assigned name, or "" if none was given.
	DisplayName() string
	// SetName overwrites the forest-assigned name.
	SetName(name string)

	isEntity()
}

// Leaf is a concrete node declared in the graph description.
type Leaf struct {
	Num    string // numeric id as written in the source graph
	Label  string // label attribute from the graph description
	UUID   string // stable external identifier
	Region string // hex region code
	Name   string // human-readable name from the forest
}

// DisplayName implements [Entity].
func (l *Leaf) DisplayName() string { return l.Name }

// SetName implements [Entity].
func (l *Leaf) SetName(name string) { l.Name = name }

func (*Leaf) isEntity() {}

// Group is a named container of child identifiers.
// Children are unique and kept in insertion order.
type Group struct {
	Name string

	children []string
	index    map[string]struct{}
}

// NewGroup returns a group with the given name and initial children.
// Duplicate children are dropped.
func NewGroup(name string, children ...string) *Group {
	g := &Group{Name: name, index: make(map[string]struct{})}
	for _, c := range children {
		g.Add(c)
	}
	return g
}

// DisplayName implements [Entity].
func (g *Group) DisplayName() string { return g.Name }

// SetName implements [Entity].
func (g *Group) SetName(name string) { g.Name = name }

func (*Group) isEntity() {}

// Add inserts id as a child. It reports false if id was already a child.
func (g *Group) Add(id string) bool {
	if g.index == nil {
		g.index = make(map[string]struct{})
	}
	if _, ok := g.index[id]; ok {
		return false
	}
	g.index[id] = struct{}{}
	g.children = append(g.children, id)
	return true
}

// Has reports whether id is a child of g.
func (g *Group) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Children returns the child identifiers in insertion order.
// The returned slice is a copy.
func (g *Group) Children() []string {
	out := make([]string, len(g.children))
	copy(out, g.children)
	return out
}

// Len returns the number of children.
func (g *Group) Len() int { return len(g.children) }
