package cluster

import (
	"github.com/matzehuels/forestmerge/pkg/errors"
	"github.com/matzehuels/forestmerge/pkg/forest"
)

// Options configures [Build].
type Options struct {
	// Strict rejects forest entries whose identifier or nearest ancestor was
	// not declared in the graph description. When false such identifiers
	// silently become empty placeholder groups.
	Strict bool
}

// Stats summarizes a [Build] run.
type Stats struct {
	Entries      int // forest entries processed
	Roots        int // distinct root identifiers
	Promotions   int // leaves promoted to groups
	Placeholders int // slots created for undeclared identifiers
}

// Hierarchy is the result of [Build]: the registry after all forest entries
// were applied, plus the root identifiers in the order they were first seen.
type Hierarchy struct {
	Registry *Registry
	Roots    []string
	Stats    Stats
}

// Root returns the entity currently occupying the i-th root slot.
// Roots are resolved at call time, so a root that was promoted after its own
// forest entry is returned as the promoted group.
func (h *Hierarchy) Root(i int) Entity {
	e, _ := h.Registry.Lookup(h.Roots[i])
	return e
}

// Build applies the forest entries to reg in order and returns the resulting
// hierarchy. reg is modified in place.
//
// For each entry:
//  1. An entry without ancestors is recorded as a root.
//  2. Otherwise the entry's identifier is added as a child of its nearest
//     ancestor's slot, promoting the slot first if it holds a leaf.
//  3. The entry's own slot is renamed to the entry's display name.
func Build(reg *Registry, f *forest.Forest, opts Options) (*Hierarchy, error) {
	h := &Hierarchy{Registry: reg}

	var declared map[string]bool
	if opts.Strict {
		declared = make(map[string]bool, reg.Len())
		for _, id := range reg.IDs() {
			declared[id] = true
		}
	}

	seenRoot := make(map[string]bool)
	for _, e := range f.Entries {
		h.Stats.Entries++

		if opts.Strict && !declared[e.ID] {
			return nil, errors.New(errors.ErrCodeUnknownID, "forest entry %q is not declared in the graph", e.ID)
		}

		if e.IsRoot() {
			if !seenRoot[e.ID] {
				seenRoot[e.ID] = true
				h.Roots = append(h.Roots, e.ID)
			}
		} else {
			parent := e.Parent()
			if opts.Strict && !declared[parent] {
				return nil, errors.New(errors.ErrCodeUnknownID, "ancestor %q of %q is not declared in the graph", parent, e.ID)
			}
			h.attach(parent, e.ID)
		}

		self, created := reg.Ensure(e.ID)
		if created {
			h.Stats.Placeholders++
		}
		self.SetName(e.Name)
	}

	h.Stats.Roots = len(h.Roots)
	return h, nil
}

// attach adds child to the entity at parent, promoting a leaf first.
func (h *Hierarchy) attach(parent, child string) {
	e, created := h.Registry.Ensure(parent)
	if created {
		h.Stats.Placeholders++
	}

	switch p := e.(type) {
	case *Group:
		p.Add(child)
	case *Leaf:
		g := h.Registry.Promote(parent)
		h.Stats.Promotions++
		g.Add(child)
	}
}
