package cluster

// Registry maps stable external identifiers to the entity currently occupying
// each identifier's slot. The entity type at a slot may change over time when
// a leaf is promoted to a group.
//
// The zero value is not usable - use [NewRegistry].
// Registry is not safe for concurrent use.
type Registry struct {
	slots map[string]Entity
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]Entity)}
}

// Set stores e at id, replacing whatever occupied the slot.
func (r *Registry) Set(id string, e Entity) {
	if _, ok := r.slots[id]; !ok {
		r.order = append(r.order, id)
	}
	r.slots[id] = e
}

// Lookup returns the entity at id.
func (r *Registry) Lookup(id string) (Entity, bool) {
	e, ok := r.slots[id]
	return e, ok
}

// Ensure returns the entity at id, creating an empty unnamed group if the
// slot is vacant. The boolean reports whether a placeholder was created.
func (r *Registry) Ensure(id string) (Entity, bool) {
	if e, ok := r.slots[id]; ok {
		return e, false
	}
	g := NewGroup("")
	r.Set(id, g)
	return g, true
}

// Promote makes the slot at id hold a group and returns it.
//
// If the slot already holds a group it is returned unchanged. A leaf is moved
// to id+[PromotedSuffix] and becomes the first child of a new group that
// takes over the leaf's forest name. A vacant slot gets an empty group.
func (r *Registry) Promote(id string) *Group {
	e, _ := r.Ensure(id)
	switch v := e.(type) {
	case *Group:
		return v
	case *Leaf:
		rekeyed := id + PromotedSuffix
		r.Set(rekeyed, v)
		g := NewGroup(v.Name, rekeyed)
		r.Set(id, g)
		return g
	}
	panic("cluster: unknown entity type")
}

// Len returns the number of occupied slots.
func (r *Registry) Len() int { return len(r.slots) }

// IDs returns every occupied identifier in the order slots were first filled.
func (r *Registry) IDs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}
