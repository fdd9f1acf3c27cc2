// Package cluster builds the grouping hierarchy that nests graph nodes into
// Graphviz clusters.
//
// # Overview
//
// A merge run starts with one [Leaf] per node declared in the graph
// description, stored in a [Registry] under the node's stable external
// identifier. Processing a forest then attaches every identifier to the
// entity occupying its nearest ancestor's slot. Only a [Group] can hold
// children, so attaching to a slot that still holds a Leaf promotes it:
//
//	before:  u1 -> Leaf{Num: "1"}
//	after:   u1 -> Group{children: [u1x, u2]}
//	         u1x -> Leaf{Num: "1"}
//
// The old leaf survives under the derived identifier id+[PromotedSuffix], so
// the promoted group still renders the original node as its first child.
//
// # Entities
//
// [Entity] is a closed variant: the only implementations are *Leaf and
// *Group. Callers switch on the concrete type rather than probing for
// behaviour.
//
// # Building
//
// [Build] walks forest entries in file order and returns a [Hierarchy] with
// the root identifiers and [Stats] describing what happened. Identifiers that
// the forest references but the graph description never declared become empty
// placeholder groups unless [Options.Strict] is set.
package cluster
