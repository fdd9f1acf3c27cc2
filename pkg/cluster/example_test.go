package cluster_test

import (
	"fmt"

	"github.com/matzehuels/forestmerge/pkg/cluster"
	"github.com/matzehuels/forestmerge/pkg/forest"
)

func ExampleBuild() {
	reg := cluster.NewRegistry()
	reg.Set("u1", &cluster.Leaf{Num: "1", UUID: "u1"})
	reg.Set("u2", &cluster.Leaf{Num: "2", UUID: "u2"})

	f := &forest.Forest{Entries: []forest.Entry{
		{ID: "u2", Name: "Child", Ancestors: []string{"u1"}},
		{ID: "u1", Name: "Alpha"},
	}}

	h, _ := cluster.Build(reg, f, cluster.Options{})
	root := h.Root(0).(*cluster.Group)

	fmt.Println("Root:", root.Name)
	fmt.Println("Children:", root.Children())
	fmt.Println("Promotions:", h.Stats.Promotions)
	// Output:
	// Root: Alpha
	// Children: [u1x u2]
	// Promotions: 1
}
