package mapper_test

import (
	"fmt"

	"github.com/hardy369/qubit-mapping/circuit"
	"github.com/hardy369/qubit-mapping/interaction"
	"github.com/hardy369/qubit-mapping/mapper"
	"github.com/hardy369/qubit-mapping/topology"
)

// ExampleMap places a chain circuit onto a 4-qubit line. With the id-first
// tie-break the placement preserves every interaction adjacency, so the
// routing pass downstream needs no SWAPs at all.
func ExampleMap() {
	gates := []circuit.Gate{
		circuit.CX(0, 1),
		circuit.CX(1, 2),
		circuit.CX(2, 3),
	}
	deps, err := circuit.Extract(gates)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	ig, err := interaction.Build(deps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cg, err := topology.Line(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	pi, err := mapper.Map(ig, cg, mapper.WithTieBreak(mapper.PreferLowID))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for l, p := range pi {
		fmt.Printf("q%d -> Q%d\n", l, p)
	}
	// Output:
	// q0 -> Q0
	// q1 -> Q1
	// q2 -> Q2
	// q3 -> Q3
}

// ExampleMap_onAssign traces the commit order of a session: BFS-ordered
// qubits first (starting at the seeded centers), isolated qubits last.
func ExampleMap_onAssign() {
	ig, err := interaction.Build([]circuit.Dependency{
		{Position: 0, U: 1, V: 3},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	cg, err := topology.Star(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = mapper.Map(ig, cg, mapper.WithOnAssign(func(l, p int) {
		fmt.Printf("commit q%d -> Q%d\n", l, p)
	}))
	if err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// commit q1 -> Q0
	// commit q3 -> Q1
	// commit q0 -> Q2
	// commit q2 -> Q3
}
