package interaction_test

import (
	"fmt"

	"github.com/hardy369/qubit-mapping/circuit"
	"github.com/hardy369/qubit-mapping/interaction"
)

// ExampleBuild extracts the dependency list of a small circuit and folds it
// into the weighted interaction graph. The pair (0,2) interacts twice, so
// its edge accumulates weight from both occurrences.
func ExampleBuild() {
	gates := []circuit.Gate{
		circuit.CX(2, 0),
		circuit.CX(0, 1),
		circuit.CX(0, 2),
	}
	deps, err := circuit.Extract(gates)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g, err := interaction.Build(deps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("qubits:", g.NumQubits())
	fmt.Printf("weight(0,2): %.2f\n", g.Weight(0, 2))
	fmt.Printf("weight(0,1): %.2f\n", g.Weight(0, 1))
	fmt.Println("count(0,2):", g.InteractionCount(0, 2))
	fmt.Println("center:", g.Center())
	// Output:
	// qubits: 3
	// weight(0,2): 1.33
	// weight(0,1): 0.50
	// count(0,2): 2
	// center: 0
}
