// Package topology provides ready-made coupling graphs for common hardware
// shapes: Line, Ring, Grid, Star, and the fixed 20-qubit Tokyo map.
//
// Every constructor validates its size parameters (ErrTooFewQubits), emits
// vertices and edges in a stable documented order, and hands the result to
// coupling.New, so all coupling invariants (simple, connected, undirected)
// hold for every preset.
package topology
