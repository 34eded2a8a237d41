package autodiff

// TopologicalOrder returns every node reachable from root through parent
// links, ordered so that each node appears after all of its parents
// (sources first, root last).
//
// The order is produced by a post-order depth-first traversal that marks nodes
// by identity, so a node reached through several paths is listed once.
func TopologicalOrder(root *Value) []*Value {
	var topo []*Value
	visited := make(map[*Value]struct{})

	var build func(*Value)
	build = func(node *Value) {
		if _, seen := visited[node]; seen {
			return
		}
		visited[node] = struct{}{}
		for _, parent := range node.parents {
			build(parent)
		}
		topo = append(topo, node)
	}
	build(root)

	return topo
}

// Backward runs reverse-mode differentiation from v.
//
// Algorithm:
//  1. Build the topological order of the graph reachable from v
//  2. Seed v.Grad = 1 (d(v)/d(v))
//  3. Walk the order in reverse, letting each node push its Grad into its
//     parents with its local-gradient rule
//
// Reverse topological order guarantees a node has received the contributions
// of every consumer before it propagates, which is what makes shared nodes
// (a*a, one input feeding several neurons) come out right.
//
// Gradients accumulate: Backward does not reset Grad on any node other than v.
// Callers must zero parameter gradients before each pass.
func (v *Value) Backward() {
	backwardTopo(TopologicalOrder(v))
}

func backwardTopo(topo []*Value) {
	if len(topo) == 0 {
		return
	}
	topo[len(topo)-1].Grad = 1
	for i := len(topo) - 1; i >= 0; i-- {
		if node := topo[i]; node.backward != nil {
			node.backward()
		}
	}
}

// ZeroGrad resets Grad to 0 on every given node.
func ZeroGrad(vs []*Value) {
	for _, v := range vs {
		v.Grad = 0
	}
}
