package autodiff

// Graph is a snapshot of the computation graph reachable from a root node.
//
// It exists for introspection: UI code walks Nodes and Edges to draw the
// graph, and training code can zero or backpropagate over the same order
// without rebuilding it.
//
// Usage:
//
//	g := autodiff.NewGraph(loss)
//	g.ZeroGrad()
//	g.Backward()
//	for _, e := range g.Edges() { ... }
type Graph struct {
	root  *Value
	nodes []*Value       // Topological order, root last
	index map[*Value]int // Position in nodes
}

// Edge connects a parent node to a node computed from it.
type Edge struct {
	From int // Index of the parent in Nodes()
	To   int // Index of the child in Nodes()
}

// NewGraph builds the graph reachable from root.
func NewGraph(root *Value) *Graph {
	nodes := TopologicalOrder(root)
	index := make(map[*Value]int, len(nodes))
	for i, n := range nodes {
		index[n] = i
	}
	return &Graph{
		root:  root,
		nodes: nodes,
		index: index,
	}
}

// Root returns the node the graph was built from.
func (g *Graph) Root() *Value {
	return g.root
}

// Nodes returns the nodes in topological order (root last).
func (g *Graph) Nodes() []*Value {
	return g.nodes
}

// Len returns the number of distinct nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// NumOps returns the number of non-leaf nodes.
func (g *Graph) NumOps() int {
	n := 0
	for _, node := range g.nodes {
		if !node.IsLeaf() {
			n++
		}
	}
	return n
}

// Leaves returns the leaf nodes in topological order.
func (g *Graph) Leaves() []*Value {
	var leaves []*Value
	for _, node := range g.nodes {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	}
	return leaves
}

// IndexOf returns the position of v in Nodes, or -1 if v is not in the graph.
func (g *Graph) IndexOf(v *Value) int {
	if i, ok := g.index[v]; ok {
		return i
	}
	return -1
}

// Edges returns one edge per (parent, child) operand slot.
// A node used twice by the same operation (a*a) yields two edges.
func (g *Graph) Edges() []Edge {
	var edges []Edge
	for to, node := range g.nodes {
		for _, parent := range node.parents {
			edges = append(edges, Edge{From: g.index[parent], To: to})
		}
	}
	return edges
}

// ZeroGrad resets Grad on every node in the graph.
func (g *Graph) ZeroGrad() {
	ZeroGrad(g.nodes)
}

// Backward is equivalent to Root().Backward() but reuses the stored order.
func (g *Graph) Backward() {
	backwardTopo(g.nodes)
}
