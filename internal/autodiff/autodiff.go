// Package autodiff implements a scalar reverse-mode automatic differentiation engine.
//
// Every number taking part in a computation is a *Value node. Operations on
// nodes return new nodes that remember their parents and a local-gradient
// rule, so the expression graph is built dynamically during the forward pass.
// Calling Backward on a root node then propagates d(root)/d(node) into the
// Grad field of every node the root depends on.
//
// Architecture:
//   - Value: one scalar, its gradient accumulator and backward metadata
//   - Operations: Add, Mul, Pow, Tanh, ... each returning a fresh node
//   - Graph: topological view over the nodes reachable from a root
//   - Backward: reverse topological walk applying the chain rule
//
// Usage:
//
//	a := autodiff.NewValue(2.0)
//	b := autodiff.NewValue(-3.0)
//	c := a.Mul(b).Add(a) // c = a*b + a
//
//	c.Backward()
//	fmt.Println(a.Grad) // dc/da = b + 1 = -2
//	fmt.Println(b.Grad) // dc/db = a = 2
//
// Graphs are single-threaded and owned by the caller that built them.
// Backward never clears gradients; zero them first (Graph.ZeroGrad or
// ZeroGrad) when reusing leaves across passes.
package autodiff

import (
	"fmt"
	"strconv"
)

// Op identifies the primitive that produced a Value.
type Op uint8

// Supported primitives. Neg, Sub and Div are composites and record the
// primitives they are built from.
const (
	OpLeaf Op = iota
	OpAdd
	OpMul
	OpPow
	OpTanh
	OpExp
	OpLog
	OpReLU
	OpSigmoid
)

var opNames = [...]string{
	OpLeaf:    "",
	OpAdd:     "+",
	OpMul:     "*",
	OpPow:     "**",
	OpTanh:    "tanh",
	OpExp:     "exp",
	OpLog:     "log",
	OpReLU:    "relu",
	OpSigmoid: "sigmoid",
}

// String returns the short symbol used when drawing graphs.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "op(" + strconv.Itoa(int(o)) + ")"
}

// Value is a scalar node in the computation graph.
//
// Data and Grad are exported because callers (optimizers, UI code that lets a
// user nudge a weight) read and write them directly. A node's identity is its
// pointer: reusing a node in several expressions shares it, and two nodes with
// equal Data are still distinct participants in the graph.
type Value struct {
	Data  float64 // Current scalar value
	Grad  float64 // d(root)/d(this) after the most recent Backward
	Label string  // Optional name for introspection

	op       Op
	parents  []*Value
	backward func() // Pushes this node's Grad into its parents
}

// NewValue creates a leaf node (an input or a trainable parameter).
func NewValue(data float64) *Value {
	return &Value{Data: data}
}

// NewLabeledValue creates a leaf node carrying a label.
func NewLabeledValue(data float64, label string) *Value {
	return &Value{Data: data, Label: label}
}

// Scalar wraps a plain number into a leaf node.
// It is the explicit literal-to-node coercion used by every operation.
func Scalar(data float64) *Value {
	return NewValue(data)
}

// Values wraps a slice of plain numbers into fresh leaf nodes.
func Values(data ...float64) []*Value {
	out := make([]*Value, len(data))
	for i, d := range data {
		out[i] = NewValue(d)
	}
	return out
}

// Floats returns the Data of each node.
func Floats(vs []*Value) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = v.Data
	}
	return out
}

// Op returns the primitive that produced this node (OpLeaf for leaves).
func (v *Value) Op() Op {
	return v.op
}

// Parents returns the nodes this node was computed from, in operand order.
// The returned slice must not be modified.
func (v *Value) Parents() []*Value {
	return v.parents
}

// IsLeaf reports whether the node has no parents.
func (v *Value) IsLeaf() bool {
	return len(v.parents) == 0
}

// String implements fmt.Stringer.
func (v *Value) String() string {
	if v.Label != "" {
		return fmt.Sprintf("Value(%s data=%.4f grad=%.4f)", v.Label, v.Data, v.Grad)
	}
	return fmt.Sprintf("Value(data=%.4f grad=%.4f)", v.Data, v.Grad)
}
