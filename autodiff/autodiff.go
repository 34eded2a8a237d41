// Copyright 2025 Interactive Neural Networks. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Every arithmetic operation on a Value returns a new node that remembers its
// operands and how to push its gradient back to them. Backward walks the graph
// in reverse topological order from a root whose gradient is seeded to 1.
//
// Example:
//
//	import "github.com/XiaozaoWang/Interactive-Neural-Networks/autodiff"
//
//	func main() {
//	    a := autodiff.NewValue(2)
//	    b := autodiff.NewValue(-3)
//	    c := a.Mul(b).Add(autodiff.NewValue(10)).Tanh()
//
//	    c.Backward()
//	    fmt.Println(a.Grad, b.Grad)
//	}
package autodiff

import (
	"github.com/XiaozaoWang/Interactive-Neural-Networks/internal/autodiff"
)

// Value is a node in the computation graph.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Operations recorded on graph nodes.
const (
	OpLeaf    = autodiff.OpLeaf
	OpAdd     = autodiff.OpAdd
	OpMul     = autodiff.OpMul
	OpPow     = autodiff.OpPow
	OpTanh    = autodiff.OpTanh
	OpExp     = autodiff.OpExp
	OpLog     = autodiff.OpLog
	OpReLU    = autodiff.OpReLU
	OpSigmoid = autodiff.OpSigmoid
)

// NewValue creates a leaf node holding data.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// NewLabeledValue creates a leaf node with a display label.
func NewLabeledValue(data float64, label string) *Value {
	return autodiff.NewLabeledValue(data, label)
}

// Scalar lifts a plain number into a leaf node.
func Scalar(data float64) *Value {
	return autodiff.Scalar(data)
}

// Values lifts each number into its own leaf node.
func Values(data ...float64) []*Value {
	return autodiff.Values(data...)
}

// Floats reads the data of each node.
func Floats(vs []*Value) []float64 {
	return autodiff.Floats(vs)
}

// Sum adds every node. The sum of no nodes is a zero leaf.
func Sum(vs ...*Value) *Value {
	return autodiff.Sum(vs...)
}

// Dot returns the sum of pairwise products of a and b.
func Dot(a, b []*Value) *Value {
	return autodiff.Dot(a, b)
}

// TopologicalOrder returns every node reachable from root, operands first.
func TopologicalOrder(root *Value) []*Value {
	return autodiff.TopologicalOrder(root)
}

// ZeroGrad resets the gradient of every node in vs.
func ZeroGrad(vs []*Value) {
	autodiff.ZeroGrad(vs)
}

// Graph is an indexed snapshot of the nodes reachable from a root.
type Graph = autodiff.Graph

// Edge connects an operand node to the node it feeds.
type Edge = autodiff.Edge

// NewGraph indexes the graph under root.
func NewGraph(root *Value) *Graph {
	return autodiff.NewGraph(root)
}
