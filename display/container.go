// Copyright 2026 The phaser Authors
// SPDX-License-Identifier: MIT

package display

// Container groups child nodes under a shared placement. Children are drawn
// in insertion order; each child's own placement composes with the
// container's, and the container's alpha multiplies into its children.
//
// A container has no appearance of its own.
type Container struct {
	Base

	children []Node
}

var _ Placed = (*Container)(nil)

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{Base: NewBase()}
}

// Add appends children to the container. A nil child is ignored.
func (c *Container) Add(nodes ...Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		c.children = append(c.children, n)
	}
}

// Remove removes the first occurrence of n, reporting whether it was found.
func (c *Container) Remove(n Node) bool {
	for i, child := range c.children {
		if child == n {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of direct children.
func (c *Container) Len() int { return len(c.children) }

// Children returns the container's children in draw order. The returned
// slice is the container's own; callers must not append to or reorder it.
func (c *Container) Children() []Node { return c.children }
