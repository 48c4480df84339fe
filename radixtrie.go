// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

// RadixTrie is a binary trie for IPv4 routes with payload V.
// Every level consumes one address bit, starting with bit 31.
// The zero value is ready to use.
type RadixTrie[V any] struct {
	root trieNode[V]

	// number of routes and allocated nodes, root not counted
	size  int
	nodes int
}

// trieNode, left for bit 0, right for bit 1.
// A node with hasVal set terminates a route at this depth.
type trieNode[V any] struct {
	left  *trieNode[V]
	right *trieNode[V]

	val    V
	hasVal bool
}

func (n *trieNode[V]) getChild(bit uint32) *trieNode[V] {
	if bit == 0 {
		return n.left
	}
	return n.right
}

func (n *trieNode[V]) setChild(bit uint32, c *trieNode[V]) {
	if bit == 0 {
		n.left = c
		return
	}
	n.right = c
}

// Insert adds the route prefix/bits with value val.
// Only the top bits of prefix are significant.
// If the route is already present, its value is set to val.
//
// Insert returns ErrInvalidPrefixLen for bits outside 0..32,
// the trie is left untouched.
func (t *RadixTrie[V]) Insert(prefix uint32, bits int, val V) error {
	if err := checkBits(bits); err != nil {
		return err
	}

	n := &t.root

	// bits == 0 never enters the loop, the root holds the default route
	for i := maxBits - 1; i >= maxBits-bits; i-- {
		bit := (prefix >> i) & 1

		c := n.getChild(bit)
		if c == nil {
			c = new(trieNode[V])
			n.setChild(bit, c)
			t.nodes++
		}
		n = c
	}

	if !n.hasVal {
		t.size++
	}
	n.val = val
	n.hasVal = true

	return nil
}

// Lookup does a longest-prefix-match for addr and returns the associated
// value and true, or false if no route matched.
func (t *RadixTrie[V]) Lookup(addr uint32) (val V, ok bool) {
	val, ok, _ = t.lookup(addr)
	return val, ok
}

// lookup returns additionally the number of levels descended,
// never more than 32.
func (t *RadixTrie[V]) lookup(addr uint32) (val V, ok bool, depth int) {
	n := &t.root

	for i := maxBits - 1; i >= 0; i-- {
		// deeper nodes are visited later, the last hit is the longest match
		if n.hasVal {
			val, ok = n.val, true
		}

		c := n.getChild((addr >> i) & 1)
		if c == nil {
			break
		}
		n = c
		depth++
	}

	// the last node reached may terminate a route, even a /32
	if n.hasVal {
		val, ok = n.val, true
	}

	return val, ok, depth
}

// Contains reports whether any route matches addr.
func (t *RadixTrie[V]) Contains(addr uint32) bool {
	_, ok := t.Lookup(addr)
	return ok
}

// Get returns the value of the exact route prefix/bits.
func (t *RadixTrie[V]) Get(prefix uint32, bits int) (val V, ok bool) {
	if checkBits(bits) != nil {
		return val, false
	}

	n := &t.root
	for i := maxBits - 1; i >= maxBits-bits; i-- {
		if n = n.getChild((prefix >> i) & 1); n == nil {
			return val, false
		}
	}

	return n.val, n.hasVal
}

// Size returns the number of routes.
func (t *RadixTrie[V]) Size() int {
	return t.size
}

// Nodes returns the number of allocated trie nodes, the root included.
func (t *RadixTrie[V]) Nodes() int {
	return t.nodes + 1
}

// All may be used in a for/range loop to iterate through all the routes
// in natural CIDR sort order, by address and then by prefix length.
//
// Routes must not be inserted during iteration, otherwise the behavior
// is undefined.
//
// If the yield function returns false, the iteration ends prematurely.
func (t *RadixTrie[V]) All(yield func(r Route, val V) bool) {
	t.root.allRec(0, 0, yield)
}

// allRec, pre-order with left before right is the CIDR sort order.
func (n *trieNode[V]) allRec(path uint32, depth int, yield func(Route, V) bool) bool {
	if n == nil {
		return true
	}

	if n.hasVal && !yield(Route{Prefix: path, Bits: depth}, n.val) {
		return false
	}

	if depth == maxBits {
		return true
	}

	return n.left.allRec(path, depth+1, yield) &&
		n.right.allRec(path|1<<(maxBits-1-depth), depth+1, yield)
}
