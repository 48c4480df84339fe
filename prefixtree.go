// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

// PrefixTree is an unbalanced binary search tree for IPv4 routes with
// payload V, ordered by the numeric value of the prefix. The prefix
// length takes no part in the ordering.
//
// The ordering carries no information about prefix containment, a
// Lookup has to visit all nodes and the tree serves as a baseline for
// the [RadixTrie]. Sorted insertion degrades the tree to a list.
//
// The zero value is ready to use.
type PrefixTree[V any] struct {
	root *bstNode[V]
	size int
}

type bstNode[V any] struct {
	prefix uint32
	bits   int
	val    V

	left  *bstNode[V]
	right *bstNode[V]
}

// matches, the top bits of addr and prefix are equal.
func (n *bstNode[V]) matches(addr uint32) bool {
	mask := Mask(n.bits)
	return addr&mask == n.prefix&mask
}

// Insert adds the route prefix/bits with value val.
// The prefix is stored masked, a smaller prefix goes left,
// an equal or greater prefix goes right.
//
// If the same route is met on the way down its value is set to val.
// The same prefix with a different length gets its own node in the
// right subtree.
//
// Insert returns ErrInvalidPrefixLen for bits outside 0..32,
// the tree is left untouched.
func (t *PrefixTree[V]) Insert(prefix uint32, bits int, val V) error {
	if err := checkBits(bits); err != nil {
		return err
	}

	// always normalize the prefix
	prefix &= Mask(bits)

	link := &t.root
	for *link != nil {
		n := *link

		if n.prefix == prefix && n.bits == bits {
			n.val = val
			return nil
		}

		if prefix < n.prefix {
			link = &n.left
		} else {
			link = &n.right
		}
	}

	*link = &bstNode[V]{prefix: prefix, bits: bits, val: val}
	t.size++

	return nil
}

// Lookup does a longest-prefix-match for addr and returns the associated
// value and true, or false if no route matched.
func (t *PrefixTree[V]) Lookup(addr uint32) (val V, ok bool) {
	_, val, ok = t.LookupLen(addr)
	return val, ok
}

// LookupLen is like [PrefixTree.Lookup] but returns also the prefix length
// of the matching route, or -1 if no route matched.
func (t *PrefixTree[V]) LookupLen(addr uint32) (bits int, val V, ok bool) {
	bits, val = t.root.lookupRec(addr, -1, val)
	return bits, val, bits >= 0
}

// lookupRec visits the whole tree, this node first and then both subtrees.
// The best match so far is passed down and returned.
func (n *bstNode[V]) lookupRec(addr uint32, bestLen int, best V) (int, V) {
	if n == nil {
		return bestLen, best
	}

	if n.bits > bestLen && n.matches(addr) {
		bestLen, best = n.bits, n.val
	}

	bestLen, best = n.left.lookupRec(addr, bestLen, best)
	return n.right.lookupRec(addr, bestLen, best)
}

// Contains reports whether any route matches addr.
func (t *PrefixTree[V]) Contains(addr uint32) bool {
	_, ok := t.Lookup(addr)
	return ok
}

// Get returns the value of the exact route prefix/bits.
func (t *PrefixTree[V]) Get(prefix uint32, bits int) (val V, ok bool) {
	if checkBits(bits) != nil {
		return val, false
	}
	prefix &= Mask(bits)

	// same path as Insert
	for n := t.root; n != nil; {
		if n.prefix == prefix && n.bits == bits {
			return n.val, true
		}

		if prefix < n.prefix {
			n = n.left
		} else {
			n = n.right
		}
	}

	return val, false
}

// Size returns the number of routes, one per node.
func (t *PrefixTree[V]) Size() int {
	return t.size
}

// Height returns the number of nodes on the longest path from the root
// down to a leaf, 0 for the empty tree. For n routes inserted in
// ascending order the height is n.
func (t *PrefixTree[V]) Height() int {
	return t.root.heightRec()
}

func (n *bstNode[V]) heightRec() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.heightRec(), n.right.heightRec())
}

// All may be used in a for/range loop to iterate through all the routes
// in tree order, ascending by prefix value. Routes with the same prefix
// and different lengths are returned in insertion order.
//
// If the yield function returns false, the iteration ends prematurely.
func (t *PrefixTree[V]) All(yield func(r Route, val V) bool) {
	t.root.allRec(yield)
}

// allRec, in-order traversal.
func (n *bstNode[V]) allRec(yield func(Route, V) bool) bool {
	if n == nil {
		return true
	}

	return n.left.allRec(yield) &&
		yield(Route{Prefix: n.prefix, Bits: n.bits}, n.val) &&
		n.right.allRec(yield)
}
