// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"fmt"
	"io"
	"strings"
)

// ##################################################
//  useful during development, debugging and testing
// ##################################################

// Dump writes the shape of the trie to w, one line per node that
// terminates a route, indented by depth.
//
//	### RadixTrie: size(3), nodes(26)
//	[ROOT] depth:  0 path: [] / 0
//	................[FULL] depth: 16 path: [11000000 10101000] / 16 (Router_A)
func (t *RadixTrie[V]) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "### RadixTrie: size(%d), nodes(%d)\n", t.Size(), t.Nodes()); err != nil {
		return err
	}
	return t.root.dumpRec(w, 0, 0)
}

// dumpRec, rec-descent the trie, only nodes with a value and the root are printed.
func (n *trieNode[V]) dumpRec(w io.Writer, path uint32, depth int) error {
	if n == nil {
		return nil
	}

	if n.hasVal || depth == 0 {
		indent := strings.Repeat(".", depth)
		if _, err := fmt.Fprintf(w, "%s[%s] depth: %2d path: [%s] / %d",
			indent, n.nodeType(depth), depth, bitPath(path, depth), depth); err != nil {
			return err
		}

		if n.hasVal {
			if _, err := fmt.Fprintf(w, " (%v)", n.val); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	if depth == maxBits {
		return nil
	}

	if err := n.left.dumpRec(w, path, depth+1); err != nil {
		return err
	}
	return n.right.dumpRec(w, path|1<<(maxBits-1-depth), depth+1)
}

func (n *trieNode[V]) nodeType(depth int) string {
	switch {
	case depth == 0:
		return "ROOT"
	case n.left == nil && n.right == nil:
		return "LEAF"
	default:
		return "FULL"
	}
}

// bitPath, the first depth bits of path, grouped in octets.
func bitPath(path uint32, depth int) string {
	var b strings.Builder
	for i := range depth {
		if i > 0 && i%8 == 0 {
			b.WriteByte(' ')
		}
		if path>>(maxBits-1-i)&1 == 1 {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// Dump writes the shape of the search tree to w, pre-order,
// indented by depth, the side of the parent in front.
//
//	### PrefixTree: size(3), height(3)
//	[R] 192.168.0.0/16 (Router_A)
//	.[>] 192.168.1.0/24 (Router_B)
//	..[>] 192.168.1.128/25 (Router_C)
func (t *PrefixTree[V]) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "### PrefixTree: size(%d), height(%d)\n", t.Size(), t.Height()); err != nil {
		return err
	}
	return t.root.dumpRec(w, "R", 0)
}

func (n *bstNode[V]) dumpRec(w io.Writer, side string, depth int) error {
	if n == nil {
		return nil
	}

	r := Route{Prefix: n.prefix, Bits: n.bits}
	if _, err := fmt.Fprintf(w, "%s[%s] %s (%v)\n", strings.Repeat(".", depth), side, r, n.val); err != nil {
		return err
	}

	if err := n.left.dumpRec(w, "<", depth+1); err != nil {
		return err
	}
	return n.right.dumpRec(w, ">", depth+1)
}

// dumpString is just a wrapper for Dump.
func dumpString(d interface{ Dump(io.Writer) error }) string {
	w := new(strings.Builder)
	if err := d.Dump(w); err != nil {
		panic(err)
	}
	return w.String()
}
