// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden provides a simple and slow IPv4 route table,
// a slice of routes, as golden reference for the lookup structures.
package golden

import (
	"cmp"
	"fmt"
	"slices"
)

// Table is a simple and slow route table, implemented as a slice of
// prefixes and values as a golden reference.
type Table[V any] []Item[V]

// Item is a masked route with its value.
type Item[V any] struct {
	Prefix uint32
	Bits   int
	Val    V
}

func (g Item[V]) String() string {
	return fmt.Sprintf("(%d.%d.%d.%d/%d, %v)",
		g.Prefix>>24, g.Prefix>>16&0xff, g.Prefix>>8&0xff, g.Prefix&0xff, g.Bits, g.Val)
}

// Mask returns the netmask for bits in 0..32.
func Mask(bits int) uint32 {
	if bits == 0 {
		return 0
	}
	return ^uint32(0) << (32 - bits)
}

// Insert adds or updates the route, prefix is masked.
func (t *Table[V]) Insert(prefix uint32, bits int, val V) {
	prefix &= Mask(bits)
	for i, item := range *t {
		if item.Prefix == prefix && item.Bits == bits {
			(*t)[i].Val = val // de-dupe
			return
		}
	}
	*t = append(*t, Item[V]{prefix, bits, val})
}

// Get returns the value of the exact route.
func (t Table[V]) Get(prefix uint32, bits int) (val V, ok bool) {
	prefix &= Mask(bits)
	for _, item := range t {
		if item.Prefix == prefix && item.Bits == bits {
			return item.Val, true
		}
	}
	return val, false
}

// Lookup, the brute force longest-prefix-match.
func (t Table[V]) Lookup(addr uint32) (val V, ok bool) {
	bestLen := -1

	for _, item := range t {
		if addr&Mask(item.Bits) == item.Prefix && item.Bits > bestLen {
			val = item.Val
			ok = true
			bestLen = item.Bits
		}
	}
	return val, ok
}

// Sort, inplace by prefix, then by prefix length.
func (t *Table[V]) Sort() {
	slices.SortFunc(*t, func(a, b Item[V]) int {
		if c := cmp.Compare(a.Prefix, b.Prefix); c != 0 {
			return c
		}
		return cmp.Compare(a.Bits, b.Bits)
	})
}
