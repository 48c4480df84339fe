// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"slices"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// DumpListNode contains CIDR, Value and Subnets, representing the routes
// in a sorted, recursive representation, especially useful for serialization.
type DumpListNode[V any] struct {
	CIDR    Route             `json:"cidr"`
	Value   V                 `json:"value"`
	Subnets []DumpListNode[V] `json:"subnets,omitempty"`
}

type routeItem[V any] struct {
	route Route
	val   V
}

// MarshalJSON dumps the trie into a list of roots and their subnets,
// an array and not a map, because the order matters.
func (t *RadixTrie[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}

// DumpList dumps the trie into a list of roots and their subnets.
func (t *RadixTrie[V]) DumpList() []DumpListNode[V] {
	return dumpList(t.All)
}

// MarshalJSON dumps the tree into a list of roots and their subnets,
// an array and not a map, because the order matters.
func (t *PrefixTree[V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.DumpList())
}

// DumpList dumps the tree into a list of roots and their subnets,
// the same result as [RadixTrie.DumpList] for the same routes.
func (t *PrefixTree[V]) DumpList() []DumpListNode[V] {
	return dumpList(t.All)
}

// dumpList collects all routes from seq in CIDR sort order
// and nests them by coverage.
func dumpList[V any](seq func(yield func(Route, V) bool)) []DumpListNode[V] {
	var items []routeItem[V]
	for r, v := range seq {
		items = append(items, routeItem[V]{r, v})
	}

	slices.SortFunc(items, func(a, b routeItem[V]) int {
		return cmpRoute(a.route, b.route)
	})

	return nestItems(items)
}

// nestItems, the items are sorted, all subnets of an item follow
// the item without a gap.
func nestItems[V any](items []routeItem[V]) []DumpListNode[V] {
	if len(items) == 0 {
		return nil
	}

	var list []DumpListNode[V]
	for i := 0; i < len(items); {
		parent := items[i]

		j := i + 1
		for j < len(items) && parent.route.Covers(items[j].route) {
			j++
		}

		list = append(list, DumpListNode[V]{
			CIDR:    parent.route,
			Value:   parent.val,
			Subnets: nestItems(items[i+1 : j]),
		})
		i = j
	}

	return list
}
