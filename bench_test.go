// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/gaissmai/iplpm/internal/random"
)

var benchRouteCount = []int{1, 10, 100, 1_000, 10_000}

func BenchmarkLookupMatch(b *testing.B) {
	for _, n := range benchRouteCount {
		prng := rand.New(rand.NewPCG(42, 42))
		routes := random.RealWorldPrefixes(prng, n)

		trie := new(RadixTrie[int])
		tree := new(PrefixTree[int])
		for i, r := range routes {
			_ = trie.Insert(r.Prefix, r.Bits, i)
			_ = tree.Insert(r.Prefix, r.Bits, i)
		}

		probe := random.Covered(prng, routes[prng.IntN(len(routes))])

		b.Run(fmt.Sprintf("RadixTrie/%d", n), func(b *testing.B) {
			for b.Loop() {
				trie.Lookup(probe)
			}
		})

		b.Run(fmt.Sprintf("PrefixTree/%d", n), func(b *testing.B) {
			for b.Loop() {
				tree.Lookup(probe)
			}
		})
	}
}

func BenchmarkInsert(b *testing.B) {
	for _, n := range benchRouteCount {
		prng := rand.New(rand.NewPCG(42, 42))
		routes := random.RealWorldPrefixes(prng, n)

		b.Run(fmt.Sprintf("RadixTrie/%d", n), func(b *testing.B) {
			for b.Loop() {
				trie := new(RadixTrie[int])
				for i, r := range routes {
					_ = trie.Insert(r.Prefix, r.Bits, i)
				}
			}
		})

		b.Run(fmt.Sprintf("PrefixTree/%d", n), func(b *testing.B) {
			for b.Loop() {
				tree := new(PrefixTree[int])
				for i, r := range routes {
					_ = tree.Insert(r.Prefix, r.Bits, i)
				}
			}
		})
	}
}

func BenchmarkMemory(b *testing.B) {
	for _, n := range benchRouteCount {
		prng := rand.New(rand.NewPCG(42, 42))
		routes := random.RealWorldPrefixes(prng, n)

		trie := new(RadixTrie[struct{}])
		tree := new(PrefixTree[struct{}])
		for _, r := range routes {
			_ = trie.Insert(r.Prefix, r.Bits, struct{}{})
			_ = tree.Insert(r.Prefix, r.Bits, struct{}{})
		}

		b.Run(fmt.Sprintf("Nodes/%d", n), func(b *testing.B) {
			for b.Loop() {
				_ = trie.Nodes()
			}
			b.ReportMetric(float64(trie.Nodes()), "trie-nodes")
			b.ReportMetric(float64(tree.Height()), "tree-height")
			b.ReportMetric(0, "ns/op")
		})
	}
}
