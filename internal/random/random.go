// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package random generates IPv4 addresses and routes for tests,
// fuzzing, benchmarks and the demo command.
package random

import (
	"math/rand/v2"
)

// Route is a generated route, always masked.
type Route struct {
	Prefix uint32
	Bits   int
}

func mask(bits int) uint32 {
	if bits == 0 {
		return 0
	}
	return ^uint32(0) << (32 - bits)
}

// Addr returns a random IPv4 address.
func Addr(prng *rand.Rand) uint32 {
	return prng.Uint32()
}

// Prefix returns a random masked route with a length in 0..32.
func Prefix(prng *rand.Rand) Route {
	bits := prng.IntN(33)
	return Route{Prefix: prng.Uint32() & mask(bits), Bits: bits}
}

// Prefixes returns n distinct random routes.
// Panics if n is greater than the possible number of routes.
func Prefixes(prng *rand.Rand, n int) []Route {
	set := make(map[Route]struct{}, n)
	routes := make([]Route, 0, n)

	for len(routes) < n {
		r := Prefix(prng)
		if _, ok := set[r]; ok {
			continue
		}
		set[r] = struct{}{}
		routes = append(routes, r)
	}
	return routes
}

// RealWorldPrefixes returns n distinct routes with lengths in 8..28,
// skipping the class E range 240.0.0.0/4.
func RealWorldPrefixes(prng *rand.Rand, n int) []Route {
	set := make(map[Route]struct{}, n)
	routes := make([]Route, 0, n)

	for len(routes) < n {
		r := Prefix(prng)

		// skip too small or too big masks
		if r.Bits < 8 || r.Bits > 28 {
			continue
		}

		// skip class E
		if r.Prefix>>28 == 0xf {
			continue
		}

		if _, ok := set[r]; ok {
			continue
		}
		set[r] = struct{}{}
		routes = append(routes, r)
	}
	return routes
}

// Covered returns an address inside r, host bits randomized.
func Covered(prng *rand.Rand, r Route) uint32 {
	return r.Prefix&mask(r.Bits) | prng.Uint32()&^mask(r.Bits)
}
