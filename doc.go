// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package iplpm provides two IPv4 routing tables with longest-prefix-match
// lookups and identical semantics, built for side by side comparison:
//
//   - RadixTrie:  binary trie, one address bit per level, MSB first
//   - PrefixTree: binary search tree, ordered by the numeric prefix value
//
// The trie descends at most 32 levels for any lookup, independent of the
// number of routes. The tree orders its nodes by address value, which says
// nothing about prefix containment, so a lookup must visit every node.
//
// Addresses and prefixes are plain uint32 values, the most significant
// octet in bits 31..24. Use [ParseIPv4], [FormatIPv4] and
// [ParseRoutePrefix] to convert from and to the dotted-quad notation.
//
// Both tables have a single writer, the zero value is ready to use.
// Build the table once and query it as often as needed, concurrent
// lookups are safe as long as no Insert is in flight.
package iplpm
