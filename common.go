// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"cmp"
	"strconv"

	"github.com/pkg/errors"
)

// maxBits is the address length of IPv4 and the max depth of the trie.
const maxBits = 32

var (
	// ErrInvalidAddr is returned for malformed dotted-quad input.
	ErrInvalidAddr = errors.New("invalid IPv4 address")

	// ErrInvalidPrefixLen is returned for prefix lengths outside 0..32.
	ErrInvalidPrefixLen = errors.New("invalid prefix length")
)

// Route is the key of a routing entry, a prefix and its length.
type Route struct {
	Prefix uint32
	Bits   int
}

// Mask returns the netmask for bits, the top bits set, all others cleared.
// Values outside 0..32 are clamped.
func Mask(bits int) uint32 {
	if bits <= 0 {
		return 0
	}
	if bits >= maxBits {
		return ^uint32(0)
	}
	return ^uint32(0) << (maxBits - bits)
}

// checkBits, the prefix length must be in 0..32
func checkBits(bits int) error {
	if bits < 0 || bits > maxBits {
		return errors.Wrapf(ErrInvalidPrefixLen, "%d", bits)
	}
	return nil
}

// Masked returns the route with the host bits cleared.
func (r Route) Masked() Route {
	return Route{Prefix: r.Prefix & Mask(r.Bits), Bits: r.Bits}
}

// Contains reports whether addr matches the route over its full length.
func (r Route) Contains(addr uint32) bool {
	m := Mask(r.Bits)
	return addr&m == r.Prefix&m
}

// Covers reports whether o is equal to or a subnet of r.
func (r Route) Covers(o Route) bool {
	return r.Bits <= o.Bits && r.Contains(o.Prefix)
}

// String returns the CIDR notation, e.g. "192.168.0.0/16".
func (r Route) String() string {
	return FormatIPv4(r.Prefix) + "/" + strconv.Itoa(r.Bits)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (r Route) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// cmpRoute, sort by address, then by prefix length.
func cmpRoute(a, b Route) int {
	if c := cmp.Compare(a.Prefix, b.Prefix); c != 0 {
		return c
	}
	return cmp.Compare(a.Bits, b.Bits)
}
