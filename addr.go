// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"encoding/binary"
	"net/netip"

	"github.com/pkg/errors"
)

// ParseIPv4 parses a dotted-quad address, e.g. "192.168.1.5",
// into a uint32 with the first octet in bits 31..24.
func ParseIPv4(s string) (uint32, error) {
	ip, err := netip.ParseAddr(s)
	if err != nil || !ip.Is4() {
		return 0, errors.Wrapf(ErrInvalidAddr, "%q", s)
	}
	return addrToUint32(ip), nil
}

// MustParseIPv4 is like [ParseIPv4] but panics on error.
func MustParseIPv4(s string) uint32 {
	addr, err := ParseIPv4(s)
	if err != nil {
		panic(err)
	}
	return addr
}

// FormatIPv4 returns the dotted-quad notation of addr.
func FormatIPv4(addr uint32) string {
	return Uint32ToAddr(addr).String()
}

// ParseRoutePrefix parses a CIDR like "10.0.0.0/8".
// The host bits are not required to be zero, "10.1.2.3/8" is accepted
// and returned unmasked.
func ParseRoutePrefix(s string) (prefix uint32, bits int, err error) {
	pfx, err := netip.ParsePrefix(s)
	if err != nil || !pfx.Addr().Is4() {
		return 0, 0, errors.Wrapf(ErrInvalidAddr, "prefix %q", s)
	}
	return addrToUint32(pfx.Addr()), pfx.Bits(), nil
}

// Uint32ToAddr converts addr to a [netip.Addr].
func Uint32ToAddr(addr uint32) netip.Addr {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], addr)
	return netip.AddrFrom4(b)
}

func addrToUint32(ip netip.Addr) uint32 {
	b := ip.As4()
	return binary.BigEndian.Uint32(b[:])
}
