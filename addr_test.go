// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"errors"
	"testing"
)

func TestParseIPv4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want uint32
	}{
		{"0.0.0.0", 0},
		{"192.168.1.5", 0xc0a8_0105},
		{"10.0.0.1", 0x0a00_0001},
		{"255.255.255.255", 0xffff_ffff},
	}

	for _, tt := range tests {
		got, err := ParseIPv4(tt.in)
		if err != nil {
			t.Errorf("ParseIPv4(%q), unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseIPv4(%q), want %08x, got %08x", tt.in, tt.want, got)
		}

		// round trip
		if s := FormatIPv4(got); s != tt.in {
			t.Errorf("FormatIPv4(%08x), want %q, got %q", got, tt.in, s)
		}
	}
}

func TestParseIPv4Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"1.2.3",          // octet count
		"1.2.3.4.5",      // octet count
		"1.2.x.4",        // non numeric
		"1.2.3.256",      // out of range
		"-1.2.3.4",       // out of range
		"2001:db8::1",    // IPv6
		"::ffff:1.2.3.4", // mapped
	} {
		if _, err := ParseIPv4(in); !errors.Is(err, ErrInvalidAddr) {
			t.Errorf("ParseIPv4(%q), want ErrInvalidAddr, got %v", in, err)
		}
	}
}

func TestMustParseIPv4(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseIPv4 must panic on invalid input")
		}
	}()

	MustParseIPv4("300.1.1.1")
}

func TestParseRoutePrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in     string
		prefix uint32
		bits   int
	}{
		{"0.0.0.0/0", 0, 0},
		{"192.168.0.0/16", 0xc0a8_0000, 16},
		{"192.168.1.128/25", 0xc0a8_0180, 25},
		// host bits are kept
		{"10.1.2.3/8", 0x0a01_0203, 8},
		{"1.2.3.4/32", 0x0102_0304, 32},
	}

	for _, tt := range tests {
		prefix, bits, err := ParseRoutePrefix(tt.in)
		if err != nil {
			t.Errorf("ParseRoutePrefix(%q), unexpected error: %v", tt.in, err)
			continue
		}
		if prefix != tt.prefix || bits != tt.bits {
			t.Errorf("ParseRoutePrefix(%q), want %08x/%d, got %08x/%d", tt.in, tt.prefix, tt.bits, prefix, bits)
		}
	}

	for _, in := range []string{"10.0.0.0", "10.0.0.0/33", "10.0.0/8", "2001:db8::/32"} {
		if _, _, err := ParseRoutePrefix(in); !errors.Is(err, ErrInvalidAddr) {
			t.Errorf("ParseRoutePrefix(%q), want ErrInvalidAddr, got %v", in, err)
		}
	}
}

func TestUint32ToAddr(t *testing.T) {
	t.Parallel()

	ip := Uint32ToAddr(0xc0a8_0105)
	if !ip.Is4() || ip.String() != "192.168.1.5" {
		t.Errorf("Uint32ToAddr, want 192.168.1.5, got %v", ip)
	}
}
