// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"errors"
	"testing"
)

var mpa = MustParseIPv4

// mpr parses a CIDR into a Route, panics on error.
var mpr = func(s string) Route {
	prefix, bits, err := ParseRoutePrefix(s)
	if err != nil {
		panic(err)
	}
	return Route{Prefix: prefix, Bits: bits}
}

// routeTable is the small table from the lookup scenario.
var routeTable = []struct {
	cidr    string
	nextHop string
}{
	{"192.168.0.0/16", "Router_A"},
	{"192.168.1.0/24", "Router_B"},
	{"192.168.1.128/25", "Router_C"},
	{"10.0.0.0/8", "Router_D"},
	{"172.16.0.0/12", "Router_E"},
}

func TestMask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want uint32
	}{
		{-1, 0},
		{0, 0},
		{1, 0x8000_0000},
		{8, 0xff00_0000},
		{16, 0xffff_0000},
		{25, 0xffff_ff80},
		{31, 0xffff_fffe},
		{32, 0xffff_ffff},
		{33, 0xffff_ffff},
	}

	for _, tt := range tests {
		if got := Mask(tt.bits); got != tt.want {
			t.Errorf("Mask(%d), want %08x, got %08x", tt.bits, tt.want, got)
		}
	}
}

func TestCheckBits(t *testing.T) {
	t.Parallel()

	for _, bits := range []int{0, 1, 31, 32} {
		if err := checkBits(bits); err != nil {
			t.Errorf("checkBits(%d), unexpected error: %v", bits, err)
		}
	}

	for _, bits := range []int{-1, 33, 128} {
		if err := checkBits(bits); !errors.Is(err, ErrInvalidPrefixLen) {
			t.Errorf("checkBits(%d), want ErrInvalidPrefixLen, got %v", bits, err)
		}
	}
}

func TestRouteMethods(t *testing.T) {
	t.Parallel()

	r := Route{Prefix: mpa("10.1.2.3"), Bits: 8}

	if got, want := r.Masked(), mpr("10.0.0.0/8"); got != want {
		t.Errorf("Masked, want %v, got %v", want, got)
	}

	if !r.Contains(mpa("10.255.0.1")) {
		t.Errorf("%v should contain 10.255.0.1", r)
	}

	if r.Contains(mpa("11.0.0.1")) {
		t.Errorf("%v should not contain 11.0.0.1", r)
	}

	if !r.Masked().Covers(mpr("10.1.0.0/16")) {
		t.Errorf("10.0.0.0/8 should cover 10.1.0.0/16")
	}

	if mpr("10.1.0.0/16").Covers(mpr("10.0.0.0/8")) {
		t.Errorf("10.1.0.0/16 should not cover 10.0.0.0/8")
	}

	if got, want := r.String(), "10.1.2.3/8"; got != want {
		t.Errorf("String, want %q, got %q", want, got)
	}

	if !(Route{}).Contains(mpa("8.8.8.8")) {
		t.Errorf("default route should contain every address")
	}
}

func TestCmpRoute(t *testing.T) {
	t.Parallel()

	a := mpr("10.0.0.0/8")
	b := mpr("10.0.0.0/16")
	c := mpr("11.0.0.0/8")

	if cmpRoute(a, b) >= 0 || cmpRoute(b, c) >= 0 || cmpRoute(a, a) != 0 || cmpRoute(c, a) <= 0 {
		t.Errorf("cmpRoute, unexpected order for %v, %v, %v", a, b, c)
	}
}
