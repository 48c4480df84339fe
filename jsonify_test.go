// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"testing"
)

func TestMarshalJSON(t *testing.T) {
	t.Parallel()

	trie := new(RadixTrie[string])
	tree := new(PrefixTree[string])

	for _, item := range routeTable {
		r := mpr(item.cidr)
		_ = trie.Insert(r.Prefix, r.Bits, item.nextHop)
		_ = tree.Insert(r.Prefix, r.Bits, item.nextHop)
	}

	want := `[{"cidr":"10.0.0.0/8","value":"Router_D"},` +
		`{"cidr":"172.16.0.0/12","value":"Router_E"},` +
		`{"cidr":"192.168.0.0/16","value":"Router_A","subnets":[` +
		`{"cidr":"192.168.1.0/24","value":"Router_B","subnets":[` +
		`{"cidr":"192.168.1.128/25","value":"Router_C"}]}]}]`

	for name, m := range map[string]interface{ MarshalJSON() ([]byte, error) }{
		"RadixTrie":  trie,
		"PrefixTree": tree,
	} {
		buf, err := m.MarshalJSON()
		if err != nil {
			t.Fatalf("%s.MarshalJSON, unexpected error: %v", name, err)
		}
		if string(buf) != want {
			t.Errorf("%s.MarshalJSON, want:\n%s\ngot:\n%s", name, want, buf)
		}
	}
}

func TestMarshalJSONEmpty(t *testing.T) {
	t.Parallel()

	buf, err := new(RadixTrie[int]).MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON, unexpected error: %v", err)
	}
	if string(buf) != "null" {
		t.Errorf("MarshalJSON on empty trie, want null, got %s", buf)
	}
}

func TestDumpListSamePrefixValue(t *testing.T) {
	t.Parallel()

	// insertion order differs from CIDR order
	tree := new(PrefixTree[int])
	_ = tree.Insert(mpa("10.0.0.0"), 24, 24)
	_ = tree.Insert(mpa("10.0.0.0"), 8, 8)
	_ = tree.Insert(mpa("10.0.0.0"), 16, 16)

	list := tree.DumpList()
	if len(list) != 1 || list[0].Value != 8 {
		t.Fatalf("DumpList, want a single root 10.0.0.0/8, got %v", list)
	}
	if len(list[0].Subnets) != 1 || list[0].Subnets[0].Value != 16 {
		t.Fatalf("DumpList, want 10.0.0.0/16 below 10.0.0.0/8, got %v", list[0].Subnets)
	}
	if sub := list[0].Subnets[0].Subnets; len(sub) != 1 || sub[0].Value != 24 {
		t.Fatalf("DumpList, want 10.0.0.0/24 below 10.0.0.0/16, got %v", sub)
	}
}
