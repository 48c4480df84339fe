// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package iplpm

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical tree diagram of the ordered CIDRs
// as string, just a wrapper for [RadixTrie.Fprint].
// If Fprint returns an error, String panics.
func (t *RadixTrie[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [RadixTrie.Fprint].
func (t *RadixTrie[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// Fprint writes a hierarchical tree diagram of the ordered CIDRs
// with default formatted payload V to w. If w is nil, Fprint panics.
//
// The order from top to bottom is in ascending order of the prefix address
// and the subtree structure is determined by the CIDRs coverage.
//
//	▼
//	├─ 10.0.0.0/8 (V)
//	│  ├─ 10.0.0.0/24 (V)
//	│  └─ 10.0.1.0/24 (V)
//	├─ 127.0.0.0/8 (V)
//	│  └─ 127.0.0.1/32 (V)
//	├─ 169.254.0.0/16 (V)
//	├─ 172.16.0.0/12 (V)
//	└─ 192.168.0.0/16 (V)
//	   └─ 192.168.1.0/24 (V)
func (t *RadixTrie[V]) Fprint(w io.Writer) error {
	return fprintList(w, t.DumpList())
}

// String returns a hierarchical tree diagram of the ordered CIDRs
// as string, just a wrapper for [PrefixTree.Fprint].
// If Fprint returns an error, String panics.
func (t *PrefixTree[V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// MarshalText implements the [encoding.TextMarshaler] interface,
// just a wrapper for [PrefixTree.Fprint].
func (t *PrefixTree[V]) MarshalText() ([]byte, error) {
	w := new(bytes.Buffer)
	if err := t.Fprint(w); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// Fprint writes the same diagram as [RadixTrie.Fprint], the CIDRs
// coverage and not the shape of the search tree, see [PrefixTree.Dump].
func (t *PrefixTree[V]) Fprint(w io.Writer) error {
	return fprintList(w, t.DumpList())
}

func fprintList[V any](w io.Writer, list []DumpListNode[V]) error {
	if len(list) == 0 {
		return nil
	}

	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	return fprintRec(w, list, "")
}

// fprintRec, the output is a hierarchical CIDR tree starting with list.
func fprintRec[V any](w io.Writer, list []DumpListNode[V], pad string) error {
	// symbols used in tree
	glyphe := "├─ "
	spacer := "│  "

	for i, item := range list {
		// ... treat last item special
		if i == len(list)-1 {
			glyphe = "└─ "
			spacer = "   "
		}

		if _, err := fmt.Fprintf(w, "%s%s (%v)\n", pad+glyphe, item.CIDR, item.Value); err != nil {
			return err
		}

		if err := fprintRec(w, item.Subnets, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}
