// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package compare drives the RadixTrie and the PrefixTree with identical
// routes and lookups, reports every disagreement and times repeated
// lookups against each structure.
//
// A bart.Table is kept as third, independent reference.
package compare

import (
	"net/netip"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gaissmai/bart"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/gaissmai/iplpm"
	"github.com/gaissmai/iplpm/internal/metrics"
)

var log = logrus.WithField("component", "compare")

// Route is a route with its next hop.
type Route[V any] struct {
	Prefix  uint32
	Bits    int
	NextHop V
}

// Result of a single lookup against one structure.
type Result[V any] struct {
	NextHop V    `json:"nextHop"`
	Found   bool `json:"found"`
}

// Mismatch records an address where the structures disagree.
type Mismatch[V any] struct {
	Addr      uint32
	Trie      Result[V]
	Tree      Result[V]
	Reference Result[V]
}

// Timing is the result of a timing run.
type Timing struct {
	Iterations int
	Trie       time.Duration
	Tree       time.Duration
}

// Speedup returns how many times the trie is faster than the tree,
// 0 if the trie time is not measurable.
func (t Timing) Speedup() float64 {
	if t.Trie <= 0 {
		return 0
	}
	return t.Tree.Seconds() / t.Trie.Seconds()
}

// Option configures a Comparator.
type Option func(*options)

type options struct {
	clock     clock.Clock
	metrics   *metrics.Metrics
	reference bool
}

// WithClock sets the clock for the timing runs, default is the wall clock.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithMetrics enables the prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithReference enables or disables the bart.Table reference, default is enabled.
func WithReference(enabled bool) Option {
	return func(o *options) { o.reference = enabled }
}

// Comparator owns a RadixTrie, a PrefixTree and optionally a reference table,
// all with the same routes.
type Comparator[V comparable] struct {
	trie *iplpm.RadixTrie[V]
	tree *iplpm.PrefixTree[V]
	ref  *bart.Table[V]

	clock   clock.Clock
	metrics *metrics.Metrics
}

// New returns an empty Comparator.
func New[V comparable](opts ...Option) *Comparator[V] {
	o := options{clock: clock.New(), reference: true}
	for _, opt := range opts {
		opt(&o)
	}

	c := &Comparator[V]{
		trie:    new(iplpm.RadixTrie[V]),
		tree:    new(iplpm.PrefixTree[V]),
		clock:   o.clock,
		metrics: o.metrics,
	}
	if o.reference {
		c.ref = new(bart.Table[V])
	}
	return c
}

// Trie returns the radix trie, read-only.
func (c *Comparator[V]) Trie() *iplpm.RadixTrie[V] { return c.trie }

// Tree returns the prefix tree, read-only.
func (c *Comparator[V]) Tree() *iplpm.PrefixTree[V] { return c.tree }

// Insert adds all routes in the same order to all structures.
// On the first invalid route Insert stops and returns the error,
// the routes before are kept.
func (c *Comparator[V]) Insert(routes []Route[V]) error {
	for i, r := range routes {
		if err := c.trie.Insert(r.Prefix, r.Bits, r.NextHop); err != nil {
			return errors.Wrapf(err, "route #%d", i)
		}
		if err := c.tree.Insert(r.Prefix, r.Bits, r.NextHop); err != nil {
			return errors.Wrapf(err, "route #%d", i)
		}
		if c.ref != nil {
			pfx := netip.PrefixFrom(iplpm.Uint32ToAddr(r.Prefix), r.Bits).Masked()
			c.ref.Insert(pfx, r.NextHop)
		}
	}

	c.metrics.SetRoutes(metrics.RadixTrie, c.trie.Size())
	c.metrics.SetRoutes(metrics.PrefixTree, c.tree.Size())

	log.WithFields(logrus.Fields{
		"inserted":   len(routes),
		"trieRoutes": c.trie.Size(),
		"trieNodes":  c.trie.Nodes(),
		"treeRoutes": c.tree.Size(),
		"treeHeight": c.tree.Height(),
	}).Debug("routes inserted")

	return nil
}

// Lookup queries all structures for addr and reports whether they agree.
func (c *Comparator[V]) Lookup(addr uint32) (m Mismatch[V], agree bool) {
	m.Addr = addr
	m.Trie.NextHop, m.Trie.Found = c.trie.Lookup(addr)
	m.Tree.NextHop, m.Tree.Found = c.tree.Lookup(addr)

	c.metrics.ObserveLookup(metrics.RadixTrie, m.Trie.Found)
	c.metrics.ObserveLookup(metrics.PrefixTree, m.Tree.Found)

	agree = m.Trie == m.Tree
	if c.ref != nil {
		m.Reference.NextHop, m.Reference.Found = c.ref.Lookup(iplpm.Uint32ToAddr(addr))
		c.metrics.ObserveLookup(metrics.Reference, m.Reference.Found)
		agree = agree && m.Trie == m.Reference
	}

	if !agree {
		c.metrics.ObserveMismatch()
		log.WithFields(logrus.Fields{
			"addr":      iplpm.FormatIPv4(addr),
			"trie":      m.Trie,
			"tree":      m.Tree,
			"reference": m.Reference,
		}).Warn("lookup mismatch")
	}

	return m, agree
}

// Check looks up all addrs and returns the disagreements.
func (c *Comparator[V]) Check(addrs []uint32) []Mismatch[V] {
	var mismatches []Mismatch[V]
	for _, addr := range addrs {
		if m, agree := c.Lookup(addr); !agree {
			mismatches = append(mismatches, m)
		}
	}
	return mismatches
}

// sink keeps the timed lookups from being optimized away.
var sink bool

// Time runs n identical lookups for addr against the trie and the tree.
func (c *Comparator[V]) Time(addr uint32, n int) Timing {
	timing := Timing{Iterations: n}

	start := c.clock.Now()
	for range n {
		_, sink = c.tree.Lookup(addr)
	}
	timing.Tree = c.clock.Since(start)

	start = c.clock.Now()
	for range n {
		_, sink = c.trie.Lookup(addr)
	}
	timing.Trie = c.clock.Since(start)

	c.metrics.SetTiming(metrics.PrefixTree, timing.Tree.Seconds())
	c.metrics.SetTiming(metrics.RadixTrie, timing.Trie.Seconds())

	log.WithFields(logrus.Fields{
		"addr":       iplpm.FormatIPv4(addr),
		"iterations": n,
		"tree":       timing.Tree,
		"trie":       timing.Trie,
	}).Debug("timing run done")

	return timing
}
