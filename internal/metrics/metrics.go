// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package metrics holds the prometheus collectors of the comparator.
package metrics

import (
	"fmt"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "iplpm"

// Structure label values.
const (
	RadixTrie  = "radixtrie"
	PrefixTree = "prefixtree"
	Reference  = "reference"
)

type metricDefinition struct {
	Name string
	Help string
	Type string
}

// Metrics are registered once per registry.
type Metrics struct {
	Routes        *prometheus.GaugeVec
	Lookups       *prometheus.CounterVec
	Mismatches    prometheus.Counter
	TimingSeconds *prometheus.GaugeVec

	defs []metricDefinition
}

// New creates and registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}
	factory := promauto.With(reg)

	m.Routes = factory.NewGaugeVec(m.gaugeOpts("routes", "Number of routes stored per structure"),
		[]string{"structure"})
	m.Lookups = factory.NewCounterVec(m.counterOpts("lookups_total", "Number of lookups per structure and result"),
		[]string{"structure", "result"})
	m.Mismatches = factory.NewCounter(m.counterOpts("mismatches_total", "Number of lookups where the structures disagree"))
	m.TimingSeconds = factory.NewGaugeVec(m.gaugeOpts("timing_seconds", "Elapsed time of the last timing run per structure"),
		[]string{"structure"})

	return m
}

func (m *Metrics) counterOpts(name, help string) prometheus.CounterOpts {
	m.defs = append(m.defs, metricDefinition{Name: namespace + "_" + name, Help: help, Type: "counter"})
	return prometheus.CounterOpts{Namespace: namespace, Name: name, Help: help}
}

func (m *Metrics) gaugeOpts(name, help string) prometheus.GaugeOpts {
	m.defs = append(m.defs, metricDefinition{Name: namespace + "_" + name, Help: help, Type: "gauge"})
	return prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}
}

// ObserveLookup counts a lookup, a nil receiver is a no-op.
func (m *Metrics) ObserveLookup(structure string, ok bool) {
	if m == nil {
		return
	}
	result := "miss"
	if ok {
		result = "hit"
	}
	m.Lookups.WithLabelValues(structure, result).Inc()
}

// ObserveMismatch counts a disagreement, a nil receiver is a no-op.
func (m *Metrics) ObserveMismatch() {
	if m == nil {
		return
	}
	m.Mismatches.Inc()
}

// SetRoutes sets the route gauge, a nil receiver is a no-op.
func (m *Metrics) SetRoutes(structure string, n int) {
	if m == nil {
		return
	}
	m.Routes.WithLabelValues(structure).Set(float64(n))
}

// SetTiming sets the timing gauge, a nil receiver is a no-op.
func (m *Metrics) SetTiming(structure string, seconds float64) {
	if m == nil {
		return
	}
	m.TimingSeconds.WithLabelValues(structure).Set(seconds)
}

// GetDocumentation returns the metrics as markdown tables.
func (m *Metrics) GetDocumentation() string {
	var b strings.Builder
	for _, def := range m.defs {
		fmt.Fprintf(&b, `
### %s
| **Name** | %s |
|:---|:---|
| **Description** | %s |
| **Type** | %s |

`, def.Name, def.Name, def.Help, def.Type)
	}
	return b.String()
}
