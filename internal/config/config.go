// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package config holds the command line options and loads route tables
// from YAML files, from the viper config or from the built-in demo table.
package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/gaissmai/iplpm"
	"github.com/gaissmai/iplpm/internal/compare"
)

// Options, set by flags, config file and environment.
type Options struct {
	RoutesFile string   `json:"routesFile"`
	Generated  int      `json:"generated"`
	Probes     []string `json:"probes"`
	Iterations int      `json:"iterations"`
	PerfAddr   string   `json:"perfAddr"`
	Reference  bool     `json:"reference"`
	Server     Server   `json:"server"`
}

// Server options for the serve command.
type Server struct {
	Address string `json:"address"`
}

// DefaultProbes are the addresses looked up by the demo.
var DefaultProbes = []string{
	"192.168.1.5",
	"192.168.1.200",
	"10.5.10.1",
	"172.16.5.5",
	"8.8.8.8",
}

const (
	DefaultGenerated  = 100
	DefaultIterations = 100_000
	DefaultPerfAddr   = "192.168.1.5"

	// 10.i.0.0/16 must stay a valid address
	maxGenerated = 256
)

// Validate checks the numeric options and the addresses.
func (o *Options) Validate() error {
	if o.Generated < 0 || o.Generated > maxGenerated {
		return errors.Errorf("generated must be in 0..%d, got %d", maxGenerated, o.Generated)
	}
	if o.Iterations < 0 {
		return errors.Errorf("iterations must not be negative, got %d", o.Iterations)
	}
	if _, err := iplpm.ParseIPv4(o.PerfAddr); err != nil {
		return errors.Wrap(err, "perf-addr")
	}
	if _, err := ParseProbes(o.Probes); err != nil {
		return err
	}
	return nil
}

// RouteSpec is a route in text form, as found in route files.
type RouteSpec struct {
	Prefix  string `yaml:"prefix" mapstructure:"prefix" json:"prefix"`
	NextHop string `yaml:"nextHop" mapstructure:"nextHop" json:"nextHop"`
}

// File is the layout of a route file.
type File struct {
	Routes []RouteSpec `yaml:"routes"`
}

// LoadRoutesFile reads a YAML route file.
func LoadRoutesFile(path string) ([]RouteSpec, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading route file")
	}
	return ParseRoutesYAML(buf)
}

// ParseRoutesYAML decodes a route file, unknown keys are an error.
func ParseRoutesYAML(buf []byte) ([]RouteSpec, error) {
	var f File
	if err := yaml.UnmarshalStrict(buf, &f); err != nil {
		return nil, errors.Wrap(err, "decoding route file")
	}
	if len(f.Routes) == 0 {
		return nil, errors.New("route file has no routes")
	}
	return f.Routes, nil
}

// DecodeRoutes converts the raw value of a config key, e.g. viper's
// Get("table"), into route specs.
func DecodeRoutes(raw any) ([]RouteSpec, error) {
	var specs []RouteSpec
	if err := mapstructure.Decode(raw, &specs); err != nil {
		return nil, errors.Wrap(err, "decoding route table")
	}
	return specs, nil
}

// ParseRoutes converts route specs to routes, in order.
func ParseRoutes(specs []RouteSpec) ([]compare.Route[string], error) {
	routes := make([]compare.Route[string], 0, len(specs))
	for i, spec := range specs {
		prefix, bits, err := iplpm.ParseRoutePrefix(spec.Prefix)
		if err != nil {
			return nil, errors.Wrapf(err, "route #%d", i)
		}
		if spec.NextHop == "" {
			return nil, errors.Errorf("route #%d %s: missing next hop", i, spec.Prefix)
		}
		routes = append(routes, compare.Route[string]{Prefix: prefix, Bits: bits, NextHop: spec.NextHop})
	}
	return routes, nil
}

// ParseProbes parses the probe addresses.
func ParseProbes(probes []string) ([]uint32, error) {
	addrs := make([]uint32, 0, len(probes))
	for _, s := range probes {
		addr, err := iplpm.ParseIPv4(s)
		if err != nil {
			return nil, errors.Wrap(err, "probe")
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

// DemoRoutes returns the base table followed by n generated
// triples of /16, /20 and /24 routes.
func DemoRoutes(n int) []RouteSpec {
	specs := []RouteSpec{
		{"192.168.0.0/16", "Router_A"},
		{"192.168.1.0/24", "Router_B"},
		{"192.168.1.128/25", "Router_C"},
		{"10.0.0.0/8", "Router_D"},
		{"172.16.0.0/12", "Router_E"},
	}

	for i := range n {
		specs = append(specs,
			RouteSpec{fmt.Sprintf("10.%d.0.0/16", i), fmt.Sprintf("Router_%d", i+100)},
			RouteSpec{fmt.Sprintf("172.%d.0.0/20", i%240+16), fmt.Sprintf("Router_%d", i+200)},
			RouteSpec{fmt.Sprintf("192.168.%d.0/24", i%256), fmt.Sprintf("Router_%d", i+300)},
		)
	}
	return specs
}
