package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/iplpm"
	"github.com/gaissmai/iplpm/internal/compare"
	"github.com/gaissmai/iplpm/internal/config"
)

const baseRoutes = 5

func run(cmd *cobra.Command) error {
	w := cmd.OutOrStdout()

	cmp, specs, demo, err := newComparator(nil)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "ip lookup")
	fmt.Fprintln(w)

	if demo {
		fmt.Fprintf(w, "Total routes: %d (base) + %d (generated) = %d\n", baseRoutes, len(specs)-baseRoutes, len(specs))
	} else {
		fmt.Fprintf(w, "Total routes: %d\n", len(specs))
	}
	for _, spec := range specs[:min(baseRoutes, len(specs))] {
		fmt.Fprintf(w, "%s -> %s\n", spec.Prefix, spec.NextHop)
	}

	probes, err := config.ParseProbes(opts.Probes)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Lookup Tests:")
	mismatches := 0
	for _, addr := range probes {
		m, agree := cmp.Lookup(addr)
		printLookup(w, addr, m)
		if !agree {
			mismatches++
		}
	}

	perfAddr, err := iplpm.ParseIPv4(opts.PerfAddr)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Performance test - bst vs binary trie")
	fmt.Fprintf(w, "Performing %d lookups on %d routes...\n\n", opts.Iterations, len(specs))

	timing := cmp.Time(perfAddr, opts.Iterations)
	printTiming(w, timing)

	if mismatches > 0 {
		return errors.Errorf("%d of %d lookups disagree", mismatches, len(probes))
	}
	return nil
}

func printLookup(w io.Writer, addr uint32, m compare.Mismatch[string]) {
	fmt.Fprintf(w, "\nLooking up: %s\n", iplpm.FormatIPv4(addr))
	fmt.Fprintf(w, "BST  Result: %s\n", resultString(m.Tree))
	fmt.Fprintf(w, "Trie Result: %s\n", resultString(m.Trie))
	if opts.Reference {
		fmt.Fprintf(w, "bart Result: %s\n", resultString(m.Reference))
	}
}

func resultString(r compare.Result[string]) string {
	if !r.Found {
		return "No route"
	}
	return r.NextHop
}

func printTiming(w io.Writer, t compare.Timing) {
	fmt.Fprintf(w, "BST  Time: %.3f ms\n", t.Tree.Seconds()*1000)
	fmt.Fprintf(w, "Trie Time: %.3f ms\n", t.Trie.Seconds()*1000)

	faster := "(BST is faster)"
	if t.Trie < t.Tree {
		faster = "(Trie is faster)"
	}
	fmt.Fprintf(w, "\nSpeedup: %.2fx %s\n", t.Speedup(), faster)
}
