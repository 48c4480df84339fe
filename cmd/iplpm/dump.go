package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	dumpJSON     bool
	dumpInternal bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print both structures as tree diagram, JSON or node dump",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cmp, _, _, err := newComparator(nil)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()

		switch {
		case dumpJSON:
			out := struct {
				Trie any `json:"radixTrie"`
				Tree any `json:"prefixTree"`
			}{cmp.Trie(), cmp.Tree()}

			buf, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(w, "%s\n", buf)
			return err

		case dumpInternal:
			if err := cmp.Trie().Dump(w); err != nil {
				return err
			}
			fmt.Fprintln(w)
			return cmp.Tree().Dump(w)

		default:
			fmt.Fprintln(w, "RadixTrie")
			if err := cmp.Trie().Fprint(w); err != nil {
				return err
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, "PrefixTree")
			return cmp.Tree().Fprint(w)
		}
	},
}

func initDumpFlags() {
	dumpCmd.Flags().BoolVar(&dumpJSON, "json", false, "print JSON")
	dumpCmd.Flags().BoolVar(&dumpInternal, "internal", false, "print the node structure")
}
