package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/gaissmai/iplpm/internal/config"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup ADDR...",
	Short: "Look up addresses in both structures",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		addrs, err := config.ParseProbes(args)
		if err != nil {
			return err
		}

		cmp, _, _, err := newComparator(nil)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		mismatches := 0
		for _, addr := range addrs {
			m, agree := cmp.Lookup(addr)
			printLookup(w, addr, m)
			if !agree {
				mismatches++
			}
		}

		if mismatches > 0 {
			return errors.Errorf("%d of %d lookups disagree", mismatches, len(addrs))
		}
		return nil
	},
}
