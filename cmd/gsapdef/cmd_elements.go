package main

import (
	"fmt"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
	"github.com/spf13/cobra"
)

func newElementsCmd() *cobra.Command {
	var tally bool

	cmd := &cobra.Command{
		Use:   "elements <formula>",
		Short: "List the elements of a formula",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := chem.Parse(args[0])
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}
			totals := f.Tally()
			for _, sym := range f.Elements() {
				z, _ := chem.AtomicNumber(sym)
				if tally {
					fmt.Printf("%-3s Z=%-3d ×%v\n", sym, z, totals[sym])
				} else {
					fmt.Printf("%-3s Z=%d\n", sym, z)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&tally, "tally", "t", false, "include total counts per element")

	return cmd
}
