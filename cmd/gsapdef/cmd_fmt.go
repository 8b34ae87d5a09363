package main

import (
	"fmt"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
	"github.com/spf13/cobra"
)

func newFmtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <formula>...",
		Short: "Rewrite formulas in canonical form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				f, err := chem.Parse(arg)
				if err != nil {
					return fmt.Errorf("parse %q: %w", arg, err)
				}
				fmt.Println(f)
			}
			return nil
		},
	}
}
