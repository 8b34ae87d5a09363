package main

import (
	"fmt"
	"os"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/sample"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile.toml>",
		Short: "Validate a sample profile definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := sample.LoadProfile(args[0])
			if err != nil {
				return err
			}

			warnings, err := profile.Validate()
			for _, w := range warnings {
				fmt.Fprintf(os.Stderr, "warning: %s\n", w)
			}
			if err != nil {
				return fmt.Errorf("invalid profile %s:\n%w", args[0], err)
			}

			fmt.Printf("%s: %d sections ok\n", args[0], len(profile))
			return nil
		},
	}
}
