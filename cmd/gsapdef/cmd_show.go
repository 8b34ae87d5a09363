package main

import (
	"fmt"
	"os"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/format"
	"github.com/AG-Mueller-University-Konstanz/GSaPDef/sample"
	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var flatten bool

	cmd := &cobra.Command{
		Use:   "show <profile.toml>",
		Short: "Dump a sample profile as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := sample.LoadProfile(args[0])
			if err != nil {
				return err
			}

			encoder := format.NewProfileJSONEncoder(os.Stdout)
			if flatten {
				encoder.Flatten()
			}
			if err := encoder.Encode(profile); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().BoolVar(&flatten, "flatten", false, "expand multilayers into repeated layers")

	return cmd
}
