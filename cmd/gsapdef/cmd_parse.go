package main

import (
	"fmt"
	"os"

	"github.com/AG-Mueller-University-Konstanz/GSaPDef/chem"
	"github.com/AG-Mueller-University-Konstanz/GSaPDef/format"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var outputFormat string
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "parse <formula>",
		Short: "Parse a chemical formula and dump its composition tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := chem.Parse(args[0], chem.WithMaxDepth(maxDepth))
			if err != nil {
				return fmt.Errorf("parse %q: %w", args[0], err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewJSONEncoder(os.Stdout)
			case "text":
				encoder = format.NewTextEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(f); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			if outputFormat == "json" {
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json, text)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", chem.DefaultMaxDepth, "group nesting cap")

	return cmd
}
