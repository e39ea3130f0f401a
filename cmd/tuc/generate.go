package main

import (
	"bennypowers.dev/tuc/internal/generator"
	"github.com/spf13/cobra"
)

func newGenerateCmd(flags *globalFlags) *cobra.Command {
	var (
		out    string
		minify bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan content files and write the utility stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				cfg.Output = out
			}
			if cmd.Flags().Changed("minify") {
				cfg.Minify = minify
			}

			res, err := generator.Run(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			return generator.WriteOutput(res, cfg, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().BoolVar(&minify, "minify", false, "omit whitespace from the stylesheet")
	return cmd
}
