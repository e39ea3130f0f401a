package main

import (
	"fmt"

	"bennypowers.dev/tuc/internal/generator"
	"bennypowers.dev/tuc/internal/stylesheet"
	"github.com/spf13/cobra"
)

func newResolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <class>...",
		Short: "Print the declaration each class resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			g := generator.New(cfg)

			out := cmd.OutOrStdout()
			for _, class := range args {
				entry, ok := g.Resolve(class)
				if !ok {
					fmt.Fprintf(out, "%s: no match\n", class)
					continue
				}
				fmt.Fprintf(out, "%s: %s\n", stylesheet.PropertyName(entry.Declaration.Property), entry.Declaration.Value)
			}
			return nil
		},
	}
}
