package main

import (
	"errors"
	"fmt"

	"bennypowers.dev/tuc/internal/palette"
	"bennypowers.dev/tuc/internal/tokens"
	"github.com/spf13/cobra"
)

func newPaletteCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Preview the color tokens of the configured token sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			paths := cfg.TokenPaths()
			if len(paths) == 0 {
				return errors.New("no token sources configured; add \"tokens\" to the config")
			}

			set, err := tokens.Load(paths)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), palette.Render(set.All()))
			return err
		},
	}
}
