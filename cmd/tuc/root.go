package main

import (
	"bennypowers.dev/tuc/internal/config"
	"bennypowers.dev/tuc/internal/log"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	root       string
	configPath string
	logLevel   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	root := &cobra.Command{
		Use:           "tuc",
		Short:         "tuc - token utility classes for design-token driven stylesheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			if flags.verbose {
				level = log.LevelDebug
			}
			log.SetLevel(level)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.root, "root", ".", "project root directory")
	pf.StringVarP(&flags.configPath, "config", "c", "", "config file (default: discovered in root)")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "shorthand for --log-level debug")

	root.AddCommand(
		newGenerateCmd(flags),
		newResolveCmd(flags),
		newPaletteCmd(flags),
		newVersionCmd(),
	)
	return root
}

// loadConfig reads the project configuration named by the global flags
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, source, err := config.Load(flags.root, flags.configPath)
	if err != nil {
		return nil, err
	}
	if source != "" {
		log.Debug("Using config %s", source)
	} else {
		log.Debug("No config file found, using defaults")
	}
	return cfg, nil
}
