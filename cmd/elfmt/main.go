package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/elfmt/config"
	"github.com/dhamidi/elfmt/format"
)

var log = commonlog.GetLogger("elfmt")

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	configPath string
	verbose    int

	patterns format.Patterns
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	verbosity := cfg.Verbosity
	if cmd.Flags().Changed("verbose") {
		verbosity = a.verbose
	}
	commonlog.Configure(verbosity, nil)
	if cfg.Path != "" {
		log.Infof("using config %s", cfg.Path)
	}

	patterns, err := cfg.Compile()
	if err != nil {
		return err
	}
	a.patterns = patterns
	return nil
}

func main() {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:               "elfmt",
		Short:             "Render Java declarations through element patterns",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $ELFMT_CONFIG or ./"+config.FileName+")")
	rootCmd.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "log more (-v info, -vv debug)")

	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDumpCmd(a))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
