package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/kwgen/table"
)

const defaultConfigPath = ".kwgen.yaml"

// initCmd: kwgen init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in keyword table to a configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			path = defaultConfigPath
		}
		if err := table.Write(path, table.Default()); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration file created/updated: %s\n", path)
		return nil
	},
}
