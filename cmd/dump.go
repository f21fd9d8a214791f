package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/kwgen/formatter"
	"github.com/gnolang/kwgen/generate"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Show the keyword trie",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable()
		if err != nil {
			logger.Error("Failed to load keyword table", zap.String("path", cfgFile), zap.Error(err))
			return err
		}

		t, err := generate.Build(tbl, false, logger)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatTrie(t))
		return nil
	},
}
