package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/kwgen/formatter"
	"github.com/gnolang/kwgen/generate"
	"github.com/gnolang/kwgen/internal/emit"
)

var classifyLinear bool

var classifyCmd = &cobra.Command{
	Use:   "classify WORD...",
	Short: "Classify words the way the generated function would",
	Long: `Runs each word through the decision structure that gen renders, and prints
the token expression it would return.
Example) kwgen classify if i1 iff`,
	Args: cobra.MinimumNArgs(1),
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
		block := generate.Block(t, generate.Options{Linear: classifyLinear})

		for _, word := range args {
			payload, ok := emit.Classify(block, word)
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatClassification(word, payload, ok))
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().BoolVar(&classifyLinear, "linear", false, "Use whole-string comparisons instead of the decision tree")
}
