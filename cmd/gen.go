package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/kwgen/generate"
	"github.com/gnolang/kwgen/table"
)

// variable for flags
var (
	outPath  string
	funcName string
	genOpts  generate.Options
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate the keyword classifier function",
	Long: `Builds a trie over the keyword table and prints a C function that maps a
null-terminated string to its keyword token, or to an identifier token.
Example) kwgen gen -c keywords.yaml -o src/lex.inc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := loadTable()
		if err != nil {
			logger.Error("Failed to load keyword table", zap.String("path", cfgFile), zap.Error(err))
			return err
		}
		if funcName != "" {
			tbl.Function = funcName
		}

		if err := runGenerate(cmd.OutOrStdout(), tbl, genOpts, outPath); err != nil {
			logger.Error("Failed to generate classifier", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	genCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path; stdout when empty")
	genCmd.Flags().StringVar(&funcName, "func", "", "Name of the generated function")
	genCmd.Flags().BoolVar(&genOpts.Dump, "dump", false, "Prefix the function with a comment dump of the trie")
	genCmd.Flags().BoolVar(&genOpts.Linear, "linear", false, "Emit one whole-string comparison per keyword")
	genCmd.Flags().BoolVar(&genOpts.Strict, "strict", false, "Fail on empty or duplicate keywords")
}

func runGenerate(stdout io.Writer, tbl table.Table, opts generate.Options, outPath string) error {
	if outPath == "" {
		return generate.Run(stdout, tbl, opts, logger)
	}

	src, err := generate.Source(tbl, opts, logger)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
		return err
	}

	logger.Info("Generated classifier", zap.String("output", outPath), zap.Int("bytes", len(src)))
	return nil
}
