package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/ffigen/go-ffigen/cli"
	"github.com/ffigen/go-ffigen/generator"
	"github.com/ffigen/go-ffigen/internal/comment"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var config cli.Config

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate bindings",
	Long:  "generate a Go file from a JSON declaration description",
	Args:  cobra.ExactArgs(0),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(Generate(&config))
	},
}

// Generate runs a full generation with cfg: load the description, generate
// the file and write it out.
func Generate(cfg *cli.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		defer logger.Sync()
		generator.SetLogger(logger)
		defer generator.SetLogger(nil)
	}

	comment.EnableConsolePrinter(filepath.Dir(cfg.Input))
	defer comment.DisableConsolePrinter()
	defer comment.WriteAll()

	spec, err := generator.Load(cfg.Input)
	if err != nil {
		return err
	}
	cfg.Apply(spec)

	file, err := generator.NewGenerator(spec).Generate()
	if err != nil {
		return err
	}

	w := &generator.Writer{
		Output: cfg.Output,
		Diff:   cfg.Diff,
	}
	return w.Write(file)
}

func init() {
	generateCmd.Flags().BoolVar(&config.Debug, "debug", cli.DefaultDebug, "enable debugging output")
	generateCmd.Flags().StringVar(&config.Input, "input", cli.DefaultInput, "declaration description (JSON)")
	generateCmd.Flags().StringVar(&config.Output, "output", cli.DefaultOutput, "generated Go file; stdout when empty")
	generateCmd.Flags().StringVar(&config.Diff, "diff", cli.DefaultDiff, "write a diff against the previous output to this file")
	generateCmd.Flags().StringVar(&config.Package, "package", cli.DefaultPackage, "override the package name")
	generateCmd.Flags().StringVar(&config.CTypesPrefix, "ctypes-prefix", cli.DefaultCTypesPrefix, "import path of the package providing C type names")
	generateCmd.Flags().BoolVar(&config.ConvertFloats, "convert-floats", cli.DefaultConvertFloats, "use float32 and float64 for C float types")
	cobra.MarkFlagRequired(generateCmd.Flags(), "input")
	cobra.MarkFlagFilename(generateCmd.Flags(), "input", ".json")
	cobra.MarkFlagFilename(generateCmd.Flags(), "diff", ".diff") // for file completion

	rootCmd.AddCommand(generateCmd)
}
