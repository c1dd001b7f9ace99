// Command sumtypegen generates Go union types from YAML definition files.
//
//	sumtypegen generate shapes.yaml events.yaml -o ./internal/types
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Michael-F-Bryan/sumtype/gen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var verbose bool

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sumtypegen",
		Short:         "Generate closed tagged union types for Go",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newGenerateCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "generate [definition.yaml ...]",
		Short: "Generate Go source from union definition files",
		Example: `  sumtypegen generate shapes.yaml
  sumtypegen generate shapes.yaml events.yaml -o ./internal/types`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.OutDir
			}

			level := slog.LevelInfo
			if verbose || cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			g := gen.New(
				gen.WithLogger(logger),
				gen.WithConcurrency(cfg.Concurrency),
			)
			return g.Run(cmd.Context(), args, outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default \".\" or config out_dir)")
	return cmd
}
