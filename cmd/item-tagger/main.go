// Package main provides the CLI entrypoint for item-tagger.
//
// item-tagger reads a load order of plugin files and writes a patch plugin
// that:
//   - Prefixes item names with a category tag such as [Aid] or [Junk]
//   - Recalculates the scrap yield of loose mods from their recipes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultPatchName = "ItemTagger.esp"

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbose    bool
	configPath string
	patchName  string
	outPath    string

	logger *zap.Logger
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "item-tagger",
		Short: "Tag item names and rebalance loose mod scrap",
		Long: `item-tagger builds a patch plugin on top of a load order.

Plugins are given in load order, lowest priority first. Records defined by
several plugins resolve to the last one. The patch only contains records
whose name or scrap yield actually changes.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.logger != nil {
				return nil
			}

			config := zap.NewProductionConfig()
			if opts.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			opts.logger = logger.With(zap.String("run_id", uuid.NewString()))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Settings file (YAML); defaults apply when empty")
	flags.StringVar(&opts.patchName, "patch-name", defaultPatchName, "Name of the generated patch plugin")
	flags.StringVarP(&opts.outPath, "out", "o", "", "Output file for the patch (default <patch-name>.yaml)")

	root.AddCommand(
		newTagCmd(opts),
		newScrapCmd(opts),
		newRunCmd(opts),
		newCheckCmd(opts),
	)

	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(&options{}).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
