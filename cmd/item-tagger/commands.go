package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"item-tagger/internal/config"
	"item-tagger/internal/diagnostic"
	"item-tagger/internal/loadorder"
	"item-tagger/internal/patcher"
)

// session is the state one pipeline invocation works on.
type session struct {
	settings *config.Settings
	view     *loadorder.LoadOrder
	patch    *loadorder.PatchMod
	logger   *zap.Logger
}

// stage is one pass over the load order writing into the shared patch.
type stage struct {
	name string
	run  func(ctx context.Context, s *session) (patcher.Stats, error)
}

var (
	tagStage = stage{name: "tag", run: func(ctx context.Context, s *session) (patcher.Stats, error) {
		cfg, err := s.settings.TaggingConfig()
		if err != nil {
			return patcher.Stats{}, err
		}

		return patcher.NewTagger(s.view, s.patch, cfg, s.logger).Run(ctx)
	}}

	scrapStage = stage{name: "scrap", run: func(ctx context.Context, s *session) (patcher.Stats, error) {
		policy, err := s.settings.ScrapPolicy()
		if err != nil {
			return patcher.Stats{}, err
		}

		return patcher.NewScrapper(s.view, s.patch, policy, s.logger).Run(ctx)
	}}
)

func newTagCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tag [plugin...]",
		Short: "Prefix item names with their category tag",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStages(cmd, opts, args, tagStage)
		},
	}
}

func newScrapCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scrap [plugin...]",
		Short: "Recalculate the scrap yield of loose mods",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStages(cmd, opts, args, scrapStage)
		},
	}
}

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [plugin...]",
		Short: "Recalculate scrap, then tag names, into one patch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStages(cmd, opts, args, scrapStage, tagStage)
		},
	}
}

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [plugin...]",
		Short: "Validate settings and, if given, the load order",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadSettings(opts.configPath, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			diags := config.Validate(settings)

			var lo *loadorder.LoadOrder
			if len(args) > 0 {
				lo, err = loadorder.Load(args...)
				if err != nil {
					var loadDiags diagnostic.Diagnostics
					loadDiags.AddError("load_order_invalid", err.Error(), "load_order", "")
					diags.Merge(loadDiags)
				}
			}

			for _, group := range [][]diagnostic.Diagnostic{diags.Errors, diags.Warnings, diags.Infos} {
				for _, d := range group {
					fmt.Fprintln(out, d)
				}
			}

			if diags.HasErrors() {
				return fmt.Errorf("check failed: %w", diags.Error())
			}

			fmt.Fprintln(out, "prefixes:")

			prefixes := settings.EffectivePrefixes()

			names := make([]string, 0, len(prefixes))
			for name := range prefixes {
				names = append(names, name)
			}

			sort.Strings(names)

			for _, name := range names {
				fmt.Fprintf(out, "  %-12s %q\n", name, prefixes[name])
			}

			if lo != nil {
				fmt.Fprintf(out, "load order: %d plugins, %d records\n", len(lo.Plugins()), lo.Len())
			}

			return nil
		},
	}
}

// loadSettings reads the settings file, or returns the defaults when path is
// empty. With strict set, settings that fail validation are an error.
func loadSettings(path string, strict bool) (*config.Settings, error) {
	settings := config.Default()
	if path != "" {
		var err error

		settings, err = config.LoadFile(path)
		if err != nil {
			return nil, err
		}
	}

	if strict {
		if err := config.Validate(settings).Error(); err != nil {
			return nil, fmt.Errorf("invalid settings %s: %w", path, err)
		}
	}

	return settings, nil
}

// runStages loads the plugins in args, runs the stages in order against one
// patch and writes the patch when it holds any override.
func runStages(cmd *cobra.Command, opts *options, args []string, stages ...stage) error {
	settings, err := loadSettings(opts.configPath, true)
	if err != nil {
		return err
	}

	lo, err := loadorder.Load(args...)
	if err != nil {
		return err
	}

	if slices.Contains(lo.Plugins(), opts.patchName) {
		return fmt.Errorf("patch %s is part of the load order; remove it or pick another --patch-name", opts.patchName)
	}

	s := &session{
		settings: settings,
		view:     lo,
		patch:    loadorder.NewPatch(opts.patchName),
		logger:   opts.logger,
	}

	s.logger.Info("load order ready",
		zap.Strings("plugins", lo.Plugins()),
		zap.Int("records", lo.Len()),
	)

	for _, st := range stages {
		stats, err := st.run(cmd.Context(), s)
		printStats(cmd.OutOrStdout(), st.name, stats)

		if err != nil {
			return fmt.Errorf("%s failed: %w", st.name, err)
		}
	}

	if s.patch.Len() == 0 {
		s.logger.Info("nothing to patch")
		fmt.Fprintln(cmd.OutOrStdout(), "no changes, patch not written")

		return nil
	}

	out := opts.outPath
	if out == "" {
		out = opts.patchName + ".yaml"
	}

	if err := s.patch.Plugin().WriteFile(out); err != nil {
		return fmt.Errorf("failed to write patch: %w", err)
	}

	s.logger.Info("patch written", zap.String("path", out), zap.Int("overrides", s.patch.Len()))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d overrides to %s\n", s.patch.Len(), out)

	return nil
}

func printStats(w io.Writer, name string, stats patcher.Stats) {
	for _, kind := range stats.Kinds() {
		printKind(w, name, kind.String(), stats.Kind(kind))
	}

	printKind(w, name, "total", stats.Total())
}

func printKind(w io.Writer, name, kind string, ks patcher.KindStats) {
	fmt.Fprintf(w, "%-6s %-22s scanned=%-6d changed=%-6d skipped=%-6d failed=%d\n",
		name, kind, ks.Scanned, ks.Changed, ks.Skipped(), ks.Failed)
}
