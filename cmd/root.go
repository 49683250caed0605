// Package cmd implements the aludoc command line: resolving declaration
// manifests into a symbol table, querying it, and serving it to tools.
package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/CyberFlameGO/alumina/internal/config"
	"github.com/CyberFlameGO/alumina/internal/doc"
)

var (
	verbose bool
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "aludoc",
	Short: "Symbol resolution for Alumina documentation",
	Long: `aludoc builds the symbol table behind the Alumina documentation
site: it resolves import aliases and glob imports across declaration
manifests, materializes re-exported items, and computes stable
cross-reference links.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		doc.SetMaxResolveHops(cfg.Resolver.MaxAliasHops)
		doc.SetPublicRoots(cfg.Resolver.PublicRoots)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// linkContext builds a LinkContext honoring the output configuration.
func linkContext(bag *doc.Bag) *doc.LinkContext {
	return &doc.LinkContext{
		Bag:       bag,
		IndexFile: cfg.Output.IndexFile,
		Suffix:    cfg.Output.PageSuffix,
	}
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}
