package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/CyberFlameGO/alumina/internal/export"
	"github.com/CyberFlameGO/alumina/internal/manifest"
)

var resolveOut string

var resolveCmd = &cobra.Command{
	Use:   "resolve <manifest-dir>",
	Short: "Resolve declaration manifests into a symbol table",
	Example: `  aludoc resolve build/manifests
  aludoc resolve build/manifests --out build/links.json.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveOut, "out", "", "write a compressed link map to this path")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	bag, err := manifest.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer bag.Free()

	links := linkContext(bag)
	exported := 0
	for _, it := range bag.All() {
		if it.IsExported() {
			exported++
		}
	}
	slog.Info("symbol table resolved", "items", bag.Len(), "exported", exported)

	if resolveOut != "" {
		entries := export.BuildLinkMap(bag, links)
		if err := export.WriteLinkMap(resolveOut, entries); err != nil {
			return err
		}
		fmt.Printf("wrote %d links to %s\n", len(entries), resolveOut)
	}
	return nil
}
