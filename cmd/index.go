package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CyberFlameGO/alumina/internal/index"
	"github.com/CyberFlameGO/alumina/internal/manifest"
)

var indexCmd = &cobra.Command{
	Use:   "index <manifest-dir>",
	Short: "Resolve manifests and persist the searchable symbol index",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	bag, err := manifest.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer bag.Free()

	db, err := index.Open(cfg.Index.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ReplaceAll(bag, linkContext(bag)); err != nil {
		return err
	}
	n, err := db.Count()
	if err != nil {
		return err
	}
	fmt.Printf("indexed %d symbols in %s\n", n, cfg.Index.DBPath)
	return nil
}
