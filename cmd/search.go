package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CyberFlameGO/alumina/internal/index"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the persisted symbol index",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 20, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	db, err := index.Open(cfg.Index.DBPath)
	if err != nil {
		return err
	}
	defer db.Close()

	hits, err := db.Search(args[0], searchLimit)
	if err != nil {
		return err
	}
	if len(hits) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, h := range hits {
		marker := " "
		if !h.Exported {
			marker = "-"
		}
		fmt.Printf("%s %-12s %-50s %s\n", marker, h.Kind, h.Path, h.Link)
	}
	return nil
}
