package cmd

import (
	"github.com/spf13/cobra"

	"github.com/CyberFlameGO/alumina/internal/manifest"
	"github.com/CyberFlameGO/alumina/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp <manifest-dir>",
	Short: "Serve symbol queries over the Model Context Protocol on stdio",
	Args:  cobra.ExactArgs(1),
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	bag, err := manifest.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer bag.Free()

	return mcp.NewServer(bag, linkContext(bag)).Run()
}
