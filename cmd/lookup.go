package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CyberFlameGO/alumina/internal/doc"
	"github.com/CyberFlameGO/alumina/internal/manifest"
)

var (
	lookupScope     string
	lookupCanonical bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <manifest-dir> <path>",
	Short: "Resolve one path reference and print the item",
	Example: `  aludoc lookup build/manifests std::collections::Vector
  aludoc lookup build/manifests Vector --scope std::collections`,
	Args: cobra.ExactArgs(2),
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().StringVar(&lookupScope, "scope", "", "scope the reference is written in")
	lookupCmd.Flags().BoolVar(&lookupCanonical, "canonical", false, "link to the declaration site instead of the exposed location")
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	bag, err := manifest.Build(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	defer bag.Free()

	it := bag.Resolve(doc.ParsePath(lookupScope), doc.ParsePath(args[1]), true)
	if it == nil {
		return fmt.Errorf("%s does not resolve in scope %q", args[1], lookupScope)
	}

	fmt.Printf("path:       %s\n", it.Path.String())
	fmt.Printf("kind:       %s\n", it.Kind.String())
	fmt.Printf("defined in: %s\n", it.DefinedIn.String())
	if it.CfgIndex != 0 {
		fmt.Printf("cfg index:  %d\n", it.CfgIndex)
	}
	if it.File != "" {
		fmt.Printf("source:     %s:%d\n", it.File, it.Offset)
	}
	fmt.Printf("exported:   %v\n", it.IsExported())
	if link := linkContext(bag).LinkForItem(it, lookupCanonical, false); link != "" {
		fmt.Printf("link:       %s\n", link)
	}
	if it.Doc != "" {
		fmt.Printf("\n%s\n", it.Doc)
	}
	return nil
}
