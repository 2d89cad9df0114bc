package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/igmhub/lyafits/pkg/catalogs"
)

var exportOutput string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog to a directory",
	Long: `Export the catalog to a directory in the published text layout:
publications.yaml plus one .chisq and one scan file per fit.

The exported tree round-trips: serving it back with --catalog yields
the same data.`,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "dir", "d", "", "destination directory (required)")
	_ = exportCmd.MarkFlagRequired("dir")
}

func runExport(_ *cobra.Command, _ []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}

	catalog, err := archive.Catalog()
	if err != nil {
		return err
	}

	persister, ok := catalog.(catalogs.Persistence)
	if !ok {
		return fmt.Errorf("catalog does not support export")
	}

	if err := persister.SaveTo(exportOutput); err != nil {
		return fmt.Errorf("exporting catalog: %w", err)
	}

	if !globalFlags.Quiet {
		fmt.Fprintf(os.Stderr, "Exported catalog to %s\n", exportOutput)
	}
	return nil
}
