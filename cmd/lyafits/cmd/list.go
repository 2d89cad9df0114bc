package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/igmhub/lyafits/internal/cmd/output"
	"github.com/igmhub/lyafits/pkg/catalogs"
)

var listFits bool

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List publications in the catalog",
	Long: `List the publications in the catalog, with their survey release and
the fit variants each paper published.

With --fits, list every (publication, variant) pair instead.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listFits, "fits", false, "list individual (publication, variant) pairs")
}

func runList(cmd *cobra.Command, _ []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}

	catalog, err := archive.Catalog()
	if err != nil {
		return fmt.Errorf("reading catalog: %w", err)
	}

	format, err := output.ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format)

	if listFits {
		return listFitKeys(cmd, catalog, format, formatter)
	}
	return listPublications(cmd, catalog, format, formatter)
}

func listPublications(cmd *cobra.Command, catalog catalogs.Catalog, format output.Format, formatter output.Formatter) error {
	pubs := catalog.Publications().List()
	sort.Slice(pubs, func(i, j int) bool { return pubs[i].ID < pubs[j].ID })

	if format == output.FormatTable {
		data := output.Data{
			Headers: []string{"ID", "Release", "ArXiv", "Variants"},
		}
		for _, pub := range pubs {
			data.Rows = append(data.Rows, []string{
				string(pub.ID),
				string(pub.Release),
				pub.ArXiv,
				strings.Join(pub.Variants, ", "),
			})
		}
		if err := formatter.Format(cmd.OutOrStdout(), data); err != nil {
			return err
		}
		if !globalFlags.Quiet {
			fmt.Fprintf(os.Stderr, "\n%d publications\n", len(pubs))
		}
		return nil
	}

	out := make([]catalogs.Publication, len(pubs))
	for i, p := range pubs {
		out[i] = *p
	}
	return formatter.Format(cmd.OutOrStdout(), out)
}

func listFitKeys(cmd *cobra.Command, catalog catalogs.Catalog, format output.Format, formatter output.Formatter) error {
	keys := catalog.Keys()

	if format == output.FormatTable {
		data := output.Data{
			Headers: []string{"Publication", "Variant"},
		}
		for _, key := range keys {
			data.Rows = append(data.Rows, []string{string(key.Publication), key.Variant})
		}
		if err := formatter.Format(cmd.OutOrStdout(), data); err != nil {
			return err
		}
		if !globalFlags.Quiet {
			fmt.Fprintf(os.Stderr, "\n%d fits\n", len(keys))
		}
		return nil
	}

	return formatter.Format(cmd.OutOrStdout(), keys)
}
