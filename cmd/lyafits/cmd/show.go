package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/igmhub/lyafits"
	"github.com/igmhub/lyafits/internal/cmd/output"
	"github.com/igmhub/lyafits/pkg/catalogs"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <publication> [variant]",
	Short: "Show a publication or one of its fits",
	Long: `Show the metadata of a publication, or the parsed fit result of one
of its variants.

Examples:
  lyafits show bautista2017
  lyafits show bautista2017 physical
  lyafits show blomqvist2019 combined_stdFit -o json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}

	format, err := output.ParseFormat(globalFlags.Output)
	if err != nil {
		return err
	}
	formatter := output.NewFormatter(format)

	id := catalogs.PublicationID(args[0])
	if len(args) == 1 {
		return showPublication(cmd, archive, id, format, formatter)
	}
	return showFit(cmd, archive, id, args[1], format, formatter)
}

func showPublication(cmd *cobra.Command, archive lyafits.Archive, id catalogs.PublicationID, format output.Format, formatter output.Formatter) error {
	catalog, err := archive.Catalog()
	if err != nil {
		return err
	}
	pub, err := catalog.Publication(id)
	if err != nil {
		return err
	}

	if format == output.FormatTable {
		data := output.Data{
			Headers: []string{"Property", "Value"},
			Rows: [][]string{
				{output.Title("id"), string(pub.ID)},
				{output.Title("title"), pub.Title},
				{output.Title("arxiv"), pub.ArXiv},
				{output.Title("doi"), pub.DOI},
				{output.Title("authors"), strings.Join(pub.Authors, ", ")},
				{output.Title("release"), string(pub.Release)},
				{output.Title("scan_columns"), string(pub.ScanColumns)},
				{output.Title("variants"), strings.Join(pub.Variants, ", ")},
			},
		}
		return formatter.Format(cmd.OutOrStdout(), data)
	}

	return formatter.Format(cmd.OutOrStdout(), pub)
}

func showFit(cmd *cobra.Command, archive lyafits.Archive, id catalogs.PublicationID, variant string, format output.Format, formatter output.Formatter) error {
	fit, err := archive.Lookup(id, variant)
	if err != nil {
		return err
	}

	if format == output.FormatTable {
		rows := [][]string{
			{output.Title("publication"), string(fit.Publication)},
			{output.Title("variant"), fit.Variant},
			{"Chi2", strconv.FormatFloat(fit.ChiSquared, 'g', -1, 64)},
		}
		if fit.DegreesOfFreedom > 0 {
			rows = append(rows, []string{"Ndof", strconv.Itoa(fit.DegreesOfFreedom)})
		}
		rows = append(rows, []string{output.Title("scan_points"), strconv.Itoa(len(fit.Scan))})
		if min, ok := fit.ScanMinimum(); ok {
			rows = append(rows, []string{output.Title("scan_minimum"),
				fmt.Sprintf("chi2=%g at (ap=%g, at=%g)", min.ChiSquared, min.AlphaParallel, min.AlphaPerp)})
		}

		data := output.Data{
			Headers: []string{"Property", "Value"},
			Rows:    rows,
		}
		return formatter.Format(cmd.OutOrStdout(), data)
	}

	return formatter.Format(cmd.OutOrStdout(), fit)
}
