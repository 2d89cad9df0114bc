package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/igmhub/lyafits/pkg/catalogs"
)

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify [publication] [variant]",
	Short: "Cross-check scan grids against their best-fit chi-squared",
	Long: `Cross-check that the minimum of each published scan grid matches the
paper's reported best-fit chi-squared within tolerance.

With no arguments the whole catalog is checked. With a publication and
variant only that fit is checked.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(_ *cobra.Command, args []string) error {
	archive, err := openArchive()
	if err != nil {
		return err
	}

	if len(args) == 2 {
		catalog, err := archive.Catalog()
		if err != nil {
			return err
		}
		key := catalogs.FitKey{Publication: catalogs.PublicationID(args[0]), Variant: args[1]}
		if err := catalog.VerifyFit(key.Publication, key.Variant); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if !globalFlags.Quiet {
			fmt.Fprintf(os.Stderr, "%s: ok\n", key)
		}
		return nil
	}
	if len(args) == 1 {
		return fmt.Errorf("verify takes either no arguments or a publication and a variant")
	}

	if err := archive.Verify(); err != nil {
		return err
	}
	if !globalFlags.Quiet {
		fmt.Fprintln(os.Stderr, "catalog verified: all scan minima match their reported chi2")
	}
	return nil
}
