package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type reportOptions struct {
	outputPath string
	lenient    bool
}

func newReportCmd(root *rootOptions) *cobra.Command {
	opts := &reportOptions{}
	cmd := &cobra.Command{
		Use:   "report -o <file> <literal>...",
		Short: "Write a conversion table to a csv, json or xlsx file",
		Long: `Convert each literal and write the table to --output. The format is
chosen from the file extension: .csv, .json or .xlsx.
Examples:
  bytesize report -o sizes.xlsx 5 100k 2T`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := root.service(opts.lenient).Report(opts.outputPath, args); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d rows to %s\n", len(args), opts.outputPath)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Path to the report file (required)")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Accept free-form input (spaces, fractions, SI and IEC suffixes)")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}
