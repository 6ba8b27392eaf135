package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hailam/bytesize/internal/ports"
)

type parseOptions struct {
	json    bool
	human   bool
	lenient bool
}

func newParseCmd(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}
	cmd := &cobra.Command{
		Use:   "parse <literal>...",
		Short: "Convert size literals to byte counts",
		Long: `Convert each size literal to an exact byte count.
Examples:
  bytesize parse 5 100k 2T
  bytesize parse --json 4m
  bytesize parse --lenient "1.5 GiB"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := root.service(opts.lenient).Convert(args)
			if err != nil {
				return err
			}
			if opts.json {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			printRows(cmd.OutOrStdout(), rows, opts.human)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&opts.human, "human", false, "Append a human-readable IEC rendering")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Accept free-form input (spaces, fractions, SI and IEC suffixes)")
	return cmd
}

func printRows(w io.Writer, rows []ports.Row, human bool) {
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%d", r.Literal, r.Bytes)
		if human {
			fmt.Fprintf(w, "\t%s", r.Human)
		}
		fmt.Fprintln(w)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
