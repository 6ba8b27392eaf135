package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/hailam/bytesize/internal/ports"
	"github.com/hailam/bytesize/pkg/size"
)

type fillOptions struct {
	outputPath string
	size       size.Size
	kind       string
}

func newFillCmd(root *rootOptions) *cobra.Command {
	opts := &fillOptions{}
	cmd := &cobra.Command{
		Use:   "fill",
		Short: "Write a file of exactly the given size",
		Long: `Write a file whose length is exactly the byte count of --size.
Content is random bytes, printable text or zeros depending on --kind.
Examples:
  bytesize fill -o blob.bin -s 64m
  bytesize fill -o notes.txt -s 10k --kind text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := startSpinner(cmd.ErrOrStderr(), fmt.Sprintf(" writing %s", humanize.IBytes(opts.size.Bytes())))
			n, err := root.service(false).Fill(cmd.Context(), opts.outputPath, opts.size.Bytes(), ports.FillKind(opts.kind))
			stop()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s (%d bytes)\n", opts.outputPath, n)
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Path to the output file (required)")
	cmd.Flags().VarP(&opts.size, "size", "s", "Target size (e.g., 500k, 2m, 1G) (required)")
	cmd.Flags().StringVar(&opts.kind, "kind", string(ports.FillRandom), "Content kind: random, text or zero")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

// startSpinner shows a spinner on w when it is a terminal and returns the
// function that stops it.
func startSpinner(w io.Writer, suffix string) func() {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = suffix
	s.Start()
	return s.Stop
}
