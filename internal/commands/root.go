// Package commands implements the bytesize cobra command tree.
package commands

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hailam/bytesize/internal/adapters/parser"
	"github.com/hailam/bytesize/internal/application"
	"github.com/hailam/bytesize/internal/logging"
	"github.com/hailam/bytesize/internal/ports"
)

// Deps are the adapters wired in by the composition root.
type Deps struct {
	Fillers ports.FillerFactory
	Reports ports.ReportFactory
}

type rootOptions struct {
	deps     Deps
	logLevel string
	log      *logrus.Logger
}

// service builds a SizeService around the strict or lenient parser.
func (o *rootOptions) service(lenient bool) *application.SizeService {
	p := parser.NewStrictSizeParser()
	if lenient {
		p = parser.NewLenientSizeParser()
	}
	return application.NewSizeService(p, o.deps.Fillers, o.deps.Reports, o.log)
}

// NewRootCmd creates the bytesize root command with all subcommands.
func NewRootCmd(deps Deps) *cobra.Command {
	opts := &rootOptions{deps: deps}

	cmd := &cobra.Command{
		Use:   "bytesize",
		Short: "Parse and apply byte-size literals",
		Long: `bytesize converts size literals such as 5, 100k or 2T into exact byte
counts. Units are b, k, m, g and t (case-insensitive, powers of 1024); a
literal without a unit is a byte count.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log, err := logging.New(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.log = log
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (panic, fatal, error, warn, info, debug, trace); defaults to $"+logging.EnvLevel+" or warn")

	cmd.AddCommand(newParseCmd(opts))
	cmd.AddCommand(newCheckCmd(opts))
	cmd.AddCommand(newFillCmd(opts))
	cmd.AddCommand(newReportCmd(opts))
	return cmd
}
