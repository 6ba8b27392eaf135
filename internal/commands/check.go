package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hailam/bytesize/internal/config"
)

var errLimitExceeded = errors.New("size limit exceeded")

type checkOptions struct {
	configPath string
	json       bool
	human      bool
}

func newCheckCmd(root *rootOptions) *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check --config <file> <name=literal>...",
		Short: "Check sizes against the limits in a config file",
		Long: `Compare each name=literal pair with the limit of the same name.
Exits non-zero when any size exceeds its limit.
Examples:
  bytesize check --config limits.yaml upload=4m cache=900m`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			actual, err := parsePairs(args)
			if err != nil {
				return err
			}
			results, err := root.service(false).Check(cfg.Limits, actual)
			if err != nil {
				return err
			}

			asJSON := cfg.Format == config.FormatJSON
			if cmd.Flags().Changed("json") {
				asJSON = opts.json
			}
			human := cfg.Human
			if cmd.Flags().Changed("human") {
				human = opts.human
			}

			exceeded := 0
			for _, r := range results {
				if r.Exceeded {
					exceeded++
					root.log.WithField("name", r.Name).Warn("limit exceeded")
				}
			}

			if asJSON {
				if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
					return err
				}
			} else {
				for _, r := range results {
					status := "ok"
					if r.Exceeded {
						status = "EXCEEDED"
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s / %s\t%s\n", r.Name, formatBytes(r.Actual, human), formatBytes(r.Limit, human), status)
				}
			}
			if exceeded > 0 {
				return fmt.Errorf("%w: %d of %d", errLimitExceeded, exceeded, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML or TOML limits file (required)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output as JSON (overrides the config format)")
	cmd.Flags().BoolVar(&opts.human, "human", false, "Show human-readable IEC sizes (overrides the config)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

// parsePairs splits name=literal arguments. Later duplicates win.
func parsePairs(args []string) (map[string]string, error) {
	pairs := make(map[string]string, len(args))
	for _, arg := range args {
		name, literal, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("expected name=literal, got '%s'", arg)
		}
		pairs[name] = literal
	}
	return pairs, nil
}

func formatBytes(n uint64, human bool) string {
	if human {
		return humanize.IBytes(n)
	}
	return fmt.Sprintf("%d", n)
}
