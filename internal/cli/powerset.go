package cli

import (
	"github.com/on-the-ground/effect_ive_filter/powerset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewPowersetCommand prints every subset of the arguments, or their sums.
func NewPowersetCommand(root *RootOptions) *cobra.Command {
	var sums bool

	cmd := &cobra.Command{
		Use:   "powerset [ints...]",
		Short: "Enumerate all subsets through the list instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}

			opts := []powerset.Option{
				powerset.WithMaxElements(root.Config.Engine.MaxElements),
				powerset.WithParallelism(root.Config.Engine.Parallelism),
			}
			if root.Logger.Core().Enabled(zap.DebugLevel) {
				opts = append(opts, powerset.WithLogger(root.Logger))
			}

			subsets, err := powerset.Enumerate(xs, opts...)
			if err != nil {
				return err
			}
			root.Logger.Info("enumerated subsets", zap.Int("elements", len(xs)), zap.Int("subsets", len(subsets)))

			if sums {
				return renderSums(cmd.OutOrStdout(), powerset.Sums(subsets))
			}
			return renderSubsets(cmd.OutOrStdout(), subsets)
		},
	}

	cmd.Flags().BoolVar(&sums, "sums", false, "print the sum of each subset instead of its elements")
	return cmd
}
