package cli

import (
	"fmt"

	"github.com/on-the-ground/effect_ive_filter/monad"
	"github.com/on-the-ground/effect_ive_filter/monad/identity"
	"github.com/on-the-ground/effect_ive_filter/monad/list"
	"github.com/on-the-ground/effect_ive_filter/monad/option"
	"github.com/on-the-ground/effect_ive_filter/monad/validation"
	"github.com/on-the-ground/effect_ive_filter/powerset"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ValidInstances defines the allowed --instance values.
var ValidInstances = []string{"identity", "list", "option", "validation"}

// NewFilterCommand keeps the even arguments under the chosen instance.
func NewFilterCommand(root *RootOptions) *cobra.Command {
	var instance string

	cmd := &cobra.Command{
		Use:     "filter [ints...]",
		Short:   "Keep even numbers; negatives are absent (option) or failures (validation)",
		Example: "  filterm filter --instance validation --policy collect-all -- 4 -1 6 -3",
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args)
			if err != nil {
				return err
			}
			m, err := newInstance(instance, root)
			if err != nil {
				return err
			}
			if root.Logger.Core().Enabled(zap.DebugLevel) {
				m = monad.Traced(m, root.Logger)
			}

			kept, err := powerset.FilterEven(m, xs)
			if err != nil {
				root.Logger.Warn("filter failed", zap.String("instance", instance), zap.Error(err))
				return err
			}
			root.Logger.Info("filtered", zap.String("instance", instance), zap.Int("kept", len(kept)))
			return renderSubsets(cmd.OutOrStdout(), [][]int{kept})
		},
	}

	cmd.Flags().StringVar(&instance, "instance", "identity", fmt.Sprintf("effect instance %v", ValidInstances))
	return cmd
}

func newInstance(name string, root *RootOptions) (monad.Monad, error) {
	switch name {
	case "identity":
		return identity.New(), nil
	case "list":
		return list.New(list.WithParallelism(root.Config.Engine.Parallelism)), nil
	case "option":
		return option.New(), nil
	case "validation":
		return validation.New(root.Config.Policy()), nil
	default:
		return nil, fmt.Errorf("invalid instance %q: must be one of %v", name, ValidInstances)
	}
}
