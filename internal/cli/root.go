package cli

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/on-the-ground/effect_ive_filter/config"
	"github.com/on-the-ground/effect_ive_filter/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootOptions holds global flags and the state PersistentPreRunE derives
// from them for every subcommand.
type RootOptions struct {
	ConfigPath  string
	LogLevel    string
	MaxElements int
	Parallelism int
	Policy      string

	Config config.Config
	Logger *zap.Logger
}

// NewRootCommand creates the root command for the filterm CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "filterm",
		Short:         "Effectful filtering over pluggable effect instances",
		Long:          "Runs the generic effectful filter under the identity, list, option or validation instance.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				logging.Sync(opts.Logger)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	flags.IntVar(&opts.MaxElements, "max-elements", 0, "largest input accepted for subset enumeration")
	flags.IntVar(&opts.Parallelism, "parallelism", 0, "goroutines used to expand branches")
	flags.StringVar(&opts.Policy, "policy", "", "validation failure policy (short-circuit|collect-all)")

	cmd.AddCommand(NewPowersetCommand(opts))
	cmd.AddCommand(NewFilterCommand(opts))

	return cmd
}

// setup loads the config file, lets explicitly set flags override it,
// and builds a logger tagged with a fresh run id.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = logging.LogLevel(o.LogLevel)
	}
	if flags.Changed("max-elements") {
		cfg.Engine.MaxElements = o.MaxElements
	}
	if flags.Changed("parallelism") {
		cfg.Engine.Parallelism = o.Parallelism
	}
	if flags.Changed("policy") {
		cfg.Engine.Policy = o.Policy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewConsole(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	o.Config = cfg
	o.Logger = logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("command", cmd.Name()),
	)
	return nil
}

// parseInts converts positional arguments to ints.
func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, a)
		}
		out[i] = n
	}
	return out, nil
}
