// Package cli implements the inputaudit command line tool.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/buildmat"
	"github.com/dmitrymomot/buildmat/pkg/config"
	"github.com/dmitrymomot/buildmat/pkg/logger"
)

// Version is the current version of inputaudit.
const Version = "1.0.0"

// ErrRejected is returned when the checked value or image was rejected, so
// the process exits non-zero.
var ErrRejected = errors.New("input rejected")

type app struct {
	envFiles   []string
	lang       string
	configOpts []config.Option
	kitOpts    []buildmat.Option
	kit        *buildmat.Kit
}

// NewRootCommand creates the root command. configOpts are applied before the
// --env-file flag and let callers supply the environment explicitly.
func NewRootCommand(configOpts []config.Option, kitOpts ...buildmat.Option) *cobra.Command {
	a := &app{configOpts: configOpts, kitOpts: kitOpts}

	cmd := &cobra.Command{
		Use:   "inputaudit",
		Short: "Validate construction project input and audit the validators",
		Long: `inputaudit checks project and material form values the same way the
application does, validates image references against the configured storage,
and runs the built-in security probe corpus against the validators.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "Load environment from file (repeatable)")
	cmd.PersistentFlags().StringVar(&a.lang, "lang", "", "Message language or Accept-Language value (default: DEFAULT_LOCALE)")

	cmd.AddCommand(newAuditCommand(a))
	cmd.AddCommand(newFieldCommand(a))
	cmd.AddCommand(newImageCommand(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	opts := append([]config.Option{}, a.configOpts...)
	if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	kitOpts := append([]buildmat.Option{
		buildmat.WithLogger(buildmat.NewLogger(cfg, logger.WithOutput(cmd.ErrOrStderr()))),
	}, a.kitOpts...)

	a.kit, err = buildmat.New(cmd.Context(), cfg, kitOpts...)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	return nil
}

func (a *app) language() string {
	return a.kit.Messages.Match(a.lang)
}
