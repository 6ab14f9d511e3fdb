package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/buildmat/pkg/validator"
)

func newFieldCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "field <kind> <value>",
		Short: "Validate a single form value",
		Long: fmt.Sprintf(`Validate a value as the given field kind and print the cleansed value
or the localized rejection message.

Kinds: %s

Examples:
  inputaudit field project_name "Residential Building"
  inputaudit field price abc123 --lang es`, strings.Join(validator.FieldNames(), ", ")),
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return validator.FieldNames(), cobra.ShellCompDirectiveNoFileComp
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.kit.ValidateField(args[0], args[1])
			if err != nil {
				return err
			}

			if out.Accepted {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✓ accepted: %q\n", out.Value)
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ rejected [%s]: %s\n", out.Reason, a.kit.Messages.Outcome(a.language(), out))
			return fmt.Errorf("%w: %s", ErrRejected, out.Reason)
		},
	}
}
