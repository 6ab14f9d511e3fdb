package cli

import (
	"github.com/spf13/cobra"
)

func newAuditCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Run the security probe corpus against the validators",
		Long: `Run every built-in probe (SQL injection, script injection, markup,
multilingual names, length and numeric boundaries) and print a report.
Exits non-zero when any probe fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report := a.kit.Audit(cmd.Context())
			if err := report.WriteText(cmd.OutOrStdout()); err != nil {
				return err
			}
			return report.Err()
		},
	}
}
