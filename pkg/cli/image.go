package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImageCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "image <ref>",
		Short: "Validate an image reference against the configured storage",
		Long: `Check that an image reference can be read and is a supported image
within the size limit. Plain references use the configured storage driver;
"file://" and "s3://" prefixes select a resolver explicitly.

Examples:
  inputaudit image photos/slab.jpg
  STORAGE_DRIVER=s3 STORAGE_S3_BUCKET=uploads STORAGE_S3_REGION=eu-west-1 inputaudit image s3://photos/slab.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := a.kit.ValidateImage(cmd.Context(), args[0])
			if out.Accepted {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "✓ image accepted")
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "✗ rejected [%s]: %s\n", out.Reason, a.kit.Messages.Image(a.language(), out))
			return fmt.Errorf("%w: %s", ErrRejected, out.Reason)
		},
	}
}
