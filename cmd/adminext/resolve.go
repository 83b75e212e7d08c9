package adminext

import (
	"github.com/arthur-debert/adminext/pkg/output"
	"github.com/spf13/cobra"
)

func newResolveCmd(opts *passOptions) *cobra.Command {
	var digest bool

	cmd := &cobra.Command{
		Use:   "resolve <project-file>",
		Short: MsgResolveShort,
		Long:  MsgResolveLong,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, cfg, err := runPass(cmd, opts, args[0])
			if err != nil {
				return err
			}

			r := output.NewRenderer(cmd.OutOrStdout(), colorFor(cmd.OutOrStdout()))
			r.Digest = digest
			return r.Render(plan, cfg.Output.Format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&digest, "digest", false, MsgFlagDigest)
	return cmd
}
