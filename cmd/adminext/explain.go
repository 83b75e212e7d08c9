package adminext

import (
	"io"

	"github.com/arthur-debert/adminext/pkg/output"
	"github.com/spf13/cobra"
)

func newExplainCmd(opts *passOptions) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "explain <project-file> [admin...]",
		Short: MsgExplainShort,
		Long:  MsgExplainLong,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, _, err := runPass(cmd, opts, args[0])
			if err != nil {
				return err
			}

			md, err := output.Explain(plan, args[1:])
			if err != nil {
				return err
			}
			rendered, err := output.RenderMarkdown(md, colorFor(cmd.OutOrStdout()), width)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, MsgFlagWidth)
	return cmd
}
