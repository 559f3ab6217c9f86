package cli

import (
	"github.com/spf13/cobra"
)

func newDrawCmd(a *app) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "draw <metadata>...",
		Short: "Export the dataflow as a DOT graph",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, err := a.buildPipeline(args)
			if err != nil {
				return err
			}

			if out == "" {
				return pipe.Draw(cmd.OutOrStdout())
			}
			err = pipe.DrawFile(out)
			if err != nil {
				return err
			}
			a.logger.Info("dataflow written", "file", out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output DOT file (defaults to stdout)")

	return cmd
}
