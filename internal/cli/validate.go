package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <metadata>...",
		Short: "Build a pipeline from metadata and report problems",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, err := a.buildPipeline(args)
			if err != nil {
				return err
			}

			dataflow := pipe.Dataflow()
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d steps, dataflow %s\n", len(dataflow), strings.Join(dataflow, " -> "))

			return nil
		},
	}
}
