package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <metadata>...",
		Short: "Print the hyperparameters of a pipeline",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pipe, err := a.buildPipeline(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fixed := pipe.GetFixedHyperparams()
			keys := make([]model.ParamKey, 0, len(fixed))
			for key := range fixed {
				keys = append(keys, key)
			}
			sort.Slice(keys, func(i, j int) bool {
				if keys[i].Step != keys[j].Step {
					return keys[i].Step < keys[j].Step
				}

				return keys[i].Param < keys[j].Param
			})
			for _, key := range keys {
				fmt.Fprintf(out, "fixed   %s.%s = %v\n", key.Step, key.Param, fixed[key])
			}

			dict := pipe.ToDict()
			names := make([]string, 0, len(dict))
			for name := range dict {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(out, "tunable %s = %v\n", name, dict[name])
			}

			return nil
		},
	}
}
