package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newValidateCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check the scene's structural invariants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(args[0])
			if err != nil {
				return err
			}
			if err := s.Validate(); err != nil {
				return errors.Wrap(err, "invalid scene")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d nodes\n", s.NodeCount())
			return nil
		},
	}
}
