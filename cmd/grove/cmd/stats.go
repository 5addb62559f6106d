package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newStatsCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FILE",
		Short: "Print node, root, depth and leaf counts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(args[0])
			if err != nil {
				return err
			}
			st := s.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "nodes:     %d\n", st.Nodes)
			fmt.Fprintf(out, "roots:     %d\n", st.Roots)
			fmt.Fprintf(out, "max depth: %d\n", st.MaxDepth)
			fmt.Fprintf(out, "leaves:    %d\n", st.Leaves)
			return nil
		},
	}
}
