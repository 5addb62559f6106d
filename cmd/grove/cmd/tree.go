package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phanxgames/grove"
)

func newTreeCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:     "tree FILE",
		Short:   "Print the node hierarchy",
		Args:    cobra.ExactArgs(1),
		Example: `grove tree scenes/solar.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(args[0])
			if err != nil {
				return err
			}
			printTree(cmd, s)
			return nil
		},
	}
}

func printTree(cmd *cobra.Command, s *grove.Scene) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%d nodes)\n", s.Name, s.NodeCount())
	depth := 0
	s.LoopTraverseDFSPreOrderEnterLeave(func(n *grove.Node) {
		depth++
		fmt.Fprintf(out, "%s%s\n", strings.Repeat("  ", depth), describe(n))
	}, func(*grove.Node) {
		depth--
	})
}

func describe(n *grove.Node) string {
	p := n.GlobalTransform().Translation
	var b strings.Builder
	fmt.Fprintf(&b, "%s @ (%g, %g, %g)", n.Name, p[0], p[1], p[2])
	if !n.Enabled() {
		b.WriteString(" [disabled]")
	}
	if !n.Visible() {
		b.WriteString(" [hidden]")
	}
	return b.String()
}
