package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/phanxgames/grove"
)

type walkOpts struct {
	order string
	node  string
}

func newWalkCmd(opts *rootOpts) *cobra.Command {
	wo := &walkOpts{}
	cmd := &cobra.Command{
		Use:   "walk FILE",
		Short: "List nodes in traversal order",
		Long: `walk prints one node name per line. Without --node the whole scene is
walked; with it only that node's subtree, or for --order ancestors the
chain from the node up to its root.`,
		Args: cobra.ExactArgs(1),
		Example: `grove walk scene.yaml --order post
grove walk scene.yaml --order ancestors --node moon`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed(keyOrder) {
				wo.order = opts.v.GetString(keyOrder)
			}
			s, err := opts.loadScene(args[0])
			if err != nil {
				return err
			}
			return wo.run(cmd, s)
		},
	}
	cmd.Flags().StringVarP(&wo.order, keyOrder, "o", "pre", "traversal order: pre, post or ancestors")
	cmd.Flags().StringVarP(&wo.node, "node", "n", "", "start from the named node")
	return cmd
}

func (wo *walkOpts) run(cmd *cobra.Command, s *grove.Scene) error {
	var start *grove.Node
	if wo.node != "" {
		n, err := findNode(s, wo.node)
		if err != nil {
			return err
		}
		start = n
	}

	out := cmd.OutOrStdout()
	emit := func(n *grove.Node) { fmt.Fprintln(out, n.Name) }

	switch wo.order {
	case "pre":
		if start != nil {
			start.LoopTraverseDFSPreOrder(emit)
		} else {
			s.LoopTraverseDFSPreOrder(emit)
		}
	case "post":
		if start != nil {
			start.LoopTraverseDFSPostOrder(emit)
		} else {
			s.LoopTraverseDFSPostOrder(emit)
		}
	case "ancestors":
		if start == nil {
			return errors.New("--order ancestors needs --node")
		}
		start.LoopTraverseAncestors(emit)
	default:
		return errors.Errorf("unknown order %q (want pre, post or ancestors)", wo.order)
	}
	return nil
}
