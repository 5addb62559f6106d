package cmd

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/phanxgames/grove"
)

var spewConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// nodeSnapshot is the flattened view of a node that dump prints. Dumping
// the node itself would follow parent links through the whole scene.
type nodeSnapshot struct {
	ID       uint32
	Name     string
	Index    int
	Depth    int
	Enabled  bool
	Visible  bool
	Parent   string
	Children []string
	Local    grove.Transform
	Global   grove.Transform
	Bounds   grove.AABB
}

func snapshot(n *grove.Node) nodeSnapshot {
	idx, _ := n.Index()
	snap := nodeSnapshot{
		ID:      n.ID,
		Name:    n.Name,
		Index:   idx,
		Depth:   n.Depth(),
		Enabled: n.Enabled(),
		Visible: n.Visible(),
		Local:   n.LocalTransform(),
		Global:  n.GlobalTransform(),
		Bounds:  n.Bounds,
	}
	if p := n.Parent(); p != nil {
		snap.Parent = p.Name
	}
	for _, c := range n.Children() {
		snap.Children = append(snap.Children, c.Name)
	}
	return snap
}

func newDumpCmd(opts *rootOpts) *cobra.Command {
	var node string
	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Dump a node's full state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(args[0])
			if err != nil {
				return err
			}
			var nodes []*grove.Node
			if node != "" {
				n, err := findNode(s, node)
				if err != nil {
					return err
				}
				nodes = append(nodes, n)
			} else {
				nodes = s.Roots()
			}
			for _, n := range nodes {
				spewConfig.Fdump(cmd.OutOrStdout(), snapshot(n))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&node, "node", "n", "", "node to dump (default: every root)")
	return cmd
}
