package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/phanxgames/grove/view"
)

func newViewCmd(opts *rootOpts) *cobra.Command {
	cfg := view.RunConfig{}
	cmd := &cobra.Command{
		Use:   "view FILE",
		Short: "Open the scene in a window",
		Long: `view draws the X/Y projection of every visible node's bounds.
Drag with the right mouse button to pan, scroll to zoom and click a node
to log its placement. With --screenshots, F12 saves the frame as a PNG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.loadScene(args[0])
			if err != nil {
				return err
			}
			if cfg.Title == "" {
				cfg.Title = "grove - " + s.Name
			}
			cfg.Logger = logrus.StandardLogger()
			return view.Run(s, cfg)
		},
	}
	cmd.Flags().IntVar(&cfg.Width, "width", 960, "window width")
	cmd.Flags().IntVar(&cfg.Height, "height", 640, "window height")
	cmd.Flags().BoolVar(&cfg.ShowFPS, "fps", true, "show the statistics overlay")
	cmd.Flags().StringVar(&cfg.Title, "title", "", "window title")
	cmd.Flags().StringVar(&cfg.ScreenshotDir, "screenshots", "", "directory for F12 screenshots")
	return cmd
}
