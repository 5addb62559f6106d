package cmd

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/phanxgames/grove"
	"github.com/phanxgames/grove/scenefile"
)

// Config keys. Each can also be set from the environment as GROVE_<KEY>
// with dashes replaced by underscores.
const (
	keyLogLevel = "log-level"
	keyDebug    = "debug"
	keyOrder    = "order"
)

var longRootCmdDescription = `grove inspects scene files: it prints the node hierarchy,
walks it in pre-order, post-order or up the ancestor chain, reports
statistics, checks the structural invariants and opens an interactive view.
`

type rootOpts struct {
	cfgFile string
	v       *viper.Viper
}

// NewRootCmd builds the grove command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOpts{v: viper.New()}
	root := &cobra.Command{
		Use:           "grove",
		Short:         "Inspect and view grove scene files",
		Long:          longRootCmdDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (yaml, json or toml)")
	flags.String(keyLogLevel, "info", "log level: trace, debug, info, warn, error")
	flags.BoolP(keyDebug, "d", false, "enable scene debug checks")
	for _, k := range []string{keyLogLevel, keyDebug} {
		if err := opts.v.BindPFlag(k, flags.Lookup(k)); err != nil {
			panic(err)
		}
	}
	opts.v.SetDefault(keyOrder, "pre")

	root.AddCommand(
		newTreeCmd(opts),
		newWalkCmd(opts),
		newStatsCmd(opts),
		newValidateCmd(opts),
		newDumpCmd(opts),
		newViewCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		logrus.Errorf("grove: %v", err)
		os.Exit(1)
	}
}

// initConfig reads in the config file and ENV variables if set.
func (o *rootOpts) initConfig() error {
	v := o.v
	v.SetEnvPrefix("grove")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if o.cfgFile != "" {
		v.SetConfigFile(o.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "read config")
		}
	}

	level, err := logrus.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(level)
	grove.SetLogger(logrus.StandardLogger())
	return nil
}

// loadScene reads the scene file and applies the debug setting.
func (o *rootOpts) loadScene(path string) (*grove.Scene, error) {
	s, err := scenefile.Load(path)
	if err != nil {
		return nil, err
	}
	if o.v.GetBool(keyDebug) {
		s.SetDebugMode(true)
	}
	logrus.WithFields(logrus.Fields{
		"file":  path,
		"nodes": s.NodeCount(),
	}).Debug("loaded scene")
	return s, nil
}

// findNode resolves a node by name, failing when it is absent.
func findNode(s *grove.Scene, name string) (*grove.Node, error) {
	n := s.FindByName(name)
	if n == nil {
		return nil, errors.Errorf("no node named %q", name)
	}
	return n, nil
}
