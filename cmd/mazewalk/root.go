package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/internal/logging"
)

// app carries the streams and resolved settings shared by all subcommands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configPath string
	cfg        config.Config
	log        *zap.Logger
}

func newRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, log: logging.NewNop()}
	d := config.Defaults()

	cmd := &cobra.Command{
		Use:           "mazewalk",
		Short:         "Depth-first maze solver driven by explicit stacks",
		Long:          "mazewalk reads a text maze ('s' start, 'o' goal, '#' wall), walks it depth-first and draws the path it found.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	cmd.PersistentFlags().String(config.KeyLogLevel, d.LogLevel, "Log level for diagnostics on stderr (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a config file (default: $XDG_CONFIG_HOME/mazewalk/config.yaml)")

	cmd.AddCommand(
		newSolveCommand(a),
		newInspectCommand(a),
		newVersionCommand(a),
	)
	cmd.Example = `  # Solve a maze file and draw the path
  mazewalk solve maze.txt

  # Read from stdin, colour the output and dump the path stack
  cat maze.txt | mazewalk solve --color --dump

  # Check whether any goal is reachable at all
  mazewalk inspect maze.txt`

	return cmd
}

// setup resolves configuration and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command) error {
	path := a.configPath
	if path == "" {
		path = os.Getenv(config.EnvPrefix + "_CONFIG")
	}
	v := config.NewViper(path)
	if err := config.ReadFile(v, path != ""); err != nil {
		return err
	}
	cfg, err := config.Load(v, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, a.errOut)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = logger
	if used := v.ConfigFileUsed(); used != "" {
		a.log.Debug("config loaded", zap.String("file", used))
	}

	return nil
}

// readGrid loads a maze from the named file, or from stdin when name is "" or "-".
func (a *app) readGrid(args []string) (*gridgraph.Grid, string, error) {
	if len(args) == 0 || args[0] == "-" {
		g, err := gridgraph.Read(a.in)
		return g, "stdin", err
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, args[0], fmt.Errorf("open maze: %w", err)
	}
	defer f.Close()
	g, err := gridgraph.Read(f)

	return g, args[0], err
}
