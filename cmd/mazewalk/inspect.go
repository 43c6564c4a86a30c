package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/maze"
)

// mazeReport is what inspect prints, as key: value text or as YAML.
// Connected comes from the 4-connected flood fill over every row's real
// length; Reachable is whether the walker, under the chosen bounds policy,
// actually finds a goal. They disagree on ragged grids whose lower rows are
// longer than the first.
type mazeReport struct {
	Width     int      `yaml:"width"`
	MaxWidth  int      `yaml:"max_width"`
	Height    int      `yaml:"height"`
	Start     string   `yaml:"start,omitempty"`
	Goals     []string `yaml:"goals"`
	Regions   int      `yaml:"regions"`
	Connected bool     `yaml:"connected"`
	Reachable bool     `yaml:"reachable"`
}

func newInspectCommand(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "inspect [FILE]",
		Short: "Report maze size, markers and whether a goal is reachable",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, _, err := a.readGrid(args)
			if err != nil {
				return err
			}
			rep := buildReport(g, a.cfg.StrictBounds)
			switch output {
			case "text":
				writeReport(cmd.OutOrStdout(), rep)
				return nil
			case "yaml":
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				if err := enc.Encode(rep); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown output format %q (expected text or yaml)", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text or yaml")
	cmd.Flags().Bool(config.KeyStrictBounds, config.Defaults().StrictBounds, "Judge reachability with the strict neighbour bounds used by solve --strict-bounds")

	return cmd
}

func buildReport(g *gridgraph.Grid, strict bool) mazeReport {
	regions := g.Regions()
	start, hasStart := g.Find(gridgraph.Start)
	rep := mazeReport{
		Width:    g.Width(),
		MaxWidth: g.MaxWidth(),
		Height:   g.Height(),
		Goals:    []string{},
		Regions:  regions.Len(),
	}
	if hasStart {
		rep.Start = start.String()
	}
	for _, goal := range g.FindAll(gridgraph.Goal) {
		rep.Goals = append(rep.Goals, goal.String())
		if hasStart && regions.Connected(start, goal) {
			rep.Connected = true
		}
	}

	// A solved walk implies connected, so the walk is skipped otherwise.
	if rep.Connected {
		var opts []maze.Option
		if strict {
			opts = append(opts, maze.WithStrictBounds())
		}
		solver := maze.NewSolver(g, opts...)
		if _, err := solver.Solve(); err == nil {
			rep.Reachable = solver.Outcome() == maze.Solved
		}
	}

	return rep
}

// writeReport prints one "key: value" line per property.
func writeReport(w io.Writer, rep mazeReport) {
	start := rep.Start
	if start == "" {
		start = "none"
	}
	fmt.Fprintf(w, "size: %dx%d\n", rep.Width, rep.Height)
	if rep.MaxWidth != rep.Width {
		fmt.Fprintf(w, "widest row: %d\n", rep.MaxWidth)
	}
	fmt.Fprintf(w, "start: %s\n", start)
	fmt.Fprintf(w, "goals: %d %v\n", len(rep.Goals), rep.Goals)
	fmt.Fprintf(w, "regions: %d\n", rep.Regions)
	fmt.Fprintf(w, "connected: %t\n", rep.Connected)
	fmt.Fprintf(w, "reachable: %t\n", rep.Reachable)
}
