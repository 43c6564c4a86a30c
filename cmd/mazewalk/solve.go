package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/mazewalk/gridgraph"
	"github.com/katalvlaran/mazewalk/internal/config"
	"github.com/katalvlaran/mazewalk/maze"
	"github.com/katalvlaran/mazewalk/render"
)

func newSolveCommand(a *app) *cobra.Command {
	d := config.Defaults()
	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Walk a maze depth-first and draw the path",
		Long: `Reads a maze from FILE (or stdin when FILE is "-" or omitted), walks it
depth-first from the first 's' and prints the maze with the path drawn over it.

When no goal is reachable the maze is still printed, with whatever cells remain
on the path, and "no solution" is reported on stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(cmd, args)
		},
	}
	cmd.Flags().String(config.KeyMarker, string(d.Marker), "Character drawn on path cells")
	cmd.Flags().Bool(config.KeyColor, d.Color, "Colour the path, start and goal")
	cmd.Flags().Bool(config.KeyStrictBounds, d.StrictBounds, "Only propose right/down neighbours inside the grid")
	cmd.Flags().Bool(config.KeyDump, d.Dump, "Print the path stack after the maze")

	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	g, source, err := a.readGrid(args)
	if err != nil {
		return err
	}
	log := a.log.With(zap.String("maze", source))
	log.Debug("maze loaded", zap.Int("width", g.Width()), zap.Int("height", g.Height()))

	opts := []maze.Option{
		maze.WithOnVisit(func(c gridgraph.Coord) error {
			if err := cmd.Context().Err(); err != nil {
				return err
			}
			log.Debug("visit", zap.Stringer("cell", c))
			return nil
		}),
		maze.WithOnDeadEnd(func(c gridgraph.Coord) {
			log.Debug("dead end", zap.Stringer("cell", c))
		}),
	}
	if a.cfg.StrictBounds {
		opts = append(opts, maze.WithStrictBounds())
	}

	solver := maze.NewSolver(g, opts...)
	path, err := solver.Solve()
	if err != nil {
		return err
	}
	stats := solver.Stats()
	log.Info("walk finished",
		zap.Stringer("outcome", stats.Outcome),
		zap.Int("visited", stats.Visited),
		zap.Int("dead_ends", stats.DeadEnds),
		zap.Int("max_frontier", stats.MaxFrontier),
		zap.Int("path_len", path.Size()),
	)

	err = render.Overlay(cmd.OutOrStdout(), g, path.Items(),
		render.WithMarker(a.cfg.Marker),
		render.WithColor(a.cfg.Color),
	)
	if err != nil {
		return err
	}
	if a.cfg.Dump {
		fmt.Fprintln(cmd.OutOrStdout(), path.String())
	}
	if stats.Outcome == maze.Exhausted {
		fmt.Fprintln(cmd.ErrOrStderr(), "no solution")
	}

	return nil
}
