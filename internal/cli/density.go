package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cytoskel/cytotraj/observe"
	"github.com/cytoskel/cytotraj/report"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func densityCommand(w io.Writer) *cli.Command {
	var (
		s     settings
		frame int64
		all   bool
	)
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:        "frame",
			Aliases:     []string{"f"},
			Usage:       "Frame to analyze, negative values count from the end",
			Value:       -1,
			Destination: &frame,
		},
		&cli.BoolFlag{
			Name:        "all",
			Aliases:     []string{"a"},
			Usage:       "Analyze every frame",
			Destination: &all,
		},
	}
	flags = append(flags, globalFlags(&s)...)

	return &cli.Command{
		Name:      "density",
		Usage:     "Filament length per compartment of the grid in the configuration",
		ArgsUsage: "<traj>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			names, err := args(c, 1)
			if err != nil {
				return err
			}
			ctx, cfg, err := s.load(ctx)
			if err != nil {
				return err
			}
			snaps, err := readOne(ctx, names[0])
			if err != nil {
				return err
			}
			G := cfg.Grid()
			n := int64(len(snaps))
			first, last := frame, frame
			if frame < 0 {
				first, last = n+frame, n+frame
			}
			if all {
				first, last = 0, n-1
			}
			if first < 0 || last >= n {
				return goerr.New("frame out of range", goerr.V("frame", frame), goerr.V("frames", n))
			}
			for i := first; i <= last; i++ {
				S := snaps[i]
				d, err := observe.Density(S, G)
				if err != nil {
					return goerr.Wrap(err, "failed to compute density", goerr.V("frame", i), goerr.V("policy", G.Policy.String()))
				}
				title := fmt.Sprintf("frame %d step %g time %g", i, S.Step, S.Time)
				if err := report.WriteDensity(w, title, G, d); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
