package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/cytoskel/cytotraj/mcs"
	"github.com/cytoskel/cytotraj/observe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func sphereCommand(w io.Writer) *cli.Command {
	var s settings
	return &cli.Command{
		Name:      "sphere",
		Usage:     "Smallest sphere around the filament ends of every frame",
		ArgsUsage: "<traj>",
		Flags:     globalFlags(&s),
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
			fmt.Fprintln(w, "# step time x y z radius")
			for i, S := range snaps {
				if len(S.Filaments) == 0 {
					continue
				}
				center, r, err := mcs.SphereVecs(ctx, observe.Endpoints(S), cfg.SphereOptions())
				if err != nil {
					return goerr.Wrap(err, "failed to find the enclosing sphere", goerr.V("frame", i))
				}
				fmt.Fprintf(w, "%g %g %g %g %g %g\n", S.Step, S.Time, center[0], center[1], center[2], r)
			}
			return nil
		},
	}
}
