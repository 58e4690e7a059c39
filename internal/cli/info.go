package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cytoskel/cytotraj/observe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func parseDividers(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	ret := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid divider", goerr.V("divider", f))
		}
		ret = append(ret, v)
	}
	return ret, nil
}

func infoCommand(w io.Writer) *cli.Command {
	var (
		s        settings
		dividers string
	)
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "lengths",
			Usage:       "Comma separated dividers for a histogram of the filament lengths of the last frame",
			Destination: &dividers,
		},
	}
	flags = append(flags, globalFlags(&s)...)

	return &cli.Command{
		Name:      "info",
		Usage:     "Frames and entity counts of a trajectory",
		ArgsUsage: "<traj>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			names, err := args(c, 1)
			if err != nil {
				return err
			}
			ctx, _, err = s.load(ctx)
			if err != nil {
				return err
			}
			snaps, err := readOne(ctx, names[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s: %d frames\n", names[0], len(snaps))
			for i, S := range snaps {
				fmt.Fprintf(w, "%d step: %g time: %g %s cylinders: %d\n", i, S.Step, S.Time, S.Counts(), len(S.Cylinders))
			}
			if dividers == "" || len(snaps) == 0 {
				return nil
			}
			d, err := parseDividers(dividers)
			if err != nil {
				return err
			}
			h, err := observe.LengthDistribution(snaps[len(snaps)-1], d)
			if err != nil {
				return goerr.Wrap(err, "failed to build the length histogram")
			}
			fmt.Fprintln(w, h)
			return nil
		},
	}
}
