package cli

import (
	"context"
	"io"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/observe"
	"github.com/cytoskel/cytotraj/report"
	"github.com/cytoskel/cytotraj/repstat"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func corrCommand(w io.Writer) *cli.Command {
	var (
		s          settings
		observable string
	)
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "observable",
			Usage:       "Observable to correlate",
			Value:       "end-to-end",
			Sources:     cli.EnvVars("CYTOTRAJ_CORR_OBSERVABLE"),
			Destination: &observable,
		},
	}
	flags = append(flags, globalFlags(&s)...)

	return &cli.Command{
		Name:      "corr",
		Usage:     "Time autocorrelation of an observable, averaged over replicates",
		ArgsUsage: "<traj> [traj...]",
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
			f, err := observe.Observable(observable, cfg.SphereOptions())
			if err != nil {
				return goerr.Wrap(err, "unknown observable", goerr.V("observable", observable))
			}
			trajs, err := readReplicates(ctx, cfg, names)
			if err != nil {
				return err
			}
			series, err := observe.Series(ctx, trajs, f, cfg.ObserveOptions())
			if err != nil {
				return goerr.Wrap(err, "failed to compute observable", goerr.V("observable", observable))
			}
			corrs := make([][]cyto.Sample, len(series))
			for i, ser := range series {
				ac, err := repstat.AutoCorr(cyto.Values(ser))
				if err != nil {
					return goerr.Wrap(err, "failed to correlate", goerr.V("file", names[i]))
				}
				corrs[i] = make([]cyto.Sample, len(ac))
				for k, v := range ac {
					corrs[i][k] = cyto.Sample{Time: ser[k].Time - ser[0].Time, Value: v}
				}
			}
			stats, err := repstat.Average(corrs)
			if err != nil {
				return goerr.Wrap(err, "failed to average correlations")
			}
			return report.WriteStats(w, observable+" autocorrelation", stats)
		},
	}
}
