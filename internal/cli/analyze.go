package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cytoskel/cytotraj/internal/logging"
	"github.com/cytoskel/cytotraj/observe"
	"github.com/cytoskel/cytotraj/report"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func analyzeCommand(w io.Writer) *cli.Command {
	var s settings
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Average observables over replicate trajectories, one table per observable",
		ArgsUsage: "<traj> [traj...]",
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
			if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
				return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", cfg.Output.Dir))
			}
			trajs, err := readReplicates(ctx, cfg, names)
			if err != nil {
				return err
			}
			logger := logging.From(ctx)
			for _, name := range cfg.Observables() {
				f, err := observe.Observable(name, cfg.SphereOptions())
				if err != nil {
					return goerr.Wrap(err, "unknown observable", goerr.V("observable", name))
				}
				start := time.Now()
				stats, err := observe.Replicates(ctx, trajs, f, cfg.ObserveOptions())
				if err != nil {
					return goerr.Wrap(err, "failed to compute observable", goerr.V("observable", name))
				}
				file, err := report.WriteStatsFile(cfg.Output.Dir, name, stats)
				if err != nil {
					return err
				}
				logger.Info("observable done", "observable", name, "samples", len(stats), "file", file, "elapsed", time.Since(start))
				fmt.Fprintln(w, file)
			}
			return nil
		},
	}
}
