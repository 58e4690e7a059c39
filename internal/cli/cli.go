// Package cli implements the cytotraj command line tool.
package cli

import (
	"context"
	"io"
	"os"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/config"
	"github.com/cytoskel/cytotraj/internal/logging"
	"github.com/cytoskel/cytotraj/traj/medyan"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Run runs the tool with the given arguments, argv[0] being the program name.
// Results go to w.
func Run(ctx context.Context, argv []string, w io.Writer) error {
	cmd := &cli.Command{
		Name:   "cytotraj",
		Usage:  "Analysis of cytoskeletal network trajectories",
		Writer: w,
		Commands: []*cli.Command{
			analyzeCommand(w),
			corrCommand(w),
			densityCommand(w),
			speciesCommand(w),
			sphereCommand(w),
			infoCommand(w),
		},
	}
	return cmd.Run(ctx, argv)
}

// settings are the values of the flags shared by all commands.
type settings struct {
	config    string
	cpus      int64
	logLevel  string
	out       string
	tolerance float64
}

func globalFlags(s *settings) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "INI configuration file",
			Sources:     cli.EnvVars("CYTOTRAJ_CONFIG"),
			Destination: &s.config,
		},
		&cli.IntFlag{
			Name:        "cpus",
			Usage:       "Replicates processed at the same time (0: from the configuration)",
			Sources:     cli.EnvVars("CYTOTRAJ_CPUS"),
			Destination: &s.cpus,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Aliases:     []string{"l"},
			Usage:       "Log level: debug, info, warn or error",
			Value:       "info",
			Sources:     cli.EnvVars("CYTOTRAJ_LOG_LEVEL"),
			Destination: &s.logLevel,
		},
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "Output directory (default: from the configuration)",
			Sources:     cli.EnvVars("CYTOTRAJ_OUT"),
			Destination: &s.out,
		},
		&cli.FloatFlag{
			Name:        "tolerance",
			Usage:       "Relative tolerance of the enclosing sphere solver (0: from the configuration)",
			Sources:     cli.EnvVars("CYTOTRAJ_TOLERANCE"),
			Destination: &s.tolerance,
		},
	}
}

// load reads the configuration, applies the flags on top of it, and returns
// a context that carries the logger.
func (s *settings) load(ctx context.Context) (context.Context, *config.Wrapper, error) {
	logger := logging.New(s.logLevel, os.Stderr)
	ctx = logging.With(ctx, logger)
	cfg := config.Default()
	if s.config != "" {
		var err error
		if cfg, err = config.ReadFile(s.config); err != nil {
			return ctx, nil, err
		}
	}
	if s.cpus < 0 {
		return ctx, nil, goerr.New("cpus must not be negative", goerr.V("cpus", s.cpus))
	}
	if s.cpus > 0 {
		cfg.Analysis.Cpus = int(s.cpus)
	}
	if s.tolerance != 0 {
		cfg.Analysis.Tolerance = s.tolerance
	}
	if s.out != "" {
		cfg.Output.Dir = s.out
	}
	if err := cfg.Valid(); err != nil {
		return ctx, nil, goerr.Wrap(err, "invalid settings")
	}
	logger.Debug("configuration", "config", cfg.String())
	return ctx, cfg, nil
}

func args(c *cli.Command, n int) ([]string, error) {
	a := c.Args().Slice()
	if len(a) < n {
		return nil, goerr.New("not enough arguments", goerr.V("usage", c.Name+" "+c.ArgsUsage), goerr.V("want", n))
	}
	return a, nil
}

func readOne(ctx context.Context, name string) ([]*cyto.Snapshot, error) {
	snaps, err := medyan.ReadAll(name)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read trajectory", goerr.V("file", name))
	}
	logging.From(ctx).Info("trajectory read", "file", name, "frames", len(snaps))
	return snaps, nil
}

func readReplicates(ctx context.Context, cfg *config.Wrapper, names []string) ([][]*cyto.Snapshot, error) {
	trajs, err := medyan.ReadTrajectories(ctx, names, cfg.Cpus())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read trajectories", goerr.V("files", names))
	}
	for i, t := range trajs {
		logging.From(ctx).Info("trajectory read", "file", names[i], "frames", len(t))
	}
	return trajs, nil
}
