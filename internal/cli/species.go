package cli

import (
	"context"
	"io"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/observe"
	"github.com/cytoskel/cytotraj/report"
	"github.com/cytoskel/cytotraj/traj/medyan"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func speciesCommand(w io.Writer) *cli.Command {
	var (
		s       settings
		kind    string
		species string
	)
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "kind",
			Aliases:     []string{"k"},
			Usage:       "Species type: DIFFUSING, BULK, FILAMENT, PLUSEND, MINUSEND, LINKER, MOTOR or BRANCHER",
			Required:    true,
			Destination: &kind,
		},
		&cli.StringFlag{
			Name:        "species",
			Aliases:     []string{"s"},
			Usage:       "Species name",
			Required:    true,
			Destination: &species,
		},
	}
	flags = append(flags, globalFlags(&s)...)

	return &cli.Command{
		Name:      "species",
		Usage:     "Copy number of a species, averaged over replicate chemistry files",
		ArgsUsage: "<chem> [chem...]",
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
			k, err := cyto.ParseSpeciesKind(kind)
			if err != nil {
				return goerr.Wrap(err, "invalid species type", goerr.V("kind", kind))
			}
			chems, err := medyan.ReadChemTrajectories(ctx, names, cfg.Cpus())
			if err != nil {
				return goerr.Wrap(err, "failed to read chemistry files", goerr.V("files", names))
			}
			stats, err := observe.ReplicateSpecies(chems, k, species)
			if err != nil {
				return goerr.Wrap(err, "failed to average species", goerr.V("species", species))
			}
			return report.WriteStats(w, species+":"+k.String(), stats)
		},
	}
}
