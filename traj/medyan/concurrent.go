/*
 * concurrent.go, part of cytotraj.
 *
 * Copyright 2026 The cytotraj authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package medyan

import (
	"context"
	"fmt"

	cyto "github.com/cytoskel/cytotraj"
	"github.com/cytoskel/cytotraj/internal/batch"
)

// ReadTrajectories reads several replicate trajectory files, using up to cpus
// goroutines at the same time (runtime.NumCPU() if cpus < 1). The result has the
// trajectories in the same order as names. If any file fails, nothing but the
// error is returned.
func ReadTrajectories(ctx context.Context, names []string, cpus int) ([][]*cyto.Snapshot, error) {
	return batch.Run(ctx, len(names), cpus, func(i int) ([]*cyto.Snapshot, error) {
		s, err := ReadAll(names[i])
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ReadTrajectories: replicate %d", i))
		}
		return s, nil
	})
}

// ReadChemTrajectories is ReadTrajectories for chemistry files.
func ReadChemTrajectories(ctx context.Context, names []string, cpus int) ([][]*cyto.ChemSnapshot, error) {
	return batch.Run(ctx, len(names), cpus, func(i int) ([]*cyto.ChemSnapshot, error) {
		s, err := ReadChemAll(names[i])
		if err != nil {
			return nil, errDecorate(err, fmt.Sprintf("ReadChemTrajectories: replicate %d", i))
		}
		return s, nil
	})
}
