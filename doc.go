/*
 * doc.go, part of cytotraj.
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

/*
Package cyto is the main package of the cytotraj library. It provides the in-memory
representation of the snapshots written by cytoskeletal-filament simulations
(filaments, the cylinders derived from their beads, linkers, motors and branchers),
of the chemical-species snapshots written alongside them, and the error and
trajectory interfaces shared by the rest of the library.

	**cytotraj capabilities**

	Reads snapshot and chemistry trajectories, plain or compressed (traj/medyan).

	Minimum covering sphere of a point set (mcs).

	Nematic order parameter of a set of segments (order).

	End-to-end distance, contour length, enclosing volume, order parameter,
	radius of gyration, contractile velocity and compartment density over time,
	averaged over replicate runs with error bars (observe, repstat).

	Histograms of filament lengths (histo).

All entities are immutable once built. Constructors copy their input, so a
Snapshot never aliases memory owned by the caller.

Coordinates are kept in nm, as written by the simulator. Observables convert
to µm where noted.
*/
package cyto
