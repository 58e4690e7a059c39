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
Package medyan reads and writes the snapshot and chemistry trajectories written by
cytoskeletal-filament simulations.

******************** Snapshot format ***************************************************

A snapshot file is line oriented text. Files ending in .zst or .zstd are read
through a zstd decoder, files ending in .gz through a gzip decoder.

Each frame starts with a header line:

	step time n_filaments n_linkers n_motors n_branchers

step and time are floating point numbers, the counts are truncated to integers.
Older files have no n_branchers field, which is then taken as 0.

Then, for each entity, a header line and a coordinate line follow:

	F id length delta_left delta_right
	x0 y0 z0 x1 y1 z1 ...
	L id type
	x0 y0 z0 x1 y1 z1
	M id type
	x0 y0 z0 x1 y1 z1
	B id type
	x0 y0 z0

A filament has exactly length beads, linkers and motors 2 sites and
branchers 1 site.

A blank line ends the frame. The number of entities of each kind must equal
the counts in the frame header. The end of the file also ends the frame it
is in, as long as that frame is complete. Additional blank lines between frames
are ignored.

******************** Chemistry format ***************************************************

Each frame starts with the header line "step time", followed by one line per species

	NAME:TYPE value

where TYPE is one of DIFFUSING, BULK, FILAMENT, PLUSEND, MINUSEND, LINKER, MOTOR
or BRANCHER. A blank line ends the frame.
*/
package medyan
