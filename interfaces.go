/*
 * interfaces.go, part of cytotraj.
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

package cyto

// Traj is an interface for any snapshot trajectory.
type Traj interface {

	//Is the trajectory ready to be read?
	Readable() bool

	//Next reads the next snapshot and returns it. At the end of the
	//trajectory it returns a LastFrameError.
	Next() (*Snapshot, error)
}

// ChemTraj is an interface for a trajectory of chemical-species snapshots.
type ChemTraj interface {
	Readable() bool

	Next() (*ChemSnapshot, error)
}

//Errors

// Error is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Each call returns the "decoration" slice of strings resulting from the current call. If passed an empty string, it just returns the current value.
	//The decorate slice contains a list of functions in the calling stack, plus, for each function any relevant information, or nothing. Extra information goes in this format: "FunctionName: Extra info"
}

// TrajError is the interface for errors in trajectories
type TrajError interface {
	Error
	Critical() bool
	FileName() string
	Format() string
}

// LastFrameError has a useless function to distinguish the harmless errors (i.e. last frame) so  they can be
// filtered in a typeswitch that looks for this interface.
type LastFrameError interface {
	TrajError
	NormalLastFrameTermination() //does nothing, just to separate this interface from other TrajError's
}
