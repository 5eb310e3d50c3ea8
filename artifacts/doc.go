// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package artifacts abstracts the on-disk (or in-archive, or embedded)
// handles a supervisor bootstrap needs: the ROM itself, an optional BIOS,
// an optional patch, a save file, and the game/state directories a
// bootstrap may be asked to scan. Every handle is a thin io.ReadSeeker
// (io.ReadWriteSeeker for Save) wrapper, the same duality the teacher's
// cartridgeloader.Loader used for filename-vs-embedded-data sources,
// adapted here to also resolve through archivefs so a ROM can live inside
// a zip archive without the caller knowing the difference.
package artifacts
