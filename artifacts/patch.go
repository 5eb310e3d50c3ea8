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

package artifacts

// Patch is an optional ROM patch handed to the engine's ApplyPatch.
// Bootstrap may discover a patch as the sibling of a scanned ROM (see
// ScanGameDirectory) or have one supplied explicitly.
type Patch struct {
	readOnlyHandle
}

// NewPatchFromFile creates a Patch that will be opened, lazily, from filename.
func NewPatchFromFile(filename string) Patch {
	return Patch{readOnlyHandle: newFromFilename("patch", filename)}
}

// NewPatchFromData creates an already-resident Patch.
func NewPatchFromData(name string, data []byte) Patch {
	return Patch{readOnlyHandle: newFromData("patch", name, data)}
}
