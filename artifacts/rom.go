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

// ROM is the cartridge image a bootstrap hands to the engine's LoadROM.
// It mirrors the teacher's cartridgeloader.Loader duality (filename vs.
// embedded byte slice) but drops the mapping-fingerprint machinery, which
// belongs to the excluded cartridge-mapper implementation, not to this
// module's bootstrap.
type ROM struct {
	readOnlyHandle
}

// NewROMFromFile creates a ROM that will be opened, lazily, from filename.
// filename may point inside a zip archive (see archivefs), but not a 7z
// archive (unsupported, see DESIGN.md).
func NewROMFromFile(filename string) ROM {
	return ROM{readOnlyHandle: newFromFilename("rom", filename)}
}

// NewROMFromData creates an already-resident ROM, for embedded test fixtures
// and for callers that have already read a ROM image into memory.
func NewROMFromData(name string, data []byte) ROM {
	return ROM{readOnlyHandle: newFromData("rom", name, data)}
}
