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

// BIOS is an optional boot ROM handed to the engine's LoadBIOS. With no
// BIOS attached, bootstrap passes the configured SkipBIOS setting to the
// engine; an attached BIOS that fails to load makes bootstrap call
// SkipBIOS(true) rather than fail (spec.md §4.6: the BIOS is optional).
type BIOS struct {
	readOnlyHandle
}

// NewBIOSFromFile creates a BIOS that will be opened, lazily, from filename.
func NewBIOSFromFile(filename string) BIOS {
	return BIOS{readOnlyHandle: newFromFilename("bios", filename)}
}

// NewBIOSFromData creates an already-resident BIOS.
func NewBIOSFromData(name string, data []byte) BIOS {
	return BIOS{readOnlyHandle: newFromData("bios", name, data)}
}
