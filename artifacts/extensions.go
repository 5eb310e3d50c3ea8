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

import "strings"

// ROMExtensions are the file extensions recognised as GBA ROM images,
// mirroring the teacher's cartridgeloader.FileExtensions table but rebased
// onto this domain's single cartridge format.
var ROMExtensions = [...]string{".GBA", ".AGB", ".BIN"}

// PatchExtensions are the file extensions recognised as ROM patches.
var PatchExtensions = [...]string{".IPS", ".UPS", ".BPS"}

// BIOSExtensions are the file extensions recognised as BIOS images.
var BIOSExtensions = [...]string{".BIN", ".BIOS"}

// SaveExtensions are the file extensions recognised as save data.
var SaveExtensions = [...]string{".SAV", ".SRM"}

func hasExtension(name string, exts []string) bool {
	n := strings.ToUpper(name)
	for _, ext := range exts {
		if strings.HasSuffix(n, ext) {
			return true
		}
	}
	return false
}

// LooksLikeROM reports whether filename has an extension recognised as a
// ROM image.
func LooksLikeROM(filename string) bool {
	return hasExtension(filename, ROMExtensions[:])
}

// LooksLikePatch reports whether filename has an extension recognised as a
// ROM patch.
func LooksLikePatch(filename string) bool {
	return hasExtension(filename, PatchExtensions[:])
}

// LooksLikeBIOS reports whether filename has an extension recognised as a
// BIOS image.
func LooksLikeBIOS(filename string) bool {
	return hasExtension(filename, BIOSExtensions[:])
}
