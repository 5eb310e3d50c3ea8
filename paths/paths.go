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

// Package paths builds paths to this application's resources (state files,
// screenshots) relative to a single base directory name.
package paths

import "path/filepath"

// baseDir is the name of the directory, relative to the caller's working
// directory or home directory, under which this application's resources
// are kept. It is deliberately not an absolute path: callers that want an
// absolute path join it with os.UserHomeDir() themselves.
const baseDir = ".gba-supervisor"

// ResourcePath joins subPath and filename onto the application's base
// resource directory. Either argument may be empty.
func ResourcePath(subPath string, filename string) (string, error) {
	parts := []string{baseDir}
	if subPath != "" {
		parts = append(parts, subPath)
	}
	if filename != "" {
		parts = append(parts, filename)
	}
	return filepath.Join(parts...), nil
}
