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

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanefold/gba-supervisor/archivefs"
	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/paths"
)

// VirtualFile is a single resolved file, possibly inside an archive.
type VirtualFile interface {
	io.ReadSeeker
	Name() string
	Close() error
}

// VirtualDirectory lists and opens the files beneath a root location,
// hiding whether that root is a plain directory or an archive member.
type VirtualDirectory interface {
	List() ([]string, error)
	Open(name string) (VirtualFile, error)
}

// archiveFile adapts archivefs.Open's (io.ReadSeeker, size, error) result to
// VirtualFile.
type archiveFile struct {
	io.ReadSeeker
	name string
}

func (f archiveFile) Name() string { return f.name }
func (f archiveFile) Close() error { return nil }

// GameDirectory is a VirtualDirectory rooted at a game library location,
// used by ScanGameDirectory and by anything that wants to browse it
// (e.g. cmd/supervisorctl). Backed by archivefs so the root itself may be
// a zip archive.
type GameDirectory struct {
	root string
}

// NewGameDirectory roots a GameDirectory at root.
func NewGameDirectory(root string) GameDirectory {
	return GameDirectory{root: root}
}

// Root returns the directory's root path, for callers (e.g. bootstrap's
// ScanGameDirectory invocation) that need the raw path rather than a
// listing.
func (d GameDirectory) Root() string {
	return d.root
}

// List returns the immediate entries of the directory, sorted per
// archivefs.Sort (directories first, then alphabetical, case-insensitive).
func (d GameDirectory) List() ([]string, error) {
	var afs archivefs.Path
	if err := afs.Set(d.root, false); err != nil {
		return nil, errors.Errorf(errors.GameDirectoryScan, err)
	}
	defer afs.Close()

	entries, err := afs.List()
	if err != nil {
		return nil, errors.Errorf(errors.GameDirectoryScan, err)
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names, nil
}

// Open resolves name, relative to the directory's root, to a VirtualFile.
func (d GameDirectory) Open(name string) (VirtualFile, error) {
	rs, _, err := archivefs.Open(filepath.Join(d.root, name))
	if err != nil {
		return nil, errors.Errorf(errors.GameDirectoryScan, err)
	}
	return archiveFile{ReadSeeker: rs, name: name}, nil
}

// ScanGameDirectory looks, in directory, for the first entry that looks
// like a ROM (artifacts.LooksLikeROM) and a sibling entry with the same
// base name that looks like a patch (artifacts.LooksLikePatch), per
// spec.md §4.6's "optionally scanning a provided game directory for the
// first file that looks like a ROM and a sibling file that looks like a
// patch". The patch return value is the empty string if none is found;
// that is not an error.
func ScanGameDirectory(directory string) (rom string, patch string, err error) {
	dir := NewGameDirectory(directory)
	names, err := dir.List()
	if err != nil {
		return "", "", err
	}

	for _, n := range names {
		if LooksLikeROM(n) {
			rom = n
			break
		}
	}
	if rom == "" {
		return "", "", errors.Errorf(errors.NoROMError)
	}

	base := strings.TrimSuffix(rom, fileExt(rom))
	for _, n := range names {
		if n == rom {
			continue
		}
		if LooksLikePatch(n) && strings.TrimSuffix(n, fileExt(n)) == base {
			patch = n
			break
		}
	}

	return filepath.Join(directory, rom), patchJoin(directory, patch), nil
}

func patchJoin(directory, patch string) string {
	if patch == "" {
		return ""
	}
	return filepath.Join(directory, patch)
}

// StateDirectory is the plain on-disk directory under which this module's
// own state (saves, screenshots) is written. Unlike
// GameDirectory it is never archive-backed: state is always written back
// to, so it must be a real, writable directory.
type StateDirectory struct {
	Root string
}

// NewStateDirectory returns a StateDirectory rooted at subPath beneath the
// application's resource directory (see package paths), creating it if it
// does not already exist.
func NewStateDirectory(subPath string) (StateDirectory, error) {
	root, err := paths.ResourcePath(subPath, "")
	if err != nil {
		return StateDirectory{}, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return StateDirectory{}, errors.Errorf(errors.BootstrapError, err)
	}
	return StateDirectory{Root: root}, nil
}

// Path joins name onto the state directory's root.
func (d StateDirectory) Path(name string) string {
	return filepath.Join(d.Root, name)
}
