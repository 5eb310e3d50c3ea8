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

package artifacts_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/test"
)

func TestROMFromData(t *testing.T) {
	rom := artifacts.NewROMFromData("test", []byte{0x01, 0x02, 0x03, 0x04})
	test.ExpectSuccess(t, rom.Open())
	defer rom.Close()

	b := make([]byte, 4)
	n, err := rom.Read(b)
	test.ExpectSuccess(t, err)
	test.Equate(t, n, 4)
	test.Equate(t, b, []byte{0x01, 0x02, 0x03, 0x04})
}

func TestROMFromFile(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "game.gba")
	test.ExpectSuccess(t, os.WriteFile(filename, []byte("cartridge data"), 0o644))

	rom := artifacts.NewROMFromFile(filename)
	test.ExpectSuccess(t, rom.Open())
	defer rom.Close()

	got, err := io.ReadAll(&rom)
	test.ExpectSuccess(t, err)
	test.Equate(t, string(got), "cartridge data")
	test.ExpectInequality(t, rom.HashSHA1, "")
}

func Test7zRejected(t *testing.T) {
	rom := artifacts.NewROMFromFile("game.7z")
	test.ExpectFailure(t, rom.Open())
}
