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
	"bytes"
	"io"
	"os"

	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/logger"
)

// Save is the cartridge save data handed to the engine's LoadROM and
// flushed back to disk by Flush. Unlike ROM/BIOS/Patch it is writable:
// the engine mutates the buffer in place as the emulated game writes to
// its save memory, and Flush persists that buffer on request (e.g. from
// supervisor.Context.Join once the worker has returned).
type Save struct {
	Filename string
	buf      *bytes.Buffer
}

// NewSave opens filename for reading if it exists, or starts an empty save
// of size bytes otherwise. filename is never resolved through archivefs:
// saves are always loose files, never archive members, since they are
// written back to.
func NewSave(filename string, size int) (*Save, error) {
	s := &Save{Filename: filename}

	f, err := os.Open(filename)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.Errorf(errors.SaveUnwritableErr, err)
		}
		s.buf = bytes.NewBuffer(make([]byte, size))
		return s, nil
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, errors.Errorf(errors.SaveUnwritableErr, err)
	}
	s.buf = bytes.NewBuffer(data)

	logger.Logf(logger.Allow, "save", "loaded %s (%d bytes)", filename, len(data))

	return s, nil
}

// Bytes returns the save's backing buffer. The engine is expected to
// mutate this slice's contents directly via the pointer semantics of
// *[]byte, matching how the teacher's Loader.Data field works.
func (s *Save) Bytes() *[]byte {
	b := s.buf.Bytes()
	return &b
}

// Read implements io.Reader.
func (s *Save) Read(p []byte) (int, error) {
	return s.buf.Read(p)
}

// Flush writes the save's current contents to Filename, creating it if
// necessary.
func (s *Save) Flush() error {
	f, err := os.OpenFile(s.Filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return errors.Errorf(errors.SaveUnwritableErr, err)
	}
	defer f.Close()

	if _, err := f.Write(s.buf.Bytes()); err != nil {
		return errors.Errorf(errors.SaveUnwritableErr, err)
	}

	logger.Logf(logger.Allow, "save", "flushed %s (%d bytes)", s.Filename, s.buf.Len())

	return nil
}
