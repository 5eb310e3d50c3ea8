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
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/arcanefold/gba-supervisor/archivefs"
	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/logger"
)

// readOnlyHandle is the common shape shared by ROM, BIOS and Patch: a
// filename (possibly resolved through an archive) or an embedded byte
// slice, opened lazily and exposed as an io.ReadSeeker. This is the same
// filename/embedded duality as the teacher's cartridgeloader.Loader,
// split out so it can be reused by the three read-only artifact kinds
// without repeating the Open/Close/Read/Seek plumbing three times.
type readOnlyHandle struct {
	tag      string
	Filename string
	Name     string
	HashSHA1 string
	HashMD5  string

	embedded bool
	data     *bytes.Buffer
	rs       io.ReadSeeker
}

func newFromFilename(tag, filename string) readOnlyHandle {
	base := filepath.Base(filename)
	return readOnlyHandle{
		tag:      tag,
		Filename: filename,
		Name:     strings.TrimSuffix(base, fileExt(base)),
	}
}

func newFromData(tag, name string, data []byte) readOnlyHandle {
	return readOnlyHandle{
		tag:      tag,
		Name:     name,
		Filename: name,
		embedded: true,
		data:     bytes.NewBuffer(data),
		HashSHA1: fmt.Sprintf("%x", sha1.Sum(data)),
		HashMD5:  fmt.Sprintf("%x", md5.Sum(data)),
	}
}

func fileExt(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return name[i:]
}

// Open resolves the underlying data, via archivefs if Filename points
// inside a zip archive, validating HashSHA1/HashMD5 if either was set in
// advance (e.g. by a properties lookup) and filling them in otherwise.
func (h *readOnlyHandle) Open() error {
	if h.embedded {
		return nil
	}
	if h.rs != nil {
		return nil
	}

	if strings.HasSuffix(strings.ToUpper(h.Filename), ".7Z") {
		return errors.Errorf(errors.Archive7zError, h.Filename)
	}

	rs, size, err := archivefs.Open(h.Filename)
	if err != nil {
		return errors.Errorf(errors.ROMUnreadableErr, err)
	}

	raw := make([]byte, size)
	if _, err := io.ReadFull(rs, raw); err != nil {
		return errors.Errorf(errors.ROMUnreadableErr, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(raw))
	if h.HashSHA1 != "" && h.HashSHA1 != hash {
		return errors.Errorf(errors.ROMError, "unexpected SHA1 hash value")
	}
	h.HashSHA1 = hash

	hash = fmt.Sprintf("%x", md5.Sum(raw))
	if h.HashMD5 != "" && h.HashMD5 != hash {
		return errors.Errorf(errors.ROMError, "unexpected MD5 hash value")
	}
	h.HashMD5 = hash

	h.data = bytes.NewBuffer(raw)
	h.rs = bytes.NewReader(raw)

	logger.Logf(logger.Allow, h.tag, "opened %s (%d bytes)", h.Filename, size)

	return nil
}

// Close releases the handle's backing data so it can be reopened later.
func (h *readOnlyHandle) Close() error {
	if h.rs != nil {
		logger.Logf(logger.Allow, h.tag, "closed %s", h.Filename)
	}
	h.rs = nil
	h.data = nil
	return nil
}

// Read implements io.Reader. Open must have been called first.
func (h *readOnlyHandle) Read(p []byte) (int, error) {
	if h.embedded {
		return h.data.Read(p)
	}
	if h.rs == nil {
		return 0, errors.Errorf(errors.ROMError, "read before open")
	}
	return h.rs.Read(p)
}

// Seek implements io.Seeker. Open must have been called first.
func (h *readOnlyHandle) Seek(offset int64, whence int) (int64, error) {
	if h.embedded {
		return 0, nil
	}
	if h.rs == nil {
		return 0, errors.Errorf(errors.ROMError, "seek before open")
	}
	return h.rs.Seek(offset, whence)
}

// Bytes returns the full, already-opened content.
func (h *readOnlyHandle) Bytes() ([]byte, error) {
	if h.data == nil {
		if err := h.Open(); err != nil {
			return nil, err
		}
	}
	return h.data.Bytes(), nil
}
