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

package refengine

import (
	"encoding/binary"
	"fmt"

	"github.com/arcanefold/gba-supervisor/engine"
	"github.com/arcanefold/gba-supervisor/errors"
)

// Serialize captures the entirety of the synthetic engine's state: the
// frame counter (everything else is derived from it) plus the halted
// flag, encoded as a fixed 9-byte record. rewind.Ring treats this as an
// opaque blob; only this package needs to know its layout.
func (e *Engine) Serialize() (engine.Snapshot, error) {
	buf := make([]byte, 9)
	binary.BigEndian.PutUint64(buf[0:8], uint64(e.frame))
	if e.halted {
		buf[8] = 1
	}
	return engine.Snapshot{Data: buf}, nil
}

// Deserialize restores state captured by Serialize and re-renders the
// frame/sample buffers to match, so GetPixels reflects the restored
// frame immediately rather than the frame last rendered before restore.
func (e *Engine) Deserialize(snap engine.Snapshot) error {
	if len(snap.Data) != 9 {
		return errors.Errorf(errors.EngineError, fmt.Sprintf("malformed snapshot (%d bytes)", len(snap.Data)))
	}
	e.frame = int64(binary.BigEndian.Uint64(snap.Data[0:8]))
	e.halted = snap.Data[8] != 0
	e.renderRampFrame()
	e.renderTone()
	return nil
}
