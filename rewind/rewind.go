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

// Package rewind is a fixed-capacity ring of compressed engine
// snapshots, captured by the worker loop at a configurable frame
// interval. It knows nothing about the engine's internal state beyond
// the opaque engine.Snapshot bytes.
package rewind

import (
	"github.com/arcanefold/gba-supervisor/crunched"
	"github.com/arcanefold/gba-supervisor/engine"
	"github.com/arcanefold/gba-supervisor/errors"
)

// Ring is a bounded ring buffer of captured engine snapshots, each kept
// crunched (see the crunched package) between capture and restore to
// keep the memory cost of a deep rewind history small.
type Ring struct {
	capacity int
	interval int

	entries []crunched.Data
	next    int // index the next Capture will write to
	count   int // number of valid entries, capped at capacity

	sinceLast int // frames elapsed since the last Capture
}

// NewRing returns an empty Ring holding at most capacity snapshots,
// capturing one every interval frames (interval <= 0 behaves as 1: every
// frame is a candidate).
func NewRing(capacity, interval int) *Ring {
	if capacity <= 0 {
		capacity = 1
	}
	if interval <= 0 {
		interval = 1
	}
	return &Ring{
		capacity: capacity,
		interval: interval,
		entries:  make([]crunched.Data, capacity),
	}
}

// Tick is called once per completed frame by the worker loop. It
// captures snap only once every interval calls, returning true if it
// did.
func (r *Ring) Tick(snap engine.Snapshot) bool {
	r.sinceLast++
	if r.sinceLast < r.interval {
		return false
	}
	r.sinceLast = 0
	r.capture(snap)
	return true
}

func (r *Ring) capture(snap engine.Snapshot) {
	d := crunched.NewQuick(len(snap.Data))
	copy(*d.Data(), snap.Data)
	r.entries[r.next] = d.Snapshot()

	r.next = (r.next + 1) % r.capacity
	if r.count < r.capacity {
		r.count++
	}
}

// Len returns the number of snapshots currently retained.
func (r *Ring) Len() int {
	return r.count
}

// At returns the snapshot index steps back from the most recently
// captured one (0 is the most recent). index must be in [0, Len()).
func (r *Ring) At(index int) (engine.Snapshot, error) {
	if index < 0 || index >= r.count {
		return engine.Snapshot{}, errors.Errorf(errors.RewindRangeError, index, r.count-1)
	}

	pos := r.next - 1 - index
	pos = ((pos % r.capacity) + r.capacity) % r.capacity

	data := r.entries[pos].Data()
	out := make([]byte, len(*data))
	copy(out, *data)
	return engine.Snapshot{Data: out}, nil
}

// Clear discards every retained snapshot.
func (r *Ring) Clear() {
	for i := range r.entries {
		r.entries[i] = nil
	}
	r.next = 0
	r.count = 0
	r.sinceLast = 0
}
