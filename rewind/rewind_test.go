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

package rewind_test

import (
	"crypto/sha1"
	"fmt"
	"testing"

	"github.com/arcanefold/gba-supervisor/engine"
	"github.com/arcanefold/gba-supervisor/rewind"
	"github.com/arcanefold/gba-supervisor/test"
)

func snapshot(n byte) engine.Snapshot {
	data := make([]byte, 32)
	for i := range data {
		data[i] = n
	}
	return engine.Snapshot{Data: data}
}

func TestCaptureInterval(t *testing.T) {
	r := rewind.NewRing(8, 3)

	test.ExpectFailure(t, r.Tick(snapshot(1)))
	test.ExpectFailure(t, r.Tick(snapshot(2)))
	test.ExpectSuccess(t, r.Tick(snapshot(3)))
	test.Equate(t, r.Len(), 1)
}

func TestRingWraps(t *testing.T) {
	r := rewind.NewRing(2, 1)

	r.Tick(snapshot(1))
	r.Tick(snapshot(2))
	r.Tick(snapshot(3))
	test.Equate(t, r.Len(), 2)

	latest, err := r.At(0)
	test.ExpectSuccess(t, err)
	test.Equate(t, latest.Data[0], byte(3))

	prior, err := r.At(1)
	test.ExpectSuccess(t, err)
	test.Equate(t, prior.Data[0], byte(2))

	_, err = r.At(2)
	test.ExpectFailure(t, err)
}

func TestRoundTripHash(t *testing.T) {
	r := rewind.NewRing(4, 1)
	original := snapshot(42)
	r.Tick(original)

	restored, err := r.At(0)
	test.ExpectSuccess(t, err)

	wantHash := fmt.Sprintf("%x", sha1.Sum(original.Data))
	gotHash := fmt.Sprintf("%x", sha1.Sum(restored.Data))
	test.Equate(t, gotHash, wantHash)
}

func TestClear(t *testing.T) {
	r := rewind.NewRing(4, 1)
	r.Tick(snapshot(1))
	r.Clear()
	test.Equate(t, r.Len(), 0)

	_, err := r.At(0)
	test.ExpectFailure(t, err)
}
