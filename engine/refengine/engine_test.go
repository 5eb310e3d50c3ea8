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

package refengine_test

import (
	"testing"

	"github.com/arcanefold/gba-supervisor/engine"
	"github.com/arcanefold/gba-supervisor/engine/refengine"
	"github.com/arcanefold/gba-supervisor/syncchannel"
	"github.com/arcanefold/gba-supervisor/test"
)

func newRunning(t *testing.T) *refengine.Engine {
	t.Helper()
	e := refengine.New()
	test.ExpectSuccess(t, e.Create())
	test.ExpectSuccess(t, e.Init(engine.BootConfig{}))
	return e
}

func TestCreateLifecycle(t *testing.T) {
	e := refengine.New()
	test.ExpectSuccess(t, e.Create())
	test.ExpectFailure(t, e.Create())
	test.ExpectSuccess(t, e.Destroy())
}

func TestRunOneStepPostsFrame(t *testing.T) {
	e := newRunning(t)
	sync := syncchannel.NewChannel()
	sync.SetVideoOn(false)
	sync.SetAudioWait(false)

	result, err := e.RunOneStep(sync)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, result.FrameCompleted)
	test.ExpectSuccess(t, result.Crashed == false)
}

func TestRunOneStepInterrupted(t *testing.T) {
	e := newRunning(t)
	sync := syncchannel.NewChannel()

	e.Interrupt()
	result, err := e.RunOneStep(sync)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, result.FrameCompleted)
}

func TestGetPixelsChangesAcrossFrames(t *testing.T) {
	e := newRunning(t)
	sync := syncchannel.NewChannel()
	sync.SetVideoOn(false)
	sync.SetAudioWait(false)

	_, first := e.GetPixels()
	firstCopy := append([]byte(nil), first...)

	_, err := e.RunOneStep(sync)
	test.ExpectSuccess(t, err)

	stride, second := e.GetPixels()
	test.Equate(t, stride, refengine.ScreenWidth*4)
	test.ExpectInequality(t, firstCopy, second)
}

func TestSerializeRoundTrip(t *testing.T) {
	e := newRunning(t)
	sync := syncchannel.NewChannel()
	sync.SetVideoOn(false)
	sync.SetAudioWait(false)

	for i := 0; i < 3; i++ {
		_, err := e.RunOneStep(sync)
		test.ExpectSuccess(t, err)
	}

	snap, err := e.Serialize()
	test.ExpectSuccess(t, err)

	_, pixelsAtSnapshot := e.GetPixels()
	pixelsAtSnapshotCopy := append([]byte(nil), pixelsAtSnapshot...)

	_, err = e.RunOneStep(sync)
	test.ExpectSuccess(t, err)

	_, pixelsAfterAnotherStep := e.GetPixels()
	test.ExpectInequality(t, pixelsAtSnapshotCopy, pixelsAfterAnotherStep)

	test.ExpectSuccess(t, e.Deserialize(snap))
	_, restored := e.GetPixels()
	test.Equate(t, restored, pixelsAtSnapshotCopy)
}

func TestOverrideFindApply(t *testing.T) {
	e := newRunning(t)

	_, ok := e.OverrideFind("save-type")
	test.ExpectFailure(t, ok)

	e.OverrideApply(engine.OverrideEntry{Name: "save-type", Value: "flash128k"})
	got, ok := e.OverrideFind("save-type")
	test.ExpectSuccess(t, ok)
	test.Equate(t, got.Value, "flash128k")
}

type shutdownDebugger struct{ after int }

func (d *shutdownDebugger) Step(e engine.Engine) (bool, error) {
	if d.after <= 0 {
		return true, nil
	}
	d.after--
	return false, nil
}

func TestDebuggerCanRequestShutdown(t *testing.T) {
	e := newRunning(t)
	sync := syncchannel.NewChannel()
	sync.SetVideoOn(false)
	sync.SetAudioWait(false)

	d := &shutdownDebugger{after: 0}
	e.AttachDebugger(d)

	result, err := e.RunOneStep(sync)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, result.FrameCompleted)
}
