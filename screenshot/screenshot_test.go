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

package screenshot_test

import (
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/config"
	"github.com/arcanefold/gba-supervisor/engine/refengine"
	"github.com/arcanefold/gba-supervisor/screenshot"
	"github.com/arcanefold/gba-supervisor/supervisor"
	"github.com/arcanefold/gba-supervisor/test"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func newTestContext(t *testing.T) (*supervisor.Context, artifacts.StateDirectory) {
	t.Helper()
	rom := artifacts.NewROMFromData("test", []byte{0xde, 0xad, 0xbe, 0xef})
	dir := artifacts.StateDirectory{Root: t.TempDir()}
	c := supervisor.NewContext(
		refengine.New(),
		config.Default(),
		supervisor.WithROM(rom),
		supervisor.WithStateDirectory(dir),
	)
	c.Sync().SetVideoOn(true)
	return c, dir
}

func TestWriteRequiresHeldFrame(t *testing.T) {
	c, _ := newTestContext(t)
	test.ExpectSuccess(t, c.Start())
	waitFor(t, 2*time.Second, func() bool { return c.State() == supervisor.Running })

	_, err := screenshot.Write(c, nil)
	test.ExpectFailure(t, err)

	c.End()
	c.Join()
}

func TestWriteProducesReadablePNG(t *testing.T) {
	c, _ := newTestContext(t)
	test.ExpectSuccess(t, c.Start())
	waitFor(t, 2*time.Second, func() bool { return c.State() == supervisor.Running })

	frame := c.Sync().WaitFrameStart(0)
	test.ExpectSuccess(t, frame.Ok)

	path, err := screenshot.Write(c, frame)
	test.ExpectSuccess(t, err)
	frame.Close()

	f, err := os.Open(path)
	test.ExpectSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.ExpectSuccess(t, err)
	test.ExpectInequality(t, img.Bounds().Dx(), 0)
	test.ExpectInequality(t, img.Bounds().Dy(), 0)

	c.End()
	c.Join()
}

func TestWriteAutoIncrements(t *testing.T) {
	c, _ := newTestContext(t)
	test.ExpectSuccess(t, c.Start())
	waitFor(t, 2*time.Second, func() bool { return c.State() == supervisor.Running })

	frame1 := c.Sync().WaitFrameStart(0)
	test.ExpectSuccess(t, frame1.Ok)
	path1, err := screenshot.Write(c, frame1)
	test.ExpectSuccess(t, err)
	frame1.Close()

	frame2 := c.Sync().WaitFrameStart(0)
	test.ExpectSuccess(t, frame2.Ok)
	path2, err := screenshot.Write(c, frame2)
	test.ExpectSuccess(t, err)
	frame2.Close()

	test.ExpectInequality(t, path1, path2)

	c.End()
	c.Join()
}
