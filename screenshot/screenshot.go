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

// Package screenshot writes the renderer's current back buffer to a PNG
// file under a Context's state directory, per spec.md §6: a helper
// external to the core, callable only while a consumer holds the video
// frame guard WaitFrameStart hands out.
package screenshot

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/supervisor"
	"github.com/arcanefold/gba-supervisor/syncchannel"
)

// Write encodes ctx's current pixel buffer as a PNG and writes it to an
// auto-incremented path under the context's state directory, returning
// the path written. frame must be the *syncchannel.VideoFrame returned
// by ctx.Sync().WaitFrameStart for the frame being captured — taking it
// as an argument, rather than re-deriving the guard internally, is the
// signature-level enforcement of "only callable while holding the
// equivalent of videoFrameMutex" (spec.md §6); Write itself never touches
// frame beyond requiring a non-nil, Ok guard.
func Write(ctx *supervisor.Context, frame *syncchannel.VideoFrame) (string, error) {
	if frame == nil || !frame.Ok {
		return "", errors.Errorf(errors.ScreenshotError, "no frame held")
	}

	stride, buffer := ctx.Pixels()
	if stride <= 0 || len(buffer) == 0 {
		return "", errors.Errorf(errors.ScreenshotError, "renderer has no pixels")
	}

	width := stride / 4
	height := len(buffer) / stride

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, buffer)

	dir, ok := ctx.StateDir()
	if !ok {
		return "", errors.Errorf(errors.ScreenshotError, "no state directory attached")
	}

	path, err := nextPath(dir)
	if err != nil {
		return "", errors.Errorf(errors.ScreenshotError, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", errors.Errorf(errors.ScreenshotError, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return "", errors.Errorf(errors.ScreenshotError, err)
	}

	return path, nil
}

// nextPath finds the first "screenshot-NNNN.png" under dir that does not
// already exist, starting the search from 0 each call. This module does
// not persist state across runs (spec.md's non-persistence non-goal), so
// a scan rather than a remembered counter is the honest way to avoid
// colliding with screenshots from a previous run in the same directory.
func nextPath(dir artifacts.StateDirectory) (string, error) {
	for i := 0; i < 100000; i++ {
		name := dir.Path(fmt.Sprintf("screenshot-%04d.png", i))
		if _, err := os.Stat(name); os.IsNotExist(err) {
			return name, nil
		}
	}
	return "", errors.Errorf(errors.ScreenshotError, "exhausted screenshot index")
}
