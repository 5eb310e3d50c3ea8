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

// Package sdlvideo is a reference video consumer: it attaches to a
// supervisor.Context's Sync Channel as the video half's one real-time
// consumer (spec.md §1) and blits whatever the engine renders to an SDL
// window. Grounded on gui/sdlimgui/screen.go's buffered-pixel/critical-
// section design, with the imgui/OpenGL layer dropped (see DESIGN.md) in
// favor of a plain renderer+texture blit, since this module has no
// debugger windows to draw.
package sdlvideo

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/supervisor"
)

// Presenter owns one SDL window, renderer and streaming texture sized to
// the engine's fixed resolution.
type Presenter struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	width    int
	height   int
}

// New creates a titled window of width x height and a streaming texture
// the same size, assuming RGBA8888 pixels (refengine.Engine's layout; a
// real engine binding would negotiate this instead of assuming it).
func New(title string, width, height int) (*Presenter, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Errorf(errors.ConsumerError, err)
	}

	window, renderer, err := sdl.CreateWindowAndRenderer(
		int32(width), int32(height), sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Errorf(errors.ConsumerError, err)
	}
	window.SetTitle(title)

	texture, err := renderer.CreateTexture(
		uint32(sdl.PIXELFORMAT_RGBA8888), sdl.TEXTUREACCESS_STREAMING,
		int32(width), int32(height))
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return nil, errors.Errorf(errors.ConsumerError, err)
	}

	return &Presenter{
		window:   window,
		renderer: renderer,
		texture:  texture,
		width:    width,
		height:   height,
	}, nil
}

// Run attaches to ctx and blits frames until ctx stops being active or
// WaitFrameStart reports no frame is coming (the consumer-disappearance
// path, spec.md §4.1, here driven by the supervisor ending rather than
// this consumer detaching itself). skip is forwarded to WaitFrameStart
// unchanged every iteration.
func (p *Presenter) Run(ctx *supervisor.Context, skip int) error {
	ctx.Sync().ResumeDrawing()
	defer ctx.Sync().SuspendDrawing()

	for ctx.IsActive() {
		frame := ctx.Sync().WaitFrameStart(skip)
		if !frame.Ok {
			frame.Close()
			if !ctx.IsActive() {
				return nil
			}
			continue
		}

		stride, buf := ctx.Pixels()
		if err := p.texture.Update(nil, buf, stride); err != nil {
			frame.Close()
			return errors.Errorf(errors.ConsumerError, err)
		}
		frame.Close()

		p.renderer.Clear()
		p.renderer.Copy(p.texture, nil, nil)
		p.renderer.Present()
	}
	return nil
}

// Close releases the window, renderer and texture.
func (p *Presenter) Close() {
	p.texture.Destroy()
	p.renderer.Destroy()
	p.window.Destroy()
	sdl.Quit()
}
