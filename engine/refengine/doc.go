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

// Package refengine is a minimal, deterministic, dependency-free
// implementation of engine.Engine: a synthetic ramp-pattern video
// generator and a synthetic tone audio generator, standing in for a real
// CPU/video/audio core (out of scope by design). It exists so the
// supervisor, its worker loop, and the rewind ring can be built and
// tested end to end without an actual instruction set, and so the demo
// consumers (consumers/sdlvideo, consumers/sdlaudio) have something to
// attach to.
//
// The frame and sample dimensions match a Game Boy Advance's native
// resolution and audio rate, since that is the cartridge format the
// artifacts package's extension tables (.GBA/.AGB) are built around, but
// nothing here decodes real GBA instructions.
package refengine
