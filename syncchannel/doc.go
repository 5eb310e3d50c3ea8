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

// Package syncchannel implements the paced producer/consumer rendezvous
// between the worker (producer) and the two external consumers: a video
// presenter and an audio consumer. Two independent halves, video and
// audio, share nothing but the general shape of a critical section
// guarded by a mutex, mirroring the teacher's screenCrit pattern
// (gui/sdlimgui/screen.go) and sdlaudio's buffer handoff
// (gui/sdlaudio/audio.go) rather than any generic pub/sub library.
package syncchannel
