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

// Package sdlaudio is a reference audio consumer: it attaches to a
// supervisor.Context's Sync Channel as the audio half's real-time
// consumer (spec.md §1), draining 16-bit mono PCM into an SDL audio
// device. Grounded on gui/sdlaudio/audio.go's SDL device setup and
// queued-bytes bookkeeping, trimmed of the stereo-mixing and
// preferences-driven respec machinery that package needs for a real TV
// signal and this one does not.
package sdlaudio

import (
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/supervisor"
)

// Player owns one SDL audio device opened for 16-bit mono PCM at a fixed
// sample rate.
type Player struct {
	id          sdl.AudioDeviceID
	QueuedBytes atomic.Int32
}

// New opens an SDL audio device at sampleRate, 16-bit mono, matching
// engine/refengine's output format (little-endian signed samples).
func New(sampleRate int) (*Player, error) {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return nil, errors.Errorf(errors.ConsumerError, err)
	}

	want := sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: 1,
		Samples:  1024,
	}
	id, err := sdl.OpenAudioDevice("", false, &want, nil, 0)
	if err != nil {
		sdl.Quit()
		return nil, errors.Errorf(errors.ConsumerError, err)
	}

	sdl.PauseAudioDevice(id, false)
	return &Player{id: id}, nil
}

// Run drains ctx's audio half until ctx stops being active, queuing each
// buffer to the SDL device as it arrives. If queuedMax is positive and
// the device's queue grows past it, the queue is cleared first — the
// same "measure and cull" idea as gui/sdlaudio/audio.go's
// queuedBytesMeasure, simplified to a check made on every buffer instead
// of a periodic ticker.
func (p *Player) Run(ctx *supervisor.Context, queuedMax uint32) error {
	ctx.Sync().SetAudioWait(true)
	defer ctx.Sync().SetAudioWait(false)

	for ctx.IsActive() {
		ctx.Sync().LockAudio()
		buf := ctx.Samples()

		if queuedMax > 0 && sdl.GetQueuedAudioSize(p.id) > queuedMax {
			sdl.ClearQueuedAudio(p.id)
		}
		if err := sdl.QueueAudio(p.id, buf); err != nil {
			ctx.Sync().UnlockAudio()
			return errors.Errorf(errors.ConsumerError, err)
		}
		p.QueuedBytes.Store(int32(sdl.GetQueuedAudioSize(p.id)))

		ctx.Sync().ConsumeAudio()
	}
	return nil
}

// Close stops and releases the audio device.
func (p *Player) Close() {
	if p.id == 0 {
		return
	}
	sdl.CloseAudioDevice(p.id)
	p.id = 0
	sdl.Quit()
}

