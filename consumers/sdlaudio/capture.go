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

package sdlaudio

import (
	"encoding/binary"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/arcanefold/gba-supervisor/errors"
)

// Capture writes every buffer passed to Write to a .wav file at path, for
// offline inspection of what a session actually produced. Not part of
// the real-time playback path; a caller wires it in alongside Player by
// calling Write with the same buffers passed to sdl.QueueAudio.
type Capture struct {
	f       *os.File
	encoder *wav.Encoder
}

// NewCapture creates path and prepares a wav.Encoder for 16-bit mono PCM
// at sampleRate.
func NewCapture(path string, sampleRate int) (*Capture, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Errorf(errors.ConsumerError, err)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 1, 1)
	return &Capture{f: f, encoder: enc}, nil
}

// Write appends one buffer of little-endian 16-bit mono PCM.
func (c *Capture) Write(buf []byte) error {
	samples := make([]int, len(buf)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(buf[i*2 : i*2+2])))
	}

	ib := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: c.encoder.SampleRate},
		Data:           samples,
		SourceBitDepth: 16,
	}
	if err := c.encoder.Write(ib); err != nil {
		return errors.Errorf(errors.ConsumerError, err)
	}
	return nil
}

// Close flushes the wav header and closes the underlying file.
func (c *Capture) Close() error {
	if err := c.encoder.Close(); err != nil {
		c.f.Close()
		return errors.Errorf(errors.ConsumerError, err)
	}
	return c.f.Close()
}
