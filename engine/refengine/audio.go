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

package refengine

import "math"

// toneHz is the frequency of the synthetic sine wave written into
// the sample buffer each frame; arbitrary, chosen only to be audible and
// easy to eyeball in a waveform viewer.
const toneHz = 440.0

// renderTone fills the sample buffer with one frame's worth of 16-bit
// mono PCM, phase-continuous across frames via e.frame so consecutive
// buffers splice together without a click.
func (e *Engine) renderTone() {
	phase := float64(e.frame) * float64(samplesPerFrame)
	for i := 0; i < samplesPerFrame; i++ {
		t := (phase + float64(i)) / float64(SampleRate)
		s := math.Sin(2 * math.Pi * toneHz * t)
		v := int16(s * 20000)
		e.samples[i*2+0] = byte(v)
		e.samples[i*2+1] = byte(v >> 8)
	}
}

// GetSamples returns the most recently rendered audio buffer, read by
// consumers/sdlaudio between ConsumeAudio calls.
func (e *Engine) GetSamples() []byte {
	return e.samples
}
