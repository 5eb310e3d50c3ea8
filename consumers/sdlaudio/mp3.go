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
	"io"
	"os"

	"github.com/hajimehoshi/go-mp3"

	"github.com/arcanefold/gba-supervisor/errors"
)

// DecodeReferenceClip decodes path (an mp3 file) to interleaved 16-bit
// stereo PCM, for feeding a real clip through this reference consumer
// during a demo instead of engine/refengine's synthetic tone. Returns
// the decoded sample rate alongside the PCM bytes; callers driving an
// SDL device at a different rate must resample themselves, which this
// module explicitly declines to do (spec.md's "does not attempt
// real-time audio/video resampling" non-goal).
func DecodeReferenceClip(path string) (pcm []byte, sampleRate int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, errors.Errorf(errors.ConsumerError, err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, 0, errors.Errorf(errors.ConsumerError, err)
	}

	pcm, err = io.ReadAll(dec)
	if err != nil {
		return nil, 0, errors.Errorf(errors.ConsumerError, err)
	}

	return pcm, dec.SampleRate(), nil
}
