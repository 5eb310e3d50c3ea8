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

package syncchannel

// Channel is the shared media rendezvous spec.md §3 names SyncChannel,
// split internally into independent video and audio halves per spec.md
// §4.1. A Channel is created once per supervisor.Context and shared by
// the worker (producer) and whichever external consumers attach to it.
type Channel struct {
	video *videoSync
	audio *audioSync
}

// NewChannel returns a Channel ready for use, both halves detached
// (SuspendDrawing/audio back-pressure off) until a consumer attaches.
func NewChannel() *Channel {
	return &Channel{
		video: newVideoSync(),
		audio: newAudioSync(),
	}
}

// PostFrame is called by the worker once per completed video frame.
func (c *Channel) PostFrame() {
	c.video.PostFrame()
}

// WaitFrameStart opens the video critical section for a consumer. See
// VideoFrame for the locking rule this enforces.
func (c *Channel) WaitFrameStart(skip int) *VideoFrame {
	return c.video.WaitFrameStart(skip)
}

// DrawingFrame reports whether the producer is not currently skipping
// this frame.
func (c *Channel) DrawingFrame() bool {
	return c.video.DrawingFrame()
}

// SuspendDrawing detaches the video consumer.
func (c *Channel) SuspendDrawing() {
	c.video.SuspendDrawing()
}

// ResumeDrawing re-attaches the video consumer.
func (c *Channel) ResumeDrawing() {
	c.video.ResumeDrawing()
}

// LockAudio acquires the audio mutex around a consumer read.
func (c *Channel) LockAudio() {
	c.audio.LockAudio()
}

// UnlockAudio releases the audio mutex.
func (c *Channel) UnlockAudio() {
	c.audio.UnlockAudio()
}

// BeginProduce acquires the audio mutex for the producer.
func (c *Channel) BeginProduce() {
	c.audio.BeginProduce()
}

// ProduceAudio blocks for the consumer if requested and back-pressure is
// enabled, then releases the audio mutex.
func (c *Channel) ProduceAudio(wait bool) {
	c.audio.ProduceAudio(wait)
}

// ConsumeAudio signals a producer parked in ProduceAudio and releases the
// audio mutex.
func (c *Channel) ConsumeAudio() {
	c.audio.ConsumeAudio()
}

// End releases every condvar a producer could be parked in, per spec.md
// §5's "always safe to call End from any thread at any time" guarantee.
// The supervisor calls this from its End verb and again from the worker's
// teardown.
func (c *Channel) End() {
	c.video.SuspendDrawing()
	c.audio.setWait(false)
}

// SuspendVideoWait implements spec.md §4.2's cross-wake discipline:
// _waitUntilNotState must release stateMutex before waking the sync
// condvars, and temporarily clears videoFrameWait while looping so a
// producer parked in PostFrame can progress, restoring the prior value
// when the returned restore function is called.
func (c *Channel) SuspendVideoWait() (restore func()) {
	c.video.mu.Lock()
	prior := c.video.crit.wait
	c.video.crit.wait = false
	c.video.required.Broadcast()
	c.video.mu.Unlock()

	return func() {
		c.video.mu.Lock()
		c.video.crit.wait = prior
		c.video.mu.Unlock()
	}
}

// SetVideoOn directly sets the attached flag, for callers that decide the
// initial state before any consumer has called ResumeDrawing.
func (c *Channel) SetVideoOn(on bool) {
	if on {
		c.video.ResumeDrawing()
	} else {
		c.video.SuspendDrawing()
	}
}

// SetAudioWait directly sets audio back-pressure.
func (c *Channel) SetAudioWait(wait bool) {
	c.audio.setWait(wait)
}
