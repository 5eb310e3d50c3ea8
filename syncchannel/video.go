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

import (
	"sync"
	"time"
)

// frameTimeout is WaitFrameStart's cap on waiting for a frame: a stalled
// producer must not freeze a UI consumer forever (spec.md §5).
const frameTimeout = 50 * time.Millisecond

// videoCrit holds every field that must only be touched while holding
// mu, named after the teacher's screenCrit convention
// (gui/sdlimgui/screen.go) of grouping critical-section state into its
// own subtype.
type videoCrit struct {
	on      bool // consumer attached and drawing enabled
	wait    bool // producer should block for consumer
	skip    int  // frames the producer may skip before blocking
	pending int  // frames produced but not yet claimed
}

// videoSync is the video half of a Channel: the producer's PostFrame and
// the consumer's WaitFrameStart/WaitFrameEnd rendezvous (spec.md §4.1).
type videoSync struct {
	mu        sync.Mutex
	crit      videoCrit
	required  *sync.Cond   // wakes a producer parked in PostFrame
	available *broadcaster // wakes a consumer waiting in WaitFrameStart, with a timeout
}

func newVideoSync() *videoSync {
	v := &videoSync{available: newBroadcaster()}
	v.required = sync.NewCond(&v.mu)
	return v
}

// VideoFrame is the scoped guard WaitFrameStart returns. Its Close method
// performs WaitFrameEnd, matching spec.md §9's recommendation of "a scoped
// guard type returned from WaitFrameStart whose destruction performs
// WaitFrameEnd" in place of the error-prone "hand the mutex across the API
// boundary" pattern the locking rule otherwise requires.
type VideoFrame struct {
	v  *videoSync
	Ok bool
}

// Close releases videoFrameMutex. Safe to call via defer regardless of
// which path WaitFrameStart returned through.
func (f *VideoFrame) Close() {
	f.v.mu.Unlock()
}

// PostFrame is called once per simulated frame by the producer, inside no
// other lock. It increments pending and decrements the skip counter; once
// skip goes negative it signals a waiting consumer and, while the consumer
// is attached and frames remain pending, blocks until the consumer drains
// one. This is the producer-blocking handshake: skip frames may be emitted
// without waiting, then the producer blocks until the consumer catches up.
// Each time a WaitFrameStart wakes it while the frame is still unclaimed,
// it signals the consumer again.
func (v *videoSync) PostFrame() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.crit.pending++
	v.crit.skip--
	if v.crit.skip < 0 {
		v.available.broadcast()
		for v.crit.wait && v.crit.pending > 0 {
			v.required.Wait()
			if v.crit.wait && v.crit.pending > 0 {
				v.available.broadcast()
			}
		}
	}
}

// WaitFrameStart opens the video critical section and requests a frame,
// per spec.md §4.1. It always leaves mu held on return (true or false);
// the caller must release it via the returned guard's Close, typically
// deferred immediately.
func (v *videoSync) WaitFrameStart(skip int) *VideoFrame {
	v.mu.Lock()
	v.required.Signal() // wake a producer parked in PostFrame

	if !v.crit.on && v.crit.pending == 0 {
		return &VideoFrame{v: v, Ok: false}
	}

	if v.crit.on {
		avail := v.available.wait()
		timer := time.NewTimer(frameTimeout)
		v.mu.Unlock()

		select {
		case <-avail:
			timer.Stop()
			v.mu.Lock()
		case <-timer.C:
			v.mu.Lock()
			return &VideoFrame{v: v, Ok: false}
		}
	}

	v.crit.pending = 0
	v.crit.skip = skip
	return &VideoFrame{v: v, Ok: true}
}

// DrawingFrame reports whether the producer is not currently skipping this
// frame. Read without the lock; advisory only, per spec.md §4.1.
func (v *videoSync) DrawingFrame() bool {
	return v.crit.skip <= 0
}

// SuspendDrawing detaches the consumer: WaitFrameStart will subsequently
// return immediately without blocking, and a producer parked in PostFrame
// is woken (by clearing wait as well as on) rather than left to block
// against a consumer that is never coming back. Safe to call from any
// thread at any time (spec.md §5).
func (v *videoSync) SuspendDrawing() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.crit.on = false
	v.crit.wait = false
	v.available.broadcast()
	v.required.Broadcast()
}

// ResumeDrawing re-attaches the consumer and re-enables PostFrame's
// back-pressure against it.
func (v *videoSync) ResumeDrawing() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.crit.on = true
	v.crit.wait = true
	v.available.broadcast()
}
