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

import "sync"

// audioSync is the audio half of a Channel: symmetric to video but
// simpler, with no skip counter (spec.md §4.1 "Audio protocol").
type audioSync struct {
	mu       sync.Mutex
	required *sync.Cond

	wait bool // producer should block for consumer

	// consumeGen counts ConsumeAudio calls. ProduceAudio waits for it to
	// change rather than simply waking on any signal, which is what
	// spec.md §9's open question (a) asks for explicitly: the original
	// audio-produce wait wasn't in a loop and so couldn't tolerate a
	// spurious wakeup. Waiting on a generation counter rather than a bare
	// condition makes the loop's predicate well defined instead of
	// spinning on an unrelated flag.
	consumeGen uint64
}

func newAudioSync() *audioSync {
	a := &audioSync{}
	a.required = sync.NewCond(&a.mu)
	return a
}

// LockAudio acquires the audio mutex around a consumer read.
func (a *audioSync) LockAudio() {
	a.mu.Lock()
}

// UnlockAudio releases the audio mutex.
func (a *audioSync) UnlockAudio() {
	a.mu.Unlock()
}

// BeginProduce acquires the audio mutex for the producer, which then fills
// the shared buffer before calling ProduceAudio.
func (a *audioSync) BeginProduce() {
	a.mu.Lock()
}

// ProduceAudio presumes the mutex is already held by the producer (via
// BeginProduce). If wait is requested and the consumer has back-pressure
// enabled, it blocks until ConsumeAudio is called, then releases the
// mutex.
func (a *audioSync) ProduceAudio(wait bool) {
	defer a.mu.Unlock()

	if a.wait && wait {
		gen := a.consumeGen
		for a.consumeGen == gen {
			a.required.Wait()
		}
	}
}

// ConsumeAudio signals a producer parked in ProduceAudio and releases the
// mutex the consumer is presumed to already hold (via LockAudio).
func (a *audioSync) ConsumeAudio() {
	defer a.mu.Unlock()
	a.consumeGen++
	a.required.Signal()
}

// setWait toggles producer back-pressure. Used by the controller's End
// verb (spec.md §4.1 "audioWait := 0 at End") to release any producer
// parked in ProduceAudio.
func (a *audioSync) setWait(wait bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.wait = wait
	if !wait {
		a.consumeGen++
		a.required.Broadcast()
	}
}
