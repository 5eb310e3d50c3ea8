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

package supervisor

// waitOnInterrupt serializes every controller verb behind an active
// debugging session (spec.md §4.2 "every controller verb begins with
// _waitOnInterrupt"). Must be called with stateMutex held.
func (c *Context) waitOnInterrupt() {
	for c.state == Interrupted {
		c.stateCond.Wait()
	}
}

// waitUntilNotState blocks until c.state is no longer old, per spec.md
// §4.2's cross-wake discipline: stateMutex is released before waking the
// sync condvars (otherwise the worker could never reach stateMutex to
// make progress), and videoFrameWait is cleared for the duration so a
// producer parked in PostFrame can drain. Must be called with stateMutex
// held; returns with it held again.
func (c *Context) waitUntilNotState(old State) {
	for c.state == old {
		c.stateMutex.Unlock()
		restore := c.sync.SuspendVideoWait()
		c.stateMutex.Lock()
		for c.state == old {
			c.stateCond.Wait()
		}
		c.stateMutex.Unlock()
		restore()
		c.stateMutex.Lock()
	}
}

// Pause requests RUNNING -> PAUSING and blocks until the worker has
// actually parked in PAUSED (or the request was overtaken, e.g. by a
// concurrent Unpause — see spec.md §8 scenario 2). It also suspends
// video drawing so a UI consumer doesn't spin against a stalled
// producer.
func (c *Context) Pause() {
	c.stateMutex.Lock()
	c.waitOnInterrupt()

	if c.state == Running {
		c.state = Pausing
		c.stateCond.Broadcast()
	}
	c.waitUntilNotState(Pausing)
	c.stateMutex.Unlock()

	c.sync.SuspendDrawing()
}

// Unpause requests PAUSED or PAUSING -> RUNNING and resumes video
// drawing. Non-blocking: it does not wait for the worker to actually
// resume stepping.
func (c *Context) Unpause() {
	c.stateMutex.Lock()
	c.waitOnInterrupt()

	if c.state == Paused || c.state == Pausing {
		c.state = Running
		c.stateCond.Broadcast()
	}
	c.stateMutex.Unlock()

	c.sync.ResumeDrawing()
}

// TogglePause calls Pause if the worker is currently active, or Unpause
// if it is paused or pausing.
func (c *Context) TogglePause() {
	c.stateMutex.Lock()
	paused := c.state == Paused || c.state == Pausing
	c.stateMutex.Unlock()

	if paused {
		c.Unpause()
	} else {
		c.Pause()
	}
}

// PauseFromThread is the worker's own self-pause hook (spec.md §4.2):
// unlike Pause, it does not wait for the transition to complete, since
// the caller IS the worker and will park itself the next time it
// reaches the outer loop's state check.
func (c *Context) PauseFromThread() {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	c.waitOnInterrupt()

	if c.state == Running {
		c.state = Pausing
		c.stateCond.Broadcast()
	}
}

// Reset requests a transition to RESETING from any active state. The
// worker reinitializes the engine and returns to RUNNING on its own;
// Reset does not block for that to happen.
func (c *Context) Reset() {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	c.waitOnInterrupt()

	if c.state.active() {
		c.state = Reseting
		c.stateCond.Broadcast()
	}
}

// Interrupt is reentrant: a nested call (interruptDepth already > 0)
// returns immediately, since the outer call has already parked the
// worker in INTERRUPTED. The outermost call saves the current state,
// drives the worker to INTERRUPTED, and blocks until it gets there.
func (c *Context) Interrupt() {
	c.stateMutex.Lock()
	c.interruptDepth++
	if c.interruptDepth > 1 {
		c.stateMutex.Unlock()
		return
	}
	c.waitOnInterrupt()

	if c.state.active() && c.state != Interrupting && c.state != Interrupted {
		c.savedState = c.state
		c.state = Interrupting
		c.stateCond.Broadcast()
	}
	c.waitUntilNotState(Interrupting)
	c.stateMutex.Unlock()
}

// Continue unwinds one level of a (possibly nested) Interrupt. When
// depth reaches 0 the worker is restored to the state it was in
// immediately before the outermost Interrupt.
func (c *Context) Continue() {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()

	if c.interruptDepth == 0 {
		return // protocol misuse (spec.md §7.3): never drive depth negative
	}

	c.interruptDepth--
	if c.interruptDepth == 0 && c.state == Interrupted {
		c.state = c.savedState
		c.stateCond.Broadcast()
	}
}

// End initiates exit from any state, including while the worker is
// parked in INTERRUPTED, PAUSED, or inside the Sync Channel. It is
// always safe to call from any goroutine at any time (spec.md §5): it
// wakes every condvar the worker could be waiting on and clears the
// engine's halted flag so a parked step can actually complete.
func (c *Context) End() {
	c.stateMutex.Lock()
	if c.state.active() {
		c.state = Exiting
	}
	c.interruptDepth = 0
	c.stateCond.Broadcast()
	eng := c.eng
	c.stateMutex.Unlock()

	c.sync.End()
	if eng != nil {
		eng.SetHalted(false)
		eng.Interrupt()
	}
}

// Join blocks until the worker goroutine has returned, then closes every
// artifact handle the Context owns. Safe to call on a Context whose
// Start failed or was never called (a no-op in that case).
func (c *Context) Join() {
	c.stateMutex.Lock()
	startCalled := c.spawned || c.state != Initialized
	c.stateMutex.Unlock()
	if startCalled {
		<-c.done
	}

	if c.rom != nil {
		c.rom.Close()
	}
	if c.bios != nil {
		c.bios.Close()
	}
	if c.patch != nil {
		c.patch.Close()
	}
	if c.save != nil {
		c.save.Flush()
	}
}

// HasStarted reports whether the worker goroutine has ever been
// spawned. A failed no-ROM Start never spawns a worker even though it
// leaves state at Shutdown, so this tracks spawning directly rather
// than deriving it from state.
func (c *Context) HasStarted() bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.spawned
}

// HasExited reports whether the worker has reached SHUTDOWN.
func (c *Context) HasExited() bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.state == Shutdown
}

// HasCrashed reports whether the engine reported an unrecoverable
// failure.
func (c *Context) HasCrashed() bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.state == Crashed
}

// IsActive reports whether the worker is in any state before EXITING.
func (c *Context) IsActive() bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.state.active()
}

// IsPaused reports whether the worker is currently parked in PAUSED.
func (c *Context) IsPaused() bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.state == Paused
}

// State returns a snapshot of the current state, for diagnostics and the
// debugviz package; not part of spec.md's Controller surface, which
// deliberately only exposes the boolean queries above.
func (c *Context) State() State {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.state
}
