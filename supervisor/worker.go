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

import "github.com/arcanefold/gba-supervisor/logger"

// run is the worker goroutine's entire lifetime, spawned by Start. It
// implements the four phases of spec.md §4.3.
func (c *Context) run() {
	defer close(c.done)
	defer unbindCurrent()
	defer c.teardown()

	bindCurrent(c)

	if err := c.bootEngine(); err != nil {
		c.stateMutex.Lock()
		c.state = Crashed
		c.stateCond.Broadcast()
		c.stateMutex.Unlock()
		if c.crashCallback != nil {
			c.crashCallback(c, err)
		}
		return
	}

	c.stateMutex.Lock()
	c.state = Running
	c.stateCond.Broadcast()
	c.stateMutex.Unlock()

	if c.startCallback != nil {
		c.startCallback(c)
	}

	for {
		if c.debugger != nil {
			if c.stepDebugger() {
				break
			}
		} else {
			c.stepEngine()
		}

		leaveOuter := c.resolveTransient()
		if c.takeResetPending() {
			c.reinitEngine()
		}
		if leaveOuter {
			break
		}
	}

	c.stateMutex.Lock()
	if c.state != Crashed {
		c.state = Shutdown
	}
	c.stateCond.Broadcast()
	c.stateMutex.Unlock()
}

// stepEngine runs RunOneStep in a tight loop while the worker is RUNNING,
// posting frames and ticking the rewind ring as they complete.
func (c *Context) stepEngine() {
	for c.State() == Running {
		result, err := c.eng.RunOneStep(c.sync)
		if err != nil || result.Crashed {
			c.stateMutex.Lock()
			c.state = Crashed
			c.stateCond.Broadcast()
			c.stateMutex.Unlock()
			if c.crashCallback != nil {
				c.crashCallback(c, err)
			}
			return
		}
		if result.FrameCompleted {
			if c.rewind != nil {
				if snap, err := c.eng.Serialize(); err == nil {
					c.rewind.Tick(snap)
				}
			}
			if c.frameCallback != nil {
				c.frameCallback(c)
			}
		}
	}
}

// stepDebugger delegates one step to the attached debugger, reporting
// whether it asked the worker to leave the outer loop entirely.
func (c *Context) stepDebugger() bool {
	shutdown, err := c.debugger.Step(c.eng)
	if err != nil {
		c.stateMutex.Lock()
		c.state = Crashed
		c.stateCond.Broadcast()
		c.stateMutex.Unlock()
		if c.crashCallback != nil {
			c.crashCallback(c, err)
		}
		return true
	}
	return shutdown
}

// resolveTransient handles every transient state the worker's inner
// stepping loop exited into, looping until it lands back on Running
// (reporting false) or reaches Exiting (reporting true). See spec.md
// §4.3 phase 3.
func (c *Context) resolveTransient() (leaveOuter bool) {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()

	for c.state.isTransient() {
		switch c.state {
		case Pausing:
			c.state = Paused
			c.stateCond.Broadcast()
		case Interrupting:
			c.state = Interrupted
			c.stateCond.Broadcast()
		case Reseting:
			c.resetPending = true
			c.state = Running
			c.stateCond.Broadcast()
			return false
		}

		for c.state == Paused || c.state == Interrupted {
			c.stateCond.Wait()
		}
	}

	return c.state >= Exiting
}

func (c *Context) takeResetPending() bool {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	pending := c.resetPending
	c.resetPending = false
	return pending
}

// teardown is phase 4 of the worker loop: invoke cleanCallback, deinit
// and destroy the engine, and wake every sync condvar so any lingering
// consumer unblocks rather than being left parked forever. The attached
// cheat device is not torn down here.
func (c *Context) teardown() {
	if c.cleanCallback != nil {
		c.cleanCallback(c)
	}

	if c.eng != nil {
		if err := c.eng.Deinit(); err != nil {
			logger.Logf(logger.Allow, "supervisor", "deinit: %v", err)
		}
		if err := c.eng.Destroy(); err != nil {
			logger.Logf(logger.Allow, "supervisor", "destroy: %v", err)
		}
		c.eng = nil
	}

	c.sync.End()
}
