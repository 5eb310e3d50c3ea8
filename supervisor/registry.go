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

import (
	"sync"

	"github.com/arcanefold/gba-supervisor/assert"
)

// registry is the process-wide, thread-local-in-spirit slot holding "the
// supervisor context for this worker goroutine" (spec.md §4.5). Go has
// no native thread-local storage, and no stable notion of "this
// goroutine" either — assert.GetGoRoutineID gives us the latter by
// parsing runtime.Stack, which is exactly what that helper exists for
// (debugging/testing use only, per its own doc comment; this package is
// the one production use of it, standing in for a TLS key). Keyed by
// goroutine id rather than a single global so that, as spec.md §9
// insists, a process hosting more than one supervisor does not have
// contexts overwrite one another.
var registry = struct {
	mu sync.Mutex
	m  map[uint64]*Context
}{m: make(map[uint64]*Context)}

// bindCurrent publishes c as the context for the calling goroutine. Only
// the worker goroutine should call this, during bootstrap.
func bindCurrent(c *Context) {
	id := assert.GetGoRoutineID()
	registry.mu.Lock()
	registry.m[id] = c
	registry.mu.Unlock()
}

// unbindCurrent clears whatever context is bound to the calling
// goroutine. Called by the worker as it returns, so the registry never
// retains a context past the worker's natural termination (spec.md
// §4.5).
func unbindCurrent() {
	id := assert.GetGoRoutineID()
	registry.mu.Lock()
	delete(registry.m, id)
	registry.mu.Unlock()
}

// Current returns the supervisor context bound to the calling goroutine,
// or nil if none is bound — which is the expected result for any
// goroutine other than a worker, including the controller/UI goroutine
// and consumer goroutines (spec.md §4.5: "non-worker threads see a null
// context").
func Current() *Context {
	id := assert.GetGoRoutineID()
	registry.mu.Lock()
	defer registry.mu.Unlock()
	return registry.m[id]
}
