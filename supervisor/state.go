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

// State is the supervisor's authoritative state. The ordering of the
// constants below is load-bearing: the worker loop and the controller
// verbs compare states ordinally (RUNNING < transient < EXITING <
// SHUTDOWN), not just for equality, so the declaration order here must
// never change without updating every comparison that relies on it.
type State int

const (
	// Initialized is the state of a freshly built Context, before Start
	// has spawned a worker.
	Initialized State = iota

	// Running is the only state in which the worker is actually
	// executing engine steps.
	Running

	// Interrupting, Interrupted, Pausing, Paused and Reseting are the
	// transient states: requested by a controller verb, resolved by the
	// worker the next time it checks state. Every member of this group
	// compares greater than Running and less than Exiting.
	Interrupting
	Interrupted
	Pausing
	Paused
	Reseting

	// Exiting is entered once the worker has decided to leave its outer
	// loop for good.
	Exiting

	// Shutdown is terminal: the worker has returned, Join is safe.
	Shutdown

	// Crashed is terminal, set when bootEngine fails, RunOneStep reports
	// an error or StepResult.Crashed, or a debugger step fails. See
	// DESIGN.md for the resolution of spec.md's open question (b).
	Crashed
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "INITIALIZED"
	case Running:
		return "RUNNING"
	case Interrupting:
		return "INTERRUPTING"
	case Interrupted:
		return "INTERRUPTED"
	case Pausing:
		return "PAUSING"
	case Paused:
		return "PAUSED"
	case Reseting:
		return "RESETING"
	case Exiting:
		return "EXITING"
	case Shutdown:
		return "SHUTDOWN"
	case Crashed:
		return "CRASHED"
	default:
		return "UNKNOWN"
	}
}

// isTransient reports whether s is one of the states a controller verb
// requests and the worker resolves at its next opportunity.
func (s State) isTransient() bool {
	return s >= Interrupting && s <= Reseting
}

// active reports whether the worker could plausibly still be stepping
// the engine (the ordering's "state < EXITING" test in the spec's outer
// loop condition).
func (s State) active() bool {
	return s < Exiting
}
