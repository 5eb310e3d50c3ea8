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

// Package supervisor hosts the long-running worker goroutine that drives
// an engine.Engine forward, coordinates it with a video presenter and an
// audio consumer through a syncchannel.Channel, and exposes a
// thread-safe Controller API for pause/interrupt/reset/end verbs issued
// by another goroutine.
package supervisor

import (
	"os"
	"sync"

	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/config"
	"github.com/arcanefold/gba-supervisor/engine"
	"github.com/arcanefold/gba-supervisor/rewind"
	"github.com/arcanefold/gba-supervisor/syncchannel"
)

// Context is one emulator session: one engine instance, one worker
// goroutine, one Sync Channel. Context has no exported fields. Its
// artifacts, components and callbacks are set at construction (Start may
// still fill in the ROM, patch and save it finds by scanning the game
// directory, and the worker's teardown clears eng); the state machine
// lives behind stateMutex and the media rendezvous inside sync.
type Context struct {
	boot config.Boot

	stateMutex sync.Mutex
	stateCond  *sync.Cond

	state          State
	savedState     State
	interruptDepth int

	// spawned is set just before the worker goroutine is launched, and
	// never cleared again. HasStarted reports this rather than deriving
	// "started" from state, since a failed no-ROM Start also leaves
	// state at Shutdown without ever spawning a worker.
	spawned bool

	// resetPending is set by the worker when it resolves a Reseting
	// transition back to Running, consulted once the worker has released
	// stateMutex (spec.md §4.3 phase 3's "if reset was pending").
	resetPending bool

	sync *syncchannel.Channel

	// eng is the engine passed to NewContext. It is set at construction,
	// so it is already non-nil while the state is Initialized, and it is
	// cleared by the worker's teardown.
	eng engine.Engine

	rom      *artifacts.ROM
	save     *artifacts.Save
	bios     *artifacts.BIOS
	patch    *artifacts.Patch
	gameDir  *artifacts.GameDirectory
	stateDir *artifacts.StateDirectory

	debugger engine.Debugger
	cheats   engine.CheatDevice
	sio      engine.SIODrivers
	keys     engine.KeySource

	rewind *rewind.Ring

	signals       chan os.Signal
	signalRelease func()

	startCallback func(*Context)
	cleanCallback func(*Context)
	frameCallback func(*Context)
	crashCallback func(*Context, error)

	done chan struct{} // closed when the worker goroutine returns
}

// Option configures a Context at construction. Each Option mutates
// unexported fields only Context itself and the supervisor package's own
// Option functions can reach, so a caller can only attach artifacts and
// callbacks through the documented surface, never reach into state
// machine internals.
type Option func(*Context)

// WithROM attaches a ROM handle, transferring ownership to the Context
// (closed on Join).
func WithROM(rom artifacts.ROM) Option {
	return func(c *Context) { c.rom = &rom }
}

// WithSave attaches a save handle.
func WithSave(save *artifacts.Save) Option {
	return func(c *Context) { c.save = save }
}

// WithBIOS attaches an optional BIOS handle.
func WithBIOS(bios artifacts.BIOS) Option {
	return func(c *Context) { c.bios = &bios }
}

// WithPatch attaches an optional patch handle.
func WithPatch(patch artifacts.Patch) Option {
	return func(c *Context) { c.patch = &patch }
}

// WithGameDirectory sets the directory Start scans for a ROM/patch pair
// if no ROM has been attached directly.
func WithGameDirectory(dir artifacts.GameDirectory) Option {
	return func(c *Context) { c.gameDir = &dir }
}

// WithStateDirectory sets the directory save files and screenshots are
// written under.
func WithStateDirectory(dir artifacts.StateDirectory) Option {
	return func(c *Context) { c.stateDir = &dir }
}

// WithDebugger attaches a debugger; when set, the worker loop delegates
// stepping to it (spec.md §4.3 phase 3).
func WithDebugger(d engine.Debugger) Option {
	return func(c *Context) { c.debugger = d }
}

// WithCheats attaches a cheat device, applied once per step.
func WithCheats(cheats engine.CheatDevice) Option {
	return func(c *Context) { c.cheats = cheats }
}

// WithSIODrivers attaches serial I/O drivers, opaque to the core.
func WithSIODrivers(sio engine.SIODrivers) Option {
	return func(c *Context) { c.sio = sio }
}

// WithKeySource attaches an input source, opaque to the core.
func WithKeySource(keys engine.KeySource) Option {
	return func(c *Context) { c.keys = keys }
}

// WithRewind enables a rewind ring with the given capacity and capture
// interval (in frames).
func WithRewind(capacity, interval int) Option {
	return func(c *Context) { c.rewind = rewind.NewRing(capacity, interval) }
}

// WithStartCallback registers a hook invoked once, from the worker
// goroutine, immediately after the transition to Running.
func WithStartCallback(f func(*Context)) Option {
	return func(c *Context) { c.startCallback = f }
}

// WithCleanCallback registers a hook invoked once, from the worker
// goroutine, during phase 4 of the worker loop before the engine is
// destroyed.
func WithCleanCallback(f func(*Context)) Option {
	return func(c *Context) { c.cleanCallback = f }
}

// WithFrameCallback registers a hook invoked from the worker goroutine
// after every completed frame.
func WithFrameCallback(f func(*Context)) Option {
	return func(c *Context) { c.frameCallback = f }
}

// WithCrashCallback registers a hook invoked from the worker goroutine
// when the engine reports an unrecoverable failure.
func WithCrashCallback(f func(*Context, error)) Option {
	return func(c *Context) { c.crashCallback = f }
}

// NewContext builds an Initialized Context around eng, not yet started.
func NewContext(eng engine.Engine, boot config.Boot, opts ...Option) *Context {
	c := &Context{
		boot:  boot,
		state: Initialized,
		sync:  syncchannel.NewChannel(),
		eng:   eng,
		done:  make(chan struct{}),
	}
	c.stateCond = sync.NewCond(&c.stateMutex)

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Sync returns the Context's media rendezvous, for consumers to attach
// to before or after Start.
func (c *Context) Sync() *syncchannel.Channel {
	return c.sync
}

// Rewind returns the Context's rewind ring, or nil if WithRewind was not
// supplied.
func (c *Context) Rewind() *rewind.Ring {
	return c.rewind
}

// Pixels returns the renderer's current back buffer and its row stride,
// delegating to the attached engine. Only meaningful while the caller
// holds a *syncchannel.VideoFrame guard from c.Sync().WaitFrameStart —
// enforced by convention here and by signature in package screenshot,
// which takes that guard as an argument.
func (c *Context) Pixels() (stride int, buffer []byte) {
	return c.eng.GetPixels()
}

// Samples returns the engine's current audio buffer, delegating to the
// attached engine. Only meaningful while the caller holds the audio lock
// (c.Sync().LockAudio, paired with UnlockAudio or ConsumeAudio).
func (c *Context) Samples() []byte {
	return c.eng.GetSamples()
}

// StateDir returns the directory state (saves, screenshots) is written
// under, and whether one was attached via
// WithStateDirectory.
func (c *Context) StateDir() (artifacts.StateDirectory, bool) {
	if c.stateDir == nil {
		return artifacts.StateDirectory{}, false
	}
	return *c.stateDir, true
}

// Signals returns the channel SIGINT/SIGTRAP are redirected to by Start
// on non-Windows hosts (spec.md §4.6), or nil on Windows or before
// Start has been called. The caller (the controller goroutine) owns
// this channel; the worker goroutine never reads it.
func (c *Context) Signals() <-chan os.Signal {
	return c.signals
}
