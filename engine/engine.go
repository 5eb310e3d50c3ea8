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

// Package engine defines the small behavioral abstraction the supervisor
// depends on for the actual emulation work: create/init/reset/step/destroy,
// pixel and snapshot access, and artifact attachment. It deliberately says
// nothing about how a step is executed — the real CPU+video+audio
// implementation is out of scope (spec.md §1) — so that the supervisor,
// worker loop and rewind ring can be built and tested against the
// synthetic engine/refengine implementation instead.
package engine

import (
	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/syncchannel"
)

// StepResult reports what happened during one call to RunOneStep, letting
// the worker loop decide whether to keep stepping or handle a supervisor
// message without the engine knowing anything about supervisor states.
type StepResult struct {
	// FrameCompleted is true if this step produced a complete video frame
	// (the worker must call syncchannel.Channel.PostFrame in that case).
	FrameCompleted bool

	// Crashed is true if the engine hit an unrecoverable condition; the
	// worker transitions the supervisor to CRASHED.
	Crashed bool
	Err     error
}

// Snapshot is an opaque serialized engine state, as produced by Serialize
// and consumed by Deserialize. The rewind package treats its bytes as a
// black box, compressing them with the crunched package between captures.
type Snapshot struct {
	Data []byte
}

// ComponentTable attaches pluggable components the engine may consult
// while stepping, without the engine package needing to know their
// concrete types.
type ComponentTable struct {
	Debugger Debugger
	Cheats   CheatDevice
}

// Debugger is attached via AttachDebugger. When non-nil the worker loop
// delegates stepping to it (spec.md §4.3 phase 3) rather than driving the
// engine's inner loop directly.
type Debugger interface {
	// Step runs one debugger-controlled step and reports whether the
	// debugger has asked for the emulation to shut down.
	Step(e Engine) (shutdown bool, err error)
}

// CheatDevice is attached via AttachCheats.
type CheatDevice interface {
	Apply(e Engine) error
}

// SIODrivers is attached via SetSIODrivers; opaque to the engine package.
type SIODrivers interface{}

// KeySource is attached via SetKeySource; opaque to the engine package.
type KeySource interface{}

// OverrideEntry is a single cartridge override (e.g. a forced save type)
// looked up by name via OverrideFind and applied via OverrideApply.
type OverrideEntry struct {
	Name  string
	Value string
}

// BootConfig carries the configuration the supervisor applies when it
// calls Engine.Init, mirroring config.Boot's field list (frame-skip
// default, fps target, idle-optimization hint, log level).
type BootConfig struct {
	FrameSkip     int
	FPSTarget     float64
	IdleOptimize  bool
	LogLevel      int
	SkipBIOSOnRun bool
}

// Engine is the capability set spec.md §6 names as "consumed by the
// core": create/init/reset/deinit/destroy, run_one_step, the
// nextEvent/halted hooks Interrupt/SetHalted render as methods instead of
// raw field pokes, pixel access for the screenshot helper, serialize for
// the rewind ring, and artifact/component attachment.
type Engine interface {
	Create() error
	Init(cfg BootConfig) error
	Reset() error
	Deinit() error
	Destroy() error

	// RunOneStep advances the engine until it either completes a frame,
	// is interrupted via Interrupt, or fails. sync is passed through so
	// the engine can call PostFrame/ProduceAudio at the correct points
	// inside its own step loop (the engine owns frame/audio cadence; the
	// supervisor owns pacing policy).
	RunOneStep(sync *syncchannel.Channel) (StepResult, error)

	SetComponentTable(table ComponentTable)

	// Interrupt forces a RunOneStep already in progress to return at its
	// next boundary, the Go-idiomatic rendering of spec.md §4.3's
	// "nextEvent = 0" capability.
	Interrupt()

	SetHalted(halted bool)

	// GetPixels returns the renderer's current back buffer and its row
	// stride, used by the screenshot helper.
	GetPixels() (stride int, buffer []byte)

	// GetSamples returns the current audio buffer produced by the most
	// recent ProduceAudio call, for a consumer holding the Sync
	// Channel's audio lock (LockAudio/ConsumeAudio) to read.
	GetSamples() []byte

	Serialize() (Snapshot, error)
	Deserialize(Snapshot) error

	LoadROM(rom artifacts.ROM, save *artifacts.Save, name string) error
	LoadBIOS(bios artifacts.BIOS) error
	ApplyPatch(patch artifacts.Patch) error
	SkipBIOS(skip bool)

	AttachDebugger(d Debugger)
	AttachCheats(c CheatDevice)
	SetSIODrivers(d SIODrivers)
	SetKeySource(k KeySource)

	OverrideFind(name string) (OverrideEntry, bool)
	OverrideApply(entry OverrideEntry)
}
