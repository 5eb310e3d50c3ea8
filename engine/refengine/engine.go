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

package refengine

import (
	"sync/atomic"

	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/engine"
	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/logger"
	"github.com/arcanefold/gba-supervisor/syncchannel"
)

// ScreenWidth and ScreenHeight match the GBA's native frame buffer
// dimensions. Pixels are emitted as packed RGBA, four bytes per pixel.
const (
	ScreenWidth  = 240
	ScreenHeight = 160
)

// SampleRate and samplesPerFrame pick a round number of audio samples
// produced alongside each video frame, close enough to 60fps/32768Hz to
// be a plausible stand-in without claiming to be an exact GBA timing
// model.
const (
	SampleRate      = 32768
	samplesPerFrame = SampleRate / 60
)

// Engine is the synthetic reference implementation of engine.Engine. Its
// zero value is not usable; construct with New.
type Engine struct {
	created bool
	running bool
	halted  bool
	skipBIOS bool

	interrupted int32 // set via atomic.StoreInt32 by Interrupt

	frame   int64 // monotonically increasing frame counter, the entire "CPU state"
	pixels  []byte
	samples []byte

	table engine.ComponentTable
	sio   engine.SIODrivers
	keys  engine.KeySource

	rom   *artifacts.ROM
	bios  *artifacts.BIOS
	patch *artifacts.Patch
	save  *artifacts.Save

	overrides map[string]engine.OverrideEntry
}

// New returns an uncreated Engine, matching the teacher's convention of
// separating construction from Create's resource allocation.
func New() *Engine {
	return &Engine{overrides: make(map[string]engine.OverrideEntry)}
}

// Create allocates the engine's frame and sample buffers.
func (e *Engine) Create() error {
	if e.created {
		return errors.Errorf(errors.EngineError, "already created")
	}
	e.pixels = make([]byte, ScreenWidth*ScreenHeight*4)
	e.samples = make([]byte, samplesPerFrame*2) // 16-bit mono
	e.created = true
	logger.Log(logger.Allow, "refengine", "created")
	return nil
}

// Init applies cfg. The synthetic engine only honours SkipBIOSOnRun; the
// remaining fields (frame-skip, fps target, idle-optimize, log level) are
// the worker loop's and supervisor's concern, not the engine's.
func (e *Engine) Init(cfg engine.BootConfig) error {
	if !e.created {
		return errors.Errorf(errors.EngineError, "Init called before Create")
	}
	e.skipBIOS = cfg.SkipBIOSOnRun
	e.running = true
	return nil
}

// Reset rewinds the synthetic frame counter to zero without discarding
// attached artifacts or components.
func (e *Engine) Reset() error {
	if !e.created {
		return errors.Errorf(errors.EngineError, "Reset called before Create")
	}
	e.frame = 0
	e.halted = false
	atomic.StoreInt32(&e.interrupted, 0)
	logger.Log(logger.Allow, "refengine", "reset")
	return nil
}

// Deinit detaches artifacts without freeing the frame/sample buffers,
// mirroring Init/Deinit being a cheap, repeatable pair distinct from the
// one-shot Create/Destroy.
func (e *Engine) Deinit() error {
	e.running = false
	e.rom = nil
	e.bios = nil
	e.patch = nil
	e.save = nil
	return nil
}

// Destroy releases the engine's buffers. The Engine is not usable again
// without a new Create.
func (e *Engine) Destroy() error {
	e.pixels = nil
	e.samples = nil
	e.created = false
	logger.Log(logger.Allow, "refengine", "destroyed")
	return nil
}

// SetComponentTable attaches the debugger/cheats pair consulted during
// RunOneStep.
func (e *Engine) SetComponentTable(table engine.ComponentTable) {
	e.table = table
}

// Interrupt requests that a RunOneStep in progress (or the next one
// called) return immediately at its next boundary. Safe to call from any
// goroutine; RunOneStep itself only ever runs on the worker goroutine.
func (e *Engine) Interrupt() {
	atomic.StoreInt32(&e.interrupted, 1)
}

// SetHalted toggles the synthetic CPU's halted flag. A halted engine's
// RunOneStep still produces frames (the GBA's video hardware free-runs
// independently of CPU halt), matching how the real hardware behaves.
func (e *Engine) SetHalted(halted bool) {
	e.halted = halted
}

// GetPixels returns the current frame buffer and its row stride in
// bytes.
func (e *Engine) GetPixels() (stride int, buffer []byte) {
	return ScreenWidth * 4, e.pixels
}

// AttachDebugger implements engine.Engine.
func (e *Engine) AttachDebugger(d engine.Debugger) {
	e.table.Debugger = d
}

// AttachCheats implements engine.Engine.
func (e *Engine) AttachCheats(c engine.CheatDevice) {
	e.table.Cheats = c
}

// SetSIODrivers implements engine.Engine.
func (e *Engine) SetSIODrivers(d engine.SIODrivers) {
	e.sio = d
}

// SetKeySource implements engine.Engine.
func (e *Engine) SetKeySource(k engine.KeySource) {
	e.keys = k
}

// SkipBIOS implements engine.Engine.
func (e *Engine) SkipBIOS(skip bool) {
	e.skipBIOS = skip
}

// LoadROM attaches rom and its save data. The synthetic engine does
// nothing with the ROM's bytes beyond opening them (to exercise the real
// artifacts.ROM.Open path the same way a real engine would); the ramp
// pattern it generates doesn't depend on cartridge contents.
func (e *Engine) LoadROM(rom artifacts.ROM, save *artifacts.Save, name string) error {
	if err := rom.Open(); err != nil {
		return errors.Errorf(errors.EngineError, err)
	}
	e.rom = &rom
	e.save = save
	logger.Logf(logger.Allow, "refengine", "loaded rom %s", name)
	return nil
}

// LoadBIOS attaches an optional BIOS image.
func (e *Engine) LoadBIOS(bios artifacts.BIOS) error {
	if err := bios.Open(); err != nil {
		return errors.Errorf(errors.EngineError, err)
	}
	e.bios = &bios
	return nil
}

// ApplyPatch attaches an optional ROM patch. The synthetic engine records
// the attachment but does not apply patch bytes to anything.
func (e *Engine) ApplyPatch(patch artifacts.Patch) error {
	if err := patch.Open(); err != nil {
		return errors.Errorf(errors.EngineError, err)
	}
	e.patch = &patch
	return nil
}

// OverrideFind implements engine.Engine.
func (e *Engine) OverrideFind(name string) (engine.OverrideEntry, bool) {
	entry, ok := e.overrides[name]
	return entry, ok
}

// OverrideApply implements engine.Engine.
func (e *Engine) OverrideApply(entry engine.OverrideEntry) {
	e.overrides[entry.Name] = entry
}

// RunOneStep renders one synthetic frame and one synthetic audio buffer,
// posting both through sync at the points a real engine's step loop
// would. It checks the interrupt flag before doing any work, so a call
// immediately following Interrupt returns with FrameCompleted false
// rather than racing to finish a frame it was told to abandon.
func (e *Engine) RunOneStep(sync *syncchannel.Channel) (engine.StepResult, error) {
	if atomic.SwapInt32(&e.interrupted, 0) != 0 {
		return engine.StepResult{}, nil
	}

	if e.table.Cheats != nil {
		if err := e.table.Cheats.Apply(e); err != nil {
			return engine.StepResult{Crashed: true, Err: err}, err
		}
	}

	if e.table.Debugger != nil {
		shutdown, err := e.table.Debugger.Step(e)
		if err != nil {
			return engine.StepResult{Crashed: true, Err: err}, err
		}
		if shutdown {
			return engine.StepResult{}, nil
		}
	}

	e.frame++

	e.renderRampFrame()
	sync.PostFrame()

	e.renderTone()
	sync.BeginProduce()
	sync.ProduceAudio(true)

	return engine.StepResult{FrameCompleted: true}, nil
}
