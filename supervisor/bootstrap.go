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
	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/engine"
	"github.com/arcanefold/gba-supervisor/errors"
)

// Start validates that a ROM is available (attached directly, or found
// by scanning an attached game directory), opens its save file under
// the state directory, blocks the signals spec.md §4.6 names, and
// spawns the worker goroutine. It blocks until the worker reaches
// RUNNING, or returns false immediately if no ROM could be identified —
// in which case state is left at SHUTDOWN and Join is a safe no-op.
func (c *Context) Start() bool {
	if c.rom == nil && c.gameDir != nil {
		romPath, patchPath, err := artifacts.ScanGameDirectory(c.gameDir.Root())
		if err != nil {
			c.stateMutex.Lock()
			c.state = Shutdown
			c.stateMutex.Unlock()
			close(c.done)
			return false
		}
		rom := artifacts.NewROMFromFile(romPath)
		c.rom = &rom
		if patchPath != "" {
			patch := artifacts.NewPatchFromFile(patchPath)
			c.patch = &patch
		}
	}

	if c.rom == nil {
		c.stateMutex.Lock()
		c.state = Shutdown
		c.stateMutex.Unlock()
		close(c.done)
		return false
	}

	if c.save == nil && c.stateDir != nil {
		savePath := c.stateDir.Path(c.rom.Name + ".sav")
		save, err := artifacts.NewSave(savePath, 64*1024)
		if err == nil {
			c.save = save
		}
	}

	c.signals, c.signalRelease = blockWorkerSignals()

	c.stateMutex.Lock()
	c.spawned = true
	c.stateMutex.Unlock()

	go c.run()

	c.stateMutex.Lock()
	for c.state == Initialized {
		c.stateCond.Wait()
	}
	started := c.state != Shutdown && c.state != Crashed
	c.stateMutex.Unlock()

	return started
}

// bootEngine runs the engine half of worker phase 1: create, init, wire
// artifacts and components.
func (c *Context) bootEngine() error {
	if err := c.eng.Create(); err != nil {
		return errors.Errorf(errors.BootstrapError, err)
	}

	if err := c.eng.Init(engine.BootConfig{
		FrameSkip:     c.boot.FrameSkip,
		FPSTarget:     c.boot.FPSTarget,
		IdleOptimize:  c.boot.IdleOptimize,
		LogLevel:      c.boot.LogLevel,
		SkipBIOSOnRun: c.boot.SkipBIOS,
	}); err != nil {
		return errors.Errorf(errors.BootstrapError, err)
	}

	c.eng.SetComponentTable(engine.ComponentTable{Debugger: c.debugger, Cheats: c.cheats})
	c.eng.SetSIODrivers(c.sio)
	c.eng.SetKeySource(c.keys)

	if err := c.eng.LoadROM(*c.rom, c.save, c.rom.Name); err != nil {
		return errors.Errorf(errors.BootstrapError, err)
	}

	// an unreadable BIOS is recovered locally (spec.md §7): the engine is
	// told to skip it rather than failing boot outright. With no BIOS
	// attached, the configured SkipBIOS setting is passed through.
	if c.bios != nil {
		if err := c.eng.LoadBIOS(*c.bios); err != nil {
			c.eng.SkipBIOS(true)
		}
	} else {
		c.eng.SkipBIOS(c.boot.SkipBIOS)
	}

	// a missing or corrupt patch is likewise recovered locally: continue
	// without it.
	if c.patch != nil {
		_ = c.eng.ApplyPatch(*c.patch)
	}

	for _, o := range c.boot.Overrides {
		c.eng.OverrideApply(engine.OverrideEntry{Name: o.Name, Value: o.Value})
	}

	return nil
}

// reinitEngine re-applies the engine half of a Reset: deinit, re-init,
// re-skip BIOS. The component table stays attached; LoadROM, LoadBIOS and
// ApplyPatch are not called again, so any artifact the engine's Deinit
// detaches stays detached.
func (c *Context) reinitEngine() {
	_ = c.eng.Deinit()
	_ = c.eng.Init(engine.BootConfig{
		FrameSkip:     c.boot.FrameSkip,
		FPSTarget:     c.boot.FPSTarget,
		IdleOptimize:  c.boot.IdleOptimize,
		LogLevel:      c.boot.LogLevel,
		SkipBIOSOnRun: c.boot.SkipBIOS,
	})
	if c.bios == nil {
		c.eng.SkipBIOS(c.boot.SkipBIOS)
	}
}
