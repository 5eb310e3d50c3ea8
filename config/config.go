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

// Package config holds the boot configuration a caller supplies to a new
// supervisor context. It is deliberately a plain, immutable struct: the
// core itself never persists or reloads configuration, that concern
// belongs entirely to the caller.
package config

// Boot is supplied once, at supervisor.NewContext, and never mutated by
// the core afterwards.
type Boot struct {
	// FrameSkip is the initial video skip counter handed to
	// syncchannel.Channel.WaitFrameStart by the reference consumers; the
	// worker itself doesn't consult it directly.
	FrameSkip int

	// FPSTarget is advisory pacing information for external consumers;
	// the core does not throttle RunOneStep against it.
	FPSTarget float64

	// AudioBufferCount sizes any buffering a consumer wants to keep
	// between ConsumeAudio calls; opaque to the core.
	AudioBufferCount int

	// SkipBIOS, when true, is applied at Init and reapplied after every
	// Reset.
	SkipBIOS bool

	// IdleOptimize is a hint passed straight through to the engine's
	// BootConfig.
	IdleOptimize bool

	// LogLevel is passed straight through to the engine's BootConfig.
	LogLevel int

	// Overrides is applied to the engine, one entry per call to
	// engine.Engine.OverrideApply, after LoadROM, LoadBIOS and ApplyPatch.
	Overrides []Override

	// Diagnostics, when true, starts package diagnostics' statsview
	// dashboard alongside the worker. The core itself never reads this
	// field; it is read by whatever bootstraps a Context (e.g.
	// cmd/supervisorctl) to decide whether to call diagnostics.Start.
	Diagnostics bool
}

// Override is a single cartridge override (e.g. a forced save type),
// mirroring engine.OverrideEntry's shape so config doesn't need to
// import the engine package.
type Override struct {
	Name  string
	Value string
}

// Default returns a Boot with conservative defaults: no frame skipping,
// a 60fps target, BIOS not skipped.
func Default() Boot {
	return Boot{
		FrameSkip:        0,
		FPSTarget:        60.0,
		AudioBufferCount: 4,
		SkipBIOS:         false,
		IdleOptimize:     false,
		LogLevel:         0,
	}
}
