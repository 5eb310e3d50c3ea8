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

package errors

// error messages
const (
	// panics
	PanicError = "panic: %v: %v"

	// sentinels
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"

	// bootstrap
	BootstrapError  = "bootstrap error: %v"
	NoROMError      = "bootstrap error: no ROM could be identified"
	MutexSetupError = "bootstrap error: could not initialise synchronisation primitives: %v"

	// artifacts
	ROMError          = "rom error: %v"
	ROMUnreadableErr  = "rom error: cannot open (%v)"
	BIOSUnreadableErr = "bios error: cannot open (%v)"
	PatchUnreadableErr = "patch error: cannot open (%v)"
	SaveUnwritableErr = "save error: cannot open for writing (%v)"
	ArchiveError      = "archive error: %v"
	Archive7zError    = "archive error: 7z archives are not supported (%v)"
	GameDirectoryScan = "game directory error: %v"

	// supervisor
	SupervisorError    = "supervisor error: %v"
	InvalidVerbError   = "supervisor error: verb not valid in state %v"
	InterruptMismatch  = "supervisor error: Continue() called without matching Interrupt()"
	AlreadyStarted     = "supervisor error: already started"

	// sync channel
	FrameProtocolError = "sync channel error: WaitFrameStart called without matching WaitFrameEnd"
	AudioProtocolError = "sync channel error: audio lock protocol violated: %v"

	// rewind
	RewindError      = "rewind error: %v"
	RewindEmptyError = "rewind error: ring is empty"
	RewindRangeError = "rewind error: index %d out of range (0-%d)"

	// engine
	EngineError = "engine error: %v"

	// consumers / diagnostics
	ConsumerError    = "consumer error: %v"
	DiagnosticsError = "diagnostics error: %v"

	// screenshot
	ScreenshotError = "screenshot error: %v"
)
