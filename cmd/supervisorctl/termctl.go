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

package main

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/term/termios"
)

// termctl puts stdin into cbreak mode for the duration of a session, so a
// single keypress reaches readVerb without waiting on a newline. Modeled
// on debugger/terminal/colorterm/easyterm/easyterm.go's canonical/cbreak
// attribute pair, trimmed to the one mode this tool needs.
type termctl struct {
	input   *os.File
	canAttr syscall.Termios
}

func newTermctl(input *os.File) (*termctl, error) {
	t := &termctl{input: input}
	if err := termios.Tcgetattr(input.Fd(), &t.canAttr); err != nil {
		return nil, fmt.Errorf("supervisorctl: reading terminal attributes: %w", err)
	}

	cbreakAttr := t.canAttr
	termios.Cfmakecbreak(&cbreakAttr)
	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &cbreakAttr); err != nil {
		return nil, fmt.Errorf("supervisorctl: entering cbreak mode: %w", err)
	}

	return t, nil
}

// restore puts the terminal back into the mode it was in before newTermctl.
func (t *termctl) restore() {
	termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
}

// readVerb reads a single byte from input.
func readVerb(input *os.File) (byte, error) {
	buf := make([]byte, 1)
	if _, err := input.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}
