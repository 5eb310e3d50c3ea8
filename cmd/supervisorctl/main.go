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

// supervisorctl is an interactive terminal front-end for a
// supervisor.Context: a minimal Controller, issuing pause/unpause/
// interrupt/continue/reset/end verbs from single keypresses. Grounded on
// debugger/terminal/colorterm/easyterm/easyterm.go's raw-mode terminal
// handling, trimmed to the one cbreak mode this tool needs.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/config"
	"github.com/arcanefold/gba-supervisor/diagnostics"
	"github.com/arcanefold/gba-supervisor/engine/refengine"
	"github.com/arcanefold/gba-supervisor/supervisor"
)

func main() {
	rom := flag.String("rom", "", "path to a ROM file")
	diag := flag.Bool("diagnostics", false, "start the statsview dashboard on :18066")
	flag.Parse()

	if *rom == "" {
		fmt.Fprintln(os.Stderr, "supervisorctl: -rom is required")
		os.Exit(1)
	}

	boot := config.Default()
	boot.Diagnostics = *diag
	if boot.Diagnostics {
		diagnostics.Start(":18066")
	}

	ctx := supervisor.NewContext(refengine.New(), boot,
		supervisor.WithROM(artifacts.NewROMFromFile(*rom)),
	)

	if !ctx.Start() {
		fmt.Fprintln(os.Stderr, "supervisorctl: failed to start")
		os.Exit(1)
	}
	fmt.Println("supervisorctl: running. p=pause u=unpause i=interrupt c=continue r=reset q=quit")

	term, err := newTermctl(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "supervisorctl: %v\n", err)
		ctx.End()
		ctx.Join()
		os.Exit(1)
	}
	defer term.restore()

	for {
		v, err := readVerb(os.Stdin)
		if err != nil {
			break
		}

		switch v {
		case 'p':
			ctx.Pause()
		case 'u':
			ctx.Unpause()
		case 'i':
			ctx.Interrupt()
		case 'c':
			ctx.Continue()
		case 'r':
			ctx.Reset()
		case 'q':
			ctx.End()
			ctx.Join()
			return
		default:
			continue
		}

		fmt.Printf("supervisorctl: state=%s\n", ctx.State())
	}

	ctx.End()
	ctx.Join()
}
