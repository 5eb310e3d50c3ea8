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

// Package debugviz dumps the shape of a *supervisor.Context to a
// Graphviz .dot file, for inspecting the three-goroutine rendezvous
// (supervisor.Context, its syncchannel.Channel, its rewind.Ring) by eye
// rather than by stepping through a debugger. Grounded on the one
// surviving use of memviz in the retrieval pack,
// debugger/terminal/commandline/parser_test.go's `memviz.Map(f, cmds)`
// call.
package debugviz

import (
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/arcanefold/gba-supervisor/errors"
	"github.com/arcanefold/gba-supervisor/supervisor"
)

// Dump writes a Graphviz .dot rendering of ctx's shape to path.
func Dump(ctx *supervisor.Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Errorf(errors.DiagnosticsError, err)
	}
	defer f.Close()

	memviz.Map(f, ctx)
	return nil
}
