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

// Package diagnostics is an optional, purely observational HTTP dashboard
// of live goroutine and memory statistics, for watching the three
// independent OS threads spec.md §1 describes (controller, worker, media
// consumer) actually behave like three independent threads during
// development. It has no read or write access to a *supervisor.Context;
// it only ever looks at the Go runtime.
package diagnostics

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/arcanefold/gba-supervisor/logger"
)

// Start launches the statsview dashboard on addr (e.g. ":18066") in its
// own goroutine and returns immediately; the dashboard runs for the
// lifetime of the process. Safe to call at most once per process, since
// statsview's own viewer registers routes on the default ServeMux.
func Start(addr string) {
	mgr := statsview.New(viewer.WithAddr(addr))
	go func() {
		if err := mgr.Start(); err != nil {
			logger.Logf(logger.Allow, "diagnostics", "dashboard stopped: %v", err)
		}
	}()
	logger.Logf(logger.Allow, "diagnostics", "dashboard listening on %s", addr)
}
