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

package artifacts_test

import (
	"testing"

	"github.com/arcanefold/gba-supervisor/artifacts"
	"github.com/arcanefold/gba-supervisor/test"
)

func TestLooksLike(t *testing.T) {
	test.ExpectSuccess(t, artifacts.LooksLikeROM("game.gba"))
	test.ExpectSuccess(t, artifacts.LooksLikeROM("GAME.GBA"))
	test.ExpectFailure(t, artifacts.LooksLikeROM("game.sav"))

	test.ExpectSuccess(t, artifacts.LooksLikePatch("game.ips"))
	test.ExpectFailure(t, artifacts.LooksLikePatch("game.gba"))

	test.ExpectSuccess(t, artifacts.LooksLikeBIOS("gba_bios.bin"))
}
