// This file is part of Pixbridge.
//
// Pixbridge is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Pixbridge is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Pixbridge.  If not, see <https://www.gnu.org/licenses/>.

package statsview_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pixbridge/statsview"
	"github.com/jetsetilly/pixbridge/test"
)

func TestUnavailable(t *testing.T) {
	if statsview.Available() {
		t.Skip("built with statsview")
	}

	tw := &test.Writer{}
	statsview.Launch(tw)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "not available"))
}
