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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and stop the test
// immediately. Both return whether the test passed so that a caller can skip
// follow-up checks that would only produce noise.
//
// ExpectSuccess() and ExpectFailure() accept bool and error values. The nil
// value is considered a success, matching how error values are normally
// interpreted. Any other type is a mistake in the test and causes a fatal
// failure.
//
// Tags can be appended to most functions. They are printed before the failure
// message and are useful for identifying the failing iteration of a
// table-driven test:
//
//	for i, c := range cases {
//		test.ExpectEquality(t, c.got, c.want, i)
//	}
package test
