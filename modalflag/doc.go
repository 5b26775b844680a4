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

// Package modalflag wraps the flag package of the standard library so that a
// program can be divided into modes, each with its own set of flags.
//
// Arguments are given once with NewArgs(). Each mode then declares its flags
// and sub-modes and calls Parse(). The first argument that names a sub-mode
// selects it and the arguments that follow are left for the next call to
// NewMode() and Parse(). If no sub-mode is named the first sub-mode is the
// default.
//
//	md := &modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "INFO")
//
//	p, err := md.Parse()
//	if p != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		device := md.AddString("device", "memfb", "output device")
//		...
//	}
//
// The -help flag is handled by Parse(). The help message lists the flags and
// sub-modes of the current mode and is written to the Output field.
package modalflag
