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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are the only error type
// returned by the bridge and its devices.
//
// Curated errors are created with the Errorf() function. It takes a pattern,
// placeholder values and returns an error. Formatting is deferred until the
// Error() function is called.
//
// The pattern is what identifies a curated error. Packages export the patterns
// they use as constants so that callers can test for them with Is() and Has():
//
//	const DeviceNotFound = "bridge: no device named %q"
//
//	err := curated.Errorf(DeviceNotFound, "fb0")
//	if curated.Is(err, DeviceNotFound) {
//		...
//	}
//
// Is() only checks the outermost error. Has() searches the values of the
// error, looking for a curated error with the pattern anywhere in the chain:
//
//	e := curated.Errorf("fbdev: %v", err)
//	f := curated.Errorf("bridge: %v", e)
//
//	curated.Has(f, DeviceNotFound) // true
//	curated.Is(f, DeviceNotFound)  // false
//
// IsAny() answers whether an error was created by Errorf() at all. Errors that
// are not curated are unexpected and should generally be treated as bugs.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. A chain is composed of parts separated by the
// sub-string ": ". This means a function need not worry whether its caller
// will wrap the error with the same prefix:
//
//	bridge: bridge: no device named "fb0"
//
// is reported as:
//
//	bridge: no device named "fb0"
//
// Curated errors also implement Unwrap() so that the standard library's
// errors.Is() and errors.As() functions see through them to any wrapped
// non-curated error (a *os.PathError from opening a device for example).
package curated
