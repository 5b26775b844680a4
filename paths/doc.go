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

// Package paths locates the files the program keeps between runs.
//
// If a directory named .pixbridge exists in the current directory then that
// is the base of every path. Otherwise the base is the pixbridge directory in
// the user's config directory, as reported by os.UserConfigDir(). On a Linux
// system the preferences file would normally be:
//
//	/home/user/.config/pixbridge/preferences
//
// Directories are not created by ResourcePath(). Use Prepare() before
// writing a file.
package paths
