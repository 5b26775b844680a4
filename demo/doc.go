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

// Package demo is a small scene for the reference engine. It exists so that
// the bridge can be seen working on any of the output devices.
//
// The scene is made up of a backdrop, rasterised once with the gg package
// whenever the size of the screen changes, a box that is tweened back and
// forth across the screen and a marker that follows the pointer. The marker
// changes colour while the pointer is pressed.
//
// Only the areas of the screen covered by an item before and after it moves
// are invalidated. The backdrop is only invalidated in its entirety when it is
// rasterised.
package demo
