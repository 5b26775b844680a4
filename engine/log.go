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

package engine

import (
	"fmt"
)

// LogLevel is the importance of a log message.
type LogLevel int

// List of valid LogLevel values.
const (
	Trace LogLevel = iota
	Info
	Warn
	Error
)

func (l LogLevel) String() string {
	switch l {
	case Trace:
		return "trace"
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// ParseLogLevel returns the LogLevel named by s. Returns false if s does not
// name a level.
func ParseLogLevel(s string) (LogLevel, bool) {
	for l := Trace; l <= Error; l++ {
		if l.String() == s {
			return l, true
		}
	}
	return Trace, false
}

// LogSink receives the engine's log messages.
type LogSink func(level LogLevel, msg string)

// RegisterLogSink registers the function that receives log messages. Messages
// logged before a sink is registered are discarded.
func (e *Engine) RegisterLogSink(sink LogSink) {
	e.crit.Lock()
	defer e.crit.Unlock()
	e.sink = sink
}

// Log a message at the given level.
func (e *Engine) Log(level LogLevel, format string, args ...any) {
	e.crit.Lock()
	sink := e.sink
	e.crit.Unlock()

	if sink == nil {
		return
	}
	sink(level, fmt.Sprintf(format, args...))
}
