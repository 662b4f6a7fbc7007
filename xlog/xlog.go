// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package xlog provides a Logger interface and supporting functions to control
debug output of the lzw codec and its commands.

The standard library's log package doesn't support enabling or disabling
output and calling a method on a nil *log.Logger panics. The functions of this
package accept a nil Logger and do nothing in that case, so a codec can carry
an optional logger without formatting messages nobody reads.

The Logger interface is satisfied by *log.Logger.
*/
package xlog

import "fmt"

// Logger is the interface required for logging. The log.Logger type
// supports it.
type Logger interface {
	Output(calldepth int, s string) error
}

// Level controls which of the leveled functions produce output.
type Level int

// Supported levels. Print functions are not affected by the level.
const (
	Silent Level = iota
	Warning
	Debugging
)

// CurrentLevel is the level used by the Warn and Debug functions. The default
// is Warning.
var CurrentLevel = Warning

// Print outputs the arguments using the logger. If the logger is nil nothing
// will be printed.
func Print(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Printf prints the arguments using the format string. If the logger argument
// is nil nothing will be printed.
func Printf(l Logger, format string, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Println prints the arguments and adds a newline. If the logger argument is
// nil nothing will be printed.
func Println(l Logger, v ...interface{}) {
	if l != nil {
		l.Output(2, fmt.Sprintln(v...))
	}
}

// Warn prints the arguments if the current level includes warnings.
func Warn(l Logger, v ...interface{}) {
	if l != nil && CurrentLevel >= Warning {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Warnf formats the arguments if the current level includes warnings.
func Warnf(l Logger, format string, v ...interface{}) {
	if l != nil && CurrentLevel >= Warning {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}

// Debug prints the arguments only at the Debugging level.
func Debug(l Logger, v ...interface{}) {
	if l != nil && CurrentLevel >= Debugging {
		l.Output(2, fmt.Sprint(v...))
	}
}

// Debugf formats the arguments only at the Debugging level.
func Debugf(l Logger, format string, v ...interface{}) {
	if l != nil && CurrentLevel >= Debugging {
		l.Output(2, fmt.Sprintf(format, v...))
	}
}
