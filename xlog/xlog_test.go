// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xlog

import (
	"bytes"
	"log"
	"testing"
)

func TestNilLogger(t *testing.T) {
	var l Logger
	Print(l, "a")
	Printf(l, "%d", 1)
	Println(l, "b")
	Warn(l, "c")
	Debugf(l, "%s", "d")
}

func TestLevels(t *testing.T) {
	defer func(lvl Level) { CurrentLevel = lvl }(CurrentLevel)

	buf := new(bytes.Buffer)
	l := log.New(buf, "", 0)

	CurrentLevel = Warning
	Debug(l, "debug")
	if buf.Len() != 0 {
		t.Fatalf("Debug at level Warning wrote %q", buf.String())
	}
	Warnf(l, "warn %d", 1)
	if got, want := buf.String(), "warn 1\n"; got != want {
		t.Fatalf("Warnf wrote %q; want %q", got, want)
	}

	buf.Reset()
	CurrentLevel = Silent
	Warn(l, "warn")
	if buf.Len() != 0 {
		t.Fatalf("Warn at level Silent wrote %q", buf.String())
	}
	Print(l, "print")
	if got, want := buf.String(), "print\n"; got != want {
		t.Fatalf("Print wrote %q; want %q", got, want)
	}

	buf.Reset()
	CurrentLevel = Debugging
	Debugf(l, "width %d", 10)
	if got, want := buf.String(), "width 10\n"; got != want {
		t.Fatalf("Debugf wrote %q; want %q", got, want)
	}
}
