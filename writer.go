// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"io"

	"github.com/ulikunitz/lzw/xlog"
)

// WriterConfig provides the configuration parameters for the LZW writer.
type WriterConfig struct {
	// Flavor selects the format of the code stream.
	Flavor Flavor
	// Logger receives debug messages about clear codes and code width
	// changes. It may be nil.
	Logger xlog.Logger
}

// SetDefaults replaces zero values with default values. The default flavor
// is GIF(8).
func (cfg *WriterConfig) SetDefaults() {
	if cfg.Flavor == (Flavor{}) {
		cfg.Flavor = GIF(8)
	}
}

// Verify checks whether the configuration is consistent and correct. Usually
// call SetDefaults before this method.
func (cfg *WriterConfig) Verify() error {
	if cfg == nil {
		return errors.New("lzw: WriterConfig pointer must not be nil")
	}
	return cfg.Flavor.Verify()
}

// flushSize is the number of buffered output bytes that triggers a write to
// the underlying writer. The buffer never holds more than a few bytes beyond
// it.
const flushSize = 4096

// Writer compresses the data written to it into a code stream. For variable
// width flavors the stream starts with a clear code and ends with the end
// code. The Writer must be closed to complete the stream.
type Writer struct {
	w      io.Writer
	flavor Flavor
	logger xlog.Logger
	dict   *encoderDict
	bw     bitWriter

	// width is the current code width. The code hi is implied by the
	// codes written so far; it is the code that the next dictionary entry
	// gets. The width grows if hi+early reaches overflow.
	width    uint
	hi       int
	overflow int
	early    int

	// cur is the code for the longest match of the pending input.
	cur    code
	hasCur bool

	err error
}

// NewWriter creates a writer for the given flavor.
func NewWriter(w io.Writer, f Flavor) (*Writer, error) {
	return NewWriterConfig(w, WriterConfig{Flavor: f})
}

// NewWriterConfig creates a writer using the given configuration.
func NewWriterConfig(w io.Writer, cfg WriterConfig) (*Writer, error) {
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	z := &Writer{
		w:      w,
		flavor: cfg.Flavor,
		logger: cfg.Logger,
		early:  cfg.Flavor.early(),
	}
	z.dict = newEncoderDict(&z.flavor)
	z.bw = bitWriter{
		order: z.flavor.Order,
		buf:   make([]byte, 0, flushSize+8),
	}
	z.resetWidth()
	if !z.flavor.Fixed {
		z.bw.writeCode(z.flavor.clearCode(), z.width)
	}
	return z, nil
}

// resetWidth sets the code width and hi to the values following a clear
// code.
func (z *Writer) resetWidth() {
	z.width = z.flavor.minWidth()
	z.hi = z.flavor.firstFree() - 1
	z.overflow = 1 << z.width
}

// incHi increments hi and reports whether a dictionary entry for hi may be
// created. For variable width flavors a clear code is written when the codes
// are exhausted; a Fixed flavor freezes its dictionary.
func (z *Writer) incHi() bool {
	z.hi++
	if z.flavor.Fixed {
		if z.hi == z.overflow {
			z.hi--
			return false
		}
		return true
	}
	if z.hi+z.early == z.overflow {
		z.width++
		z.overflow <<= 1
		xlog.Debugf(z.logger, "lzw: code width %d at code %d",
			z.width, z.hi)
	}
	if z.hi+z.early == z.flavor.maxCode() {
		z.bw.writeCode(z.flavor.clearCode(), z.width)
		z.resetWidth()
		z.dict.reset()
		xlog.Debug(z.logger, "lzw: dictionary full; clear code written")
		return false
	}
	return true
}

// Write compresses the bytes in p. All bytes must be less than
// 1<<LitWidth, otherwise a *LiteralError is returned and n is the index of
// the offending byte. The bytes p[:n] are still part of the stream written by
// Close.
func (z *Writer) Write(p []byte) (n int, err error) {
	if z.err != nil {
		return 0, z.err
	}
	lim := 1 << z.flavor.LitWidth
	for i, x := range p {
		if int(x) >= lim {
			z.err = &LiteralError{Byte: x, LitWidth: z.flavor.LitWidth}
			return i, z.err
		}
		if !z.hasCur {
			z.cur, z.hasCur = code(x), true
			continue
		}
		if c, ok := z.dict.lookup(z.cur, x); ok {
			z.cur = c
			continue
		}
		z.bw.writeCode(z.cur, z.width)
		prev := z.cur
		z.cur = code(x)
		if z.incHi() {
			z.dict.insert(prev, x)
		}
		if len(z.bw.buf) >= flushSize {
			if err = z.bw.writeTo(z.w); err != nil {
				z.err = err
				return i + 1, err
			}
		}
	}
	return len(p), nil
}

// flushMatch writes the pending match. The implied code hi is incremented
// without creating an entry, so the following control code uses the width
// expected by the decoder. It reports whether a clear code has been written.
func (z *Writer) flushMatch() (cleared bool) {
	if !z.hasCur {
		return false
	}
	z.bw.writeCode(z.cur, z.width)
	z.hasCur = false
	return !z.incHi() && !z.flavor.Fixed
}

// Clear writes the pending match and a clear code and resets the
// dictionary. Fixed flavors return ErrNoClearCode.
func (z *Writer) Clear() error {
	if z.err != nil {
		return z.err
	}
	if z.flavor.Fixed {
		return ErrNoClearCode
	}
	if z.flushMatch() || z.hi == z.flavor.firstFree()-1 {
		// The dictionary is already in the initial state.
		return nil
	}
	z.bw.writeCode(z.flavor.clearCode(), z.width)
	z.resetWidth()
	z.dict.reset()
	return nil
}

// Close writes the pending match, the end code and the final partially filled
// byte. It doesn't close the underlying writer.
//
// After a *LiteralError the stream of the bytes accepted before the error is
// completed and the *LiteralError is returned again.
func (z *Writer) Close() error {
	var lerr *LiteralError
	if z.err != nil {
		if z.err == ErrClosed {
			return nil
		}
		if !errors.As(z.err, &lerr) {
			return z.err
		}
	}
	z.flushMatch()
	if !z.flavor.Fixed {
		z.bw.writeCode(z.flavor.endCode(), z.width)
	}
	z.bw.flush()
	if err := z.bw.writeTo(z.w); err != nil {
		z.err = err
		return err
	}
	z.err = ErrClosed
	if lerr != nil {
		return lerr
	}
	return nil
}
