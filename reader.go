// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"io"

	"github.com/ulikunitz/lzw/xlog"
)

// ReaderConfig provides the configuration parameters for the LZW reader.
type ReaderConfig struct {
	// Flavor selects the format of the code stream.
	Flavor Flavor
	// Logger receives debug messages about clear codes, code width
	// changes and frozen dictionaries. It may be nil.
	Logger xlog.Logger
}

// SetDefaults replaces zero values with default values. The default flavor
// is GIF(8).
func (cfg *ReaderConfig) SetDefaults() {
	if cfg.Flavor == (Flavor{}) {
		cfg.Flavor = GIF(8)
	}
}

// Verify checks whether the configuration is consistent and correct. Usually
// call SetDefaults before this method.
func (cfg *ReaderConfig) Verify() error {
	if cfg == nil {
		return errors.New("lzw: ReaderConfig pointer must not be nil")
	}
	return cfg.Flavor.Verify()
}

// Reader decompresses an LZW code stream. The memory used by the reader
// depends only on the maximum code width of the flavor.
type Reader struct {
	flavor Flavor
	logger xlog.Logger
	br     *bitReader
	table  *decoderTable

	// Codes c in [lo, hi) have table entries. The code hi is either
	// the next entry to be created or, if the table is frozen, the last
	// entry of the table.
	width    uint
	hi       int
	overflow int
	early    int

	// last is the most recent code if an entry for it will be created.
	last      code
	hasLast   bool
	lastFirst byte
	frozen    bool

	// pending contains decoded bytes not yet returned by Read.
	pending []byte
	err     error
}

// NewReader creates a reader for the given flavor.
func NewReader(r io.Reader, f Flavor) (*Reader, error) {
	return NewReaderConfig(r, ReaderConfig{Flavor: f})
}

// NewReaderConfig creates a reader using the given configuration. If r
// doesn't implement io.ByteReader the reader may read more bytes from r than
// the code stream requires.
func NewReaderConfig(r io.Reader, cfg ReaderConfig) (*Reader, error) {
	cfg.SetDefaults()
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	z := &Reader{
		flavor: cfg.Flavor,
		logger: cfg.Logger,
		early:  cfg.Flavor.early(),
	}
	z.br = newBitReader(r, z.flavor.Order)
	z.table = newDecoderTable(&z.flavor)
	z.reset()
	return z, nil
}

// reset puts the decoder into the state following a clear code.
func (z *Reader) reset() {
	z.width = z.flavor.minWidth()
	z.hi = z.flavor.firstFree() - 1
	z.overflow = 1 << z.width
	z.hasLast = false
	z.frozen = false
}

// Read decompresses bytes into p. It returns io.EOF after the end code has
// been read. For Fixed flavors io.EOF is returned if the input ends at a code
// boundary or within the padding bits of the last byte.
func (z *Reader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	for {
		if len(z.pending) > 0 {
			k := copy(p[n:], z.pending)
			z.pending = z.pending[k:]
			n += k
			if n == len(p) {
				return n, nil
			}
		}
		if z.err != nil {
			if n > 0 {
				return n, nil
			}
			return 0, z.err
		}
		z.err = z.decode()
	}
}

// decode reads the next code and stores its expansion in pending.
func (z *Reader) decode() error {
	c, err := z.br.readCode(z.width)
	if err != nil {
		if err == io.EOF && !z.flavor.Fixed {
			return ErrUnexpectedEOS
		}
		return err
	}
	if !z.flavor.Fixed {
		switch c {
		case z.flavor.clearCode():
			z.reset()
			xlog.Debug(z.logger, "lzw: clear code read")
			return nil
		case z.flavor.endCode():
			return io.EOF
		}
	}

	end := len(z.table.stack)
	var start int
	switch {
	case z.flavor.isLiteral(c):
		start = end - 1
		z.table.stack[start] = byte(c)
	case int(c) < z.hi || (int(c) == z.hi && !z.hasLast):
		if start, err = z.table.expand(c, end); err != nil {
			return err
		}
	case int(c) == z.hi && z.hasLast:
		// The code is created by this step. It expands to the last word
		// followed by the first byte of the last word.
		end--
		z.table.stack[end] = z.lastFirst
		if start, err = z.table.expand(z.last, end); err != nil {
			return err
		}
		end++
	default:
		msg := "code not in table"
		if !z.hasLast && !z.frozen {
			msg = "first code after reset must be a literal"
		}
		return &CodeError{Code: int(c), TableSize: z.tableSize(),
			Msg: msg}
	}
	first := z.table.stack[start]
	z.pending = z.table.stack[start:end]

	if z.hasLast {
		z.table.add(code(z.hi), z.last, first)
	}
	z.last, z.hasLast, z.lastFirst = c, true, first
	z.hi++
	if z.hi+z.early >= z.overflow {
		if int(z.width) == z.flavor.MaxWidth {
			// The table is full. No entries are created until a
			// clear code is read.
			z.hasLast = false
			z.hi--
			if !z.frozen {
				z.frozen = true
				xlog.Debugf(z.logger,
					"lzw: table frozen with %d codes", z.hi+1)
			}
		} else {
			z.width++
			z.overflow <<= 1
			xlog.Debugf(z.logger, "lzw: code width %d at code %d",
				z.width, z.hi)
		}
	}
	return nil
}

// tableSize returns the number of codes with table entries, including the
// literals and reserved codes.
func (z *Reader) tableSize() int {
	if z.frozen {
		return z.hi + 1
	}
	return max(z.hi, z.flavor.firstFree())
}
