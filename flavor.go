// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// BitOrder specifies how codes are packed into bytes.
type BitOrder int

const (
	// LSB means Least Significant Bits first, as used in the GIF file
	// format.
	LSB BitOrder = iota
	// MSB means Most Significant Bits first, as used in the TIFF and PDF
	// file formats.
	MSB
)

// String returns "lsb" or "msb".
func (o BitOrder) String() string {
	switch o {
	case LSB:
		return "lsb"
	case MSB:
		return "msb"
	}
	return fmt.Sprintf("BitOrder(%d)", int(o))
}

// Limits for the flavor parameters.
const (
	minLitWidth      = 2
	maxLitWidth      = 8
	maxVariableWidth = 12
	minFixedWidth    = 9
	maxFixedWidth    = 16
)

// Flavor describes the wire format of an LZW stream. The same value
// configures the encoder and the decoder; it is never modified by them.
//
// Variable width flavors (GIF and TIFF) start with codes of LitWidth+1 bits,
// reserve the clear code 1<<LitWidth and the end code 1<<LitWidth+1, and grow
// the code width up to MaxWidth. A Fixed flavor writes every code with
// MaxWidth bits, has no reserved codes and stops adding entries to the
// dictionary once it is full.
type Flavor struct {
	// LitWidth is the number of bits of a literal. All input bytes must
	// be less than 1<<LitWidth.
	LitWidth int
	// MaxWidth is the maximum code width. For Fixed flavors it is the
	// width of all codes.
	MaxWidth int
	// Order is the bit order used to pack the codes.
	Order BitOrder
	// EarlyChange increases the code width one code earlier than
	// necessary. This is the convention of TIFF and PDF.
	EarlyChange bool
	// Fixed selects constant code widths without clear and end codes.
	Fixed bool
}

// GIF returns the flavor used by the GIF image format. The litWidth is the
// minimum code size given in the GIF image descriptor and must be in the range
// 2..8.
func GIF(litWidth int) Flavor {
	return Flavor{
		LitWidth: litWidth,
		MaxWidth: maxVariableWidth,
		Order:    LSB,
	}
}

// TIFF returns the flavor used by TIFF files with compression 5.
func TIFF() Flavor {
	return Flavor{
		LitWidth:    8,
		MaxWidth:    maxVariableWidth,
		Order:       MSB,
		EarlyChange: true,
	}
}

// FixedWidth returns a flavor writing all codes with the given width. The
// width must be in the range 9..16. A width of 12 is common.
func FixedWidth(width int, order BitOrder) Flavor {
	return Flavor{
		LitWidth: 8,
		MaxWidth: width,
		Order:    order,
		Fixed:    true,
	}
}

// Verify checks the flavor for consistency.
func (f Flavor) Verify() error {
	if f.Order != LSB && f.Order != MSB {
		return fmt.Errorf("lzw: unsupported bit order %d", int(f.Order))
	}
	if f.Fixed {
		if f.LitWidth != 8 {
			return errors.New(
				"lzw: fixed flavor requires a LitWidth of 8")
		}
		if f.EarlyChange {
			return errors.New(
				"lzw: fixed flavor doesn't support early change")
		}
		if !(minFixedWidth <= f.MaxWidth && f.MaxWidth <= maxFixedWidth) {
			return fmt.Errorf(
				"lzw: fixed code width %d out of range [%d,%d]",
				f.MaxWidth, minFixedWidth, maxFixedWidth)
		}
		return nil
	}
	if !(minLitWidth <= f.LitWidth && f.LitWidth <= maxLitWidth) {
		return fmt.Errorf("lzw: LitWidth %d out of range [%d,%d]",
			f.LitWidth, minLitWidth, maxLitWidth)
	}
	if !(f.LitWidth+1 < f.MaxWidth && f.MaxWidth <= maxVariableWidth) {
		return fmt.Errorf("lzw: MaxWidth %d out of range [%d,%d]",
			f.MaxWidth, f.LitWidth+2, maxVariableWidth)
	}
	return nil
}

// String returns a representation of the flavor that can be parsed by
// ParseFlavor if the flavor is one of the standard flavors.
func (f Flavor) String() string {
	switch {
	case f.Fixed:
		return fmt.Sprintf("fixed:%d,%s", f.MaxWidth, f.Order)
	case f == TIFF():
		return "tiff"
	case f == GIF(f.LitWidth):
		return "gif:" + strconv.Itoa(f.LitWidth)
	}
	return fmt.Sprintf("%+v", struct {
		LitWidth, MaxWidth int
		Order              BitOrder
		EarlyChange        bool
	}{f.LitWidth, f.MaxWidth, f.Order, f.EarlyChange})
}

// ParseFlavor parses a flavor description. Supported are "gif",
// "gif:<litwidth>", "tiff", "fixed" and "fixed:<width>". The fixed flavors
// accept an optional ",lsb" or ",msb" suffix; the default is lsb.
func ParseFlavor(s string) (f Flavor, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s, orderArg, hasOrder := strings.Cut(s, ",")
	name, arg, hasArg := strings.Cut(s, ":")
	if hasOrder && name != "fixed" {
		return Flavor{}, fmt.Errorf(
			"lzw: flavor %s doesn't support a bit order", name)
	}
	switch name {
	case "gif":
		lw := 8
		if hasArg {
			if lw, err = strconv.Atoi(arg); err != nil {
				return Flavor{}, fmt.Errorf(
					"lzw: invalid gif literal width %q", arg)
			}
		}
		f = GIF(lw)
	case "tiff":
		if hasArg {
			return Flavor{}, fmt.Errorf(
				"lzw: tiff flavor doesn't support argument %q", arg)
		}
		f = TIFF()
	case "fixed":
		width, order := 12, LSB
		if hasArg {
			if width, err = strconv.Atoi(arg); err != nil {
				return Flavor{}, fmt.Errorf(
					"lzw: invalid fixed code width %q", arg)
			}
		}
		if hasOrder {
			switch orderArg {
			case "lsb":
			case "msb":
				order = MSB
			default:
				return Flavor{}, fmt.Errorf(
					"lzw: unknown bit order %q", orderArg)
			}
		}
		f = FixedWidth(width, order)
	default:
		return Flavor{}, fmt.Errorf("lzw: unknown flavor %q", name)
	}
	if err = f.Verify(); err != nil {
		return Flavor{}, err
	}
	return f, nil
}

// code is a value transmitted in the code stream.
type code uint16

// clearCode returns the code that resets the dictionary.
func (f *Flavor) clearCode() code { return 1 << f.LitWidth }

// endCode returns the code that terminates the stream.
func (f *Flavor) endCode() code { return f.clearCode() + 1 }

// firstFree returns the first code that is assigned to a dictionary entry
// after a reset.
func (f *Flavor) firstFree() int {
	if f.Fixed {
		return 1 << f.LitWidth
	}
	return int(f.endCode()) + 1
}

// minWidth returns the code width directly after a reset.
func (f *Flavor) minWidth() uint {
	if f.Fixed {
		return uint(f.MaxWidth)
	}
	return uint(f.LitWidth) + 1
}

// capacity returns the number of codes that can be represented with the
// maximum width.
func (f *Flavor) capacity() int { return 1 << f.MaxWidth }

// maxCode returns the largest code representable with MaxWidth bits.
func (f *Flavor) maxCode() int { return f.capacity() - 1 }

// early returns 1 for early change flavors and 0 otherwise.
func (f *Flavor) early() int {
	if f.EarlyChange {
		return 1
	}
	return 0
}

// isLiteral reports whether c represents a single byte.
func (f *Flavor) isLiteral(c code) bool { return int(c) < 1<<f.LitWidth }
