// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOS is returned by the decoder if the input ends in the middle
// of a code or before the end code of a variable width flavor.
var ErrUnexpectedEOS = errors.New("lzw: unexpected end of stream")

// ErrMalformedStream indicates that the code stream is corrupted. Decoding
// cannot continue after it has been reported.
var ErrMalformedStream = errors.New("lzw: malformed stream")

// ErrNoClearCode is returned by Writer.Clear for flavors without a clear code.
var ErrNoClearCode = errors.New("lzw: flavor has no clear code")

// ErrClosed is returned if a closed Writer or Reader is used.
var ErrClosed = errors.New("lzw: use of closed codec")

// CodeError describes an invalid code in the code stream. It wraps
// ErrMalformedStream.
type CodeError struct {
	Code      int
	TableSize int
	Msg       string
}

// Error returns the error message.
func (e *CodeError) Error() string {
	return fmt.Sprintf("lzw: code %d with table size %d: %s",
		e.Code, e.TableSize, e.Msg)
}

// Unwrap returns ErrMalformedStream.
func (e *CodeError) Unwrap() error { return ErrMalformedStream }

// LiteralError is returned by the encoder for an input byte that cannot be
// represented by the literal width of the flavor.
type LiteralError struct {
	Byte     byte
	LitWidth int
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("lzw: byte %#02x exceeds literal width %d",
		e.Byte, e.LitWidth)
}
