// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bufio"
	"io"
)

// bitWriter packs codes into bytes. The complete bytes are collected in buf;
// the owner is responsible for moving them to the underlying writer.
type bitWriter struct {
	order BitOrder
	// bits holds the pending bits; for MSB they are aligned to the top of
	// the word.
	bits uint32
	n    uint
	buf  []byte
}

// writeCode appends the low width bits of c. The width must not exceed 16.
func (bw *bitWriter) writeCode(c code, width uint) {
	if bw.order == LSB {
		bw.bits |= uint32(c) << bw.n
		bw.n += width
		for bw.n >= 8 {
			bw.buf = append(bw.buf, byte(bw.bits))
			bw.bits >>= 8
			bw.n -= 8
		}
		return
	}
	bw.bits |= uint32(c) << (32 - width - bw.n)
	bw.n += width
	for bw.n >= 8 {
		bw.buf = append(bw.buf, byte(bw.bits>>24))
		bw.bits <<= 8
		bw.n -= 8
	}
}

// flush pads a partial byte with zero bits and appends it to buf.
func (bw *bitWriter) flush() {
	if bw.n == 0 {
		return
	}
	if bw.order == LSB {
		bw.buf = append(bw.buf, byte(bw.bits))
	} else {
		bw.buf = append(bw.buf, byte(bw.bits>>24))
	}
	bw.bits, bw.n = 0, 0
}

// writeTo moves the complete bytes to w.
func (bw *bitWriter) writeTo(w io.Writer) error {
	if len(bw.buf) == 0 {
		return nil
	}
	_, err := w.Write(bw.buf)
	bw.buf = bw.buf[:0]
	return err
}

// bitReader unpacks codes from a byte stream.
type bitReader struct {
	r     io.ByteReader
	order BitOrder
	bits  uint32
	n     uint
}

// newBitReader creates a bit reader. If r doesn't support ReadByte it is
// wrapped by a bufio.Reader.
func newBitReader(r io.Reader, order BitOrder) *bitReader {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &bitReader{r: br, order: order}
}

// readCode reads a code of the given width. If the source ends and less than
// 8 bits are buffered, io.EOF is returned because the remaining bits can only
// be padding. With a full byte or more buffered ErrUnexpectedEOS is returned.
func (br *bitReader) readCode(width uint) (c code, err error) {
	for br.n < width {
		b, err := br.r.ReadByte()
		if err != nil {
			if err != io.EOF {
				return 0, err
			}
			if br.n >= 8 {
				return 0, ErrUnexpectedEOS
			}
			return 0, io.EOF
		}
		if br.order == LSB {
			br.bits |= uint32(b) << br.n
		} else {
			br.bits |= uint32(b) << (24 - br.n)
		}
		br.n += 8
	}
	if br.order == LSB {
		c = code(br.bits & (1<<width - 1))
		br.bits >>= width
	} else {
		c = code(br.bits >> (32 - width))
		br.bits <<= width
	}
	br.n -= width
	return c, nil
}
