// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	stdlzw "compress/lzw"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/ulikunitz/lzw/internal/randtxt"
)

var goldenVectors = []struct {
	name   string
	flavor Flavor
	in     []byte
	out    []byte
}{
	{"gif2", GIF(2), []byte{0, 0, 1, 3}, []byte{0x04, 0x32, 0x05}},
	{"tiff", TIFF(), []byte{0, 0, 1, 3},
		[]byte{0x80, 0, 0, 0, 0x10, 0x1c, 0x04}},
	{"fixed12", FixedWidth(12, LSB), []byte{0, 0, 1, 3},
		[]byte{0, 0, 0, 1, 0x30, 0}},
	{"fixed12-2", FixedWidth(12, LSB), []byte{0, 7, 1, 3, 5, 1},
		[]byte{0, 112, 0, 1, 48, 0, 5, 16, 0}},
	{"gif8-empty", GIF(8), []byte{}, []byte{0x00, 0x03, 0x02}},
	{"fixed-empty", FixedWidth(12, MSB), []byte{}, []byte{}},
}

func TestGoldenVectors(t *testing.T) {
	for _, v := range goldenVectors {
		t.Run(v.name, func(t *testing.T) {
			out, err := Encode(v.in, v.flavor)
			if err != nil {
				t.Fatalf("Encode error %s", err)
			}
			if !bytes.Equal(out, v.out) {
				t.Fatalf("Encode got %#v; want %#v", out, v.out)
			}
			in, err := Decode(v.out, v.flavor)
			if err != nil {
				t.Fatalf("Decode error %s", err)
			}
			if !bytes.Equal(in, v.in) {
				t.Fatalf("Decode got %#v; want %#v", in, v.in)
			}
		})
	}
}

func TestWriterCodes(t *testing.T) {
	f := GIF(2)
	data, err := Encode([]byte{1, 2, 1, 2, 1, 2, 1, 2}, f)
	if err != nil {
		t.Fatalf("Encode error %s", err)
	}
	want := []codeWidth{
		{4, 3}, {1, 3}, {2, 3}, {6, 3}, {8, 4}, {2, 4}, {5, 4},
	}
	br := newBitReader(bytes.NewReader(data), f.Order)
	for i, cw := range want {
		c, err := br.readCode(cw.width)
		if err != nil {
			t.Fatalf("code %d: readCode error %s", i, err)
		}
		if c != cw.c {
			t.Fatalf("code %d: got %d; want %d", i, c, cw.c)
		}
	}
	if _, err = br.readCode(4); err != io.EOF {
		t.Fatalf("readCode after end code got %v; want %v",
			err, io.EOF)
	}
}

func randomText(seed int64, n int) []byte {
	p := make([]byte, n)
	if _, err := io.ReadFull(randtxt.NewReader(rand.NewSource(seed)),
		p); err != nil {
		panic(err)
	}
	return p
}

func randomBytes(seed int64, n int, litWidth int) []byte {
	rnd := rand.New(rand.NewSource(seed))
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(rnd.Intn(1 << litWidth))
	}
	return p
}

func TestWriterMatchesStdlib(t *testing.T) {
	for lw := 2; lw <= 8; lw++ {
		inputs := [][]byte{
			nil,
			{1},
			bytes.Repeat([]byte{1}, 100000),
			randomBytes(int64(lw), 50000, lw),
		}
		if lw == 8 {
			inputs = append(inputs, randomText(1, 300000))
		}
		for i, in := range inputs {
			var want bytes.Buffer
			sw := stdlzw.NewWriter(&want, stdlzw.LSB, lw)
			if _, err := sw.Write(in); err != nil {
				t.Fatalf("compress/lzw Write error %s", err)
			}
			if err := sw.Close(); err != nil {
				t.Fatalf("compress/lzw Close error %s", err)
			}
			got, err := Encode(in, GIF(lw))
			if err != nil {
				t.Fatalf("gif:%d input %d: Encode error %s",
					lw, i, err)
			}
			if !bytes.Equal(got, want.Bytes()) {
				t.Fatalf("gif:%d input %d: output differs from"+
					" compress/lzw", lw, i)
			}
		}
	}
}

func TestWriterSmallWrites(t *testing.T) {
	in := randomText(2, 100000)
	for _, f := range testFlavors {
		want, err := Encode(in, f)
		if err != nil {
			t.Fatalf("%s: Encode error %s", f, err)
		}
		var buf bytes.Buffer
		z, err := NewWriter(&buf, f)
		if err != nil {
			t.Fatalf("%s: NewWriter error %s", f, err)
		}
		for p := in; len(p) > 0; {
			k := min(len(p), 7)
			n, err := z.Write(p[:k])
			if err != nil {
				t.Fatalf("%s: Write error %s", f, err)
			}
			if n != k {
				t.Fatalf("%s: Write returned %d; want %d",
					f, n, k)
			}
			p = p[k:]
		}
		if err = z.Close(); err != nil {
			t.Fatalf("%s: Close error %s", f, err)
		}
		if !bytes.Equal(buf.Bytes(), want) {
			t.Fatalf("%s: small writes produced different output",
				f)
		}
	}
}

func TestLiteralError(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewWriter(&buf, GIF(2))
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	n, err := z.Write([]byte{0, 1, 2, 3, 4, 0})
	if n != 4 {
		t.Fatalf("Write returned %d; want %d", n, 4)
	}
	var lerr *LiteralError
	if !errors.As(err, &lerr) {
		t.Fatalf("Write error %v; want *LiteralError", err)
	}
	if lerr.Byte != 4 || lerr.LitWidth != 2 {
		t.Fatalf("LiteralError got %+v", *lerr)
	}
	if err = z.Close(); err != lerr {
		t.Fatalf("Close error %v; want %v", err, lerr)
	}
	if err = z.Close(); err != nil {
		t.Fatalf("second Close error %v", err)
	}
	got, err := Decode(buf.Bytes(), GIF(2))
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if want := []byte{0, 1, 2, 3}; !bytes.Equal(got, want) {
		t.Fatalf("Decode got %v; want %v", got, want)
	}
}

func TestLiteralErrorKeepsOutput(t *testing.T) {
	in := randomBytes(5, 3000, 2)
	var buf bytes.Buffer
	z, err := NewWriter(&buf, GIF(2))
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if _, err = z.Write(in); err != nil {
		t.Fatalf("Write error %s", err)
	}
	n, err := z.Write([]byte{9})
	if n != 0 || err == nil {
		t.Fatalf("Write(9) returned %d, %v; want 0 and an error",
			n, err)
	}
	if err = z.Close(); err == nil {
		t.Fatalf("Close returned no error")
	}
	if buf.Len() == 0 {
		t.Fatalf("no output written after literal error")
	}
	got, err := Decode(buf.Bytes(), GIF(2))
	if err != nil {
		t.Fatalf("Decode error %s", err)
	}
	if !bytes.Equal(got, in) {
		t.Fatalf("Decode returned %d bytes; want the %d bytes written",
			len(got), len(in))
	}
}

// maxWriter records the largest slice passed to Write.
type maxWriter struct {
	max int
	n   int
}

func (w *maxWriter) Write(p []byte) (n int, err error) {
	w.max = max(w.max, len(p))
	w.n += len(p)
	return len(p), nil
}

func TestWriterBoundedBuffer(t *testing.T) {
	in := randomBytes(6, 1<<20, 8)
	for _, f := range []Flavor{GIF(8), TIFF(), FixedWidth(16, MSB)} {
		w := &maxWriter{}
		z, err := NewWriter(w, f)
		if err != nil {
			t.Fatalf("%s: NewWriter error %s", f, err)
		}
		if _, err = z.Write(in); err != nil {
			t.Fatalf("%s: Write error %s", f, err)
		}
		if w.n == 0 {
			t.Fatalf("%s: nothing written before Close", f)
		}
		if err = z.Close(); err != nil {
			t.Fatalf("%s: Close error %s", f, err)
		}
		if w.max > flushSize+8 {
			t.Fatalf("%s: largest write %d; want <= %d",
				f, w.max, flushSize+8)
		}
		if c := cap(z.bw.buf); c > flushSize+8 {
			t.Fatalf("%s: buffer capacity %d; want <= %d",
				f, c, flushSize+8)
		}
	}
}

func TestWriterClosed(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewWriter(&buf, TIFF())
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if err = z.Close(); err != nil {
		t.Fatalf("Close error %s", err)
	}
	if err = z.Close(); err != nil {
		t.Fatalf("second Close error %s", err)
	}
	if _, err = z.Write([]byte("a")); err != ErrClosed {
		t.Fatalf("Write after Close got error %v; want %v",
			err, ErrClosed)
	}
	if err = z.Clear(); err != ErrClosed {
		t.Fatalf("Clear after Close got error %v; want %v",
			err, ErrClosed)
	}
}

func TestClear(t *testing.T) {
	a := randomText(3, 20000)
	b := randomText(4, 20000)
	for _, f := range []Flavor{GIF(8), TIFF()} {
		var buf bytes.Buffer
		z, err := NewWriter(&buf, f)
		if err != nil {
			t.Fatalf("%s: NewWriter error %s", f, err)
		}
		if err = z.Clear(); err != nil {
			t.Fatalf("%s: Clear error %s", f, err)
		}
		for _, p := range [][]byte{a, b, a[:1], a} {
			if _, err = z.Write(p); err != nil {
				t.Fatalf("%s: Write error %s", f, err)
			}
			if err = z.Clear(); err != nil {
				t.Fatalf("%s: Clear error %s", f, err)
			}
			if z.dict.len() != f.firstFree() {
				t.Fatalf("%s: dictionary not reset", f)
			}
		}
		if err = z.Close(); err != nil {
			t.Fatalf("%s: Close error %s", f, err)
		}
		got, err := Decode(buf.Bytes(), f)
		if err != nil {
			t.Fatalf("%s: Decode error %s", f, err)
		}
		want := bytes.Join([][]byte{a, b, a[:1], a}, nil)
		if !bytes.Equal(got, want) {
			t.Fatalf("%s: Decode after clear codes differs", f)
		}
	}

	var buf bytes.Buffer
	z, err := NewWriter(&buf, FixedWidth(12, LSB))
	if err != nil {
		t.Fatalf("NewWriter error %s", err)
	}
	if err = z.Clear(); err != ErrNoClearCode {
		t.Fatalf("Clear on fixed flavor got error %v; want %v",
			err, ErrNoClearCode)
	}
}

func TestFixedFreeze(t *testing.T) {
	for _, width := range []int{9, 12} {
		f := FixedWidth(width, MSB)
		in := randomText(5, 200000)
		var buf bytes.Buffer
		z, err := NewWriter(&buf, f)
		if err != nil {
			t.Fatalf("%s: NewWriter error %s", f, err)
		}
		if _, err = z.Write(in); err != nil {
			t.Fatalf("%s: Write error %s", f, err)
		}
		if !z.dict.full() {
			t.Fatalf("%s: dictionary not full", f)
		}
		if err = z.Close(); err != nil {
			t.Fatalf("%s: Close error %s", f, err)
		}
		if buf.Len()*8%width >= 8 {
			t.Fatalf("%s: %d bytes can't hold whole codes",
				f, buf.Len())
		}
		out, err := Decode(buf.Bytes(), f)
		if err != nil {
			t.Fatalf("%s: Decode error %s", f, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("%s: round trip failed", f)
		}
	}
}

func TestWriterConfig(t *testing.T) {
	var cfg WriterConfig
	cfg.SetDefaults()
	if cfg.Flavor != GIF(8) {
		t.Fatalf("default flavor %s; want %s", cfg.Flavor, GIF(8))
	}
	if err := cfg.Verify(); err != nil {
		t.Fatalf("Verify error %s", err)
	}
	var pcfg *WriterConfig
	if err := pcfg.Verify(); err == nil {
		t.Fatalf("Verify on nil pointer returned no error")
	}
	cfg.Flavor = GIF(9)
	if _, err := NewWriterConfig(io.Discard, cfg); err == nil {
		t.Fatalf("NewWriterConfig accepted %s", cfg.Flavor)
	}
}
