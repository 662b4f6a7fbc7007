// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

import (
	"bytes"
	"io"
)

// Encode compresses data and returns the code stream.
func Encode(data []byte, f Flavor) ([]byte, error) {
	buf := new(bytes.Buffer)
	z, err := NewWriter(buf, f)
	if err != nil {
		return nil, err
	}
	if _, err = z.Write(data); err != nil {
		return nil, err
	}
	if err = z.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decompresses the code stream in data. Bytes following the end code
// are ignored.
func Decode(data []byte, f Flavor) ([]byte, error) {
	z, err := NewReader(bytes.NewReader(data), f)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(z)
}

// encodingReader compresses the data read from r.
type encodingReader struct {
	r   io.Reader
	z   *Writer
	buf bytes.Buffer
	in  []byte
	err error
}

// NewEncodingReader returns a reader that provides the compressed code stream
// of the data read from r.
func NewEncodingReader(r io.Reader, cfg WriterConfig) (io.Reader, error) {
	er := &encodingReader{
		r:  r,
		in: make([]byte, 32*1024),
	}
	var err error
	if er.z, err = NewWriterConfig(&er.buf, cfg); err != nil {
		return nil, err
	}
	return er, nil
}

func (er *encodingReader) Read(p []byte) (n int, err error) {
	for er.buf.Len() == 0 {
		if er.err != nil {
			return 0, er.err
		}
		k, err := er.r.Read(er.in)
		if k > 0 {
			if _, werr := er.z.Write(er.in[:k]); werr != nil {
				er.err = werr
				continue
			}
		}
		switch err {
		case nil:
		case io.EOF:
			if cerr := er.z.Close(); cerr != nil {
				er.err = cerr
			} else {
				er.err = io.EOF
			}
		default:
			er.err = err
		}
	}
	return er.buf.Read(p)
}
