// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// decoderTable stores the dictionary of the decoder. Each code c >= lo
// expands to the expansion of prefix[c] followed by suffix[c]. Codes below lo
// are literals or reserved. The words are reconstructed in stack.
//
// All slices have the capacity of the flavor and never grow.
type decoderTable struct {
	lo     code
	prefix []code
	suffix []byte
	stack  []byte
}

func newDecoderTable(f *Flavor) *decoderTable {
	n := f.capacity()
	return &decoderTable{
		lo:     code(f.firstFree()),
		prefix: make([]code, n),
		suffix: make([]byte, n),
		stack:  make([]byte, n),
	}
}

// add sets the entry for code c.
func (t *decoderTable) add(c, prefix code, b byte) {
	t.prefix[c] = prefix
	t.suffix[c] = b
}

// expand writes the word of code c into the stack so that it ends before
// index end. It returns the start index of the word. A prefix chain that
// doesn't fit into the stack is reported as an error.
func (t *decoderTable) expand(c code, end int) (start int, err error) {
	start = end
	x := c
	for x >= t.lo {
		if start == 0 {
			return 0, &CodeError{Code: int(c), Msg: "prefix cycle"}
		}
		start--
		t.stack[start] = t.suffix[x]
		x = t.prefix[x]
	}
	if start == 0 {
		return 0, &CodeError{Code: int(c), Msg: "prefix cycle"}
	}
	start--
	t.stack[start] = byte(x)
	return start, nil
}

// size returns the number of bytes allocated by the table.
func (t *decoderTable) size() int {
	return 2*cap(t.prefix) + cap(t.suffix) + cap(t.stack)
}
