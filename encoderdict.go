// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzw

// node is a trie node of the encoder dictionary. Its index in the arena is the
// code it represents. A node stores its first child inline; further children
// are kept in the hash table of the dictionary.
type node struct {
	// child is the code of the inline child; zero means none. Code zero is
	// always a root and never a child.
	child code
	b     byte
	// many is set if the node has children in the hash table.
	many bool
}

// slot is an entry of the child hash table. It is valid only if epoch equals
// the epoch of the dictionary.
type slot struct {
	key   uint32
	c     code
	epoch uint16
}

// encoderDict maps (code, byte) pairs to codes. All storage is allocated by
// newEncoderDict; reset doesn't release memory and doesn't allocate.
type encoderDict struct {
	nodes []node
	roots int

	slots []slot
	shift uint
	epoch uint16
}

// newEncoderDict allocates a dictionary for the flavor. The arena is sized
// to the capacity of the flavor and the hash table to twice the capacity, so
// its load never exceeds one half.
func newEncoderDict(f *Flavor) *encoderDict {
	bits := uint(f.MaxWidth) + 1
	return &encoderDict{
		nodes: make([]node, f.firstFree(), f.capacity()),
		roots: f.firstFree(),
		slots: make([]slot, 1<<bits),
		shift: 32 - bits,
		epoch: 1,
	}
}

// reset removes all entries except the roots.
func (d *encoderDict) reset() {
	d.nodes = d.nodes[:d.roots]
	clear(d.nodes)
	d.epoch++
	if d.epoch == 0 {
		clear(d.slots)
		d.epoch = 1
	}
}

// len returns the number of codes assigned, including the reserved codes.
func (d *encoderDict) len() int { return len(d.nodes) }

// full reports whether no more codes can be assigned.
func (d *encoderDict) full() bool { return len(d.nodes) == cap(d.nodes) }

// hash returns the start index for the key in the slots table.
func (d *encoderDict) hash(key uint32) uint32 {
	return (key * 0x9e3779b1) >> d.shift
}

// lookup returns the code for the word of c extended by b.
func (d *encoderDict) lookup(c code, b byte) (code, bool) {
	n := &d.nodes[c]
	if n.child != 0 && n.b == b {
		return n.child, true
	}
	if !n.many {
		return 0, false
	}
	key := uint32(c)<<8 | uint32(b)
	mask := uint32(len(d.slots) - 1)
	for i := d.hash(key); ; i = (i + 1) & mask {
		s := &d.slots[i]
		if s.epoch != d.epoch {
			return 0, false
		}
		if s.key == key {
			return s.c, true
		}
	}
}

// insert assigns the next free code to the word of c extended by b. The
// caller must ensure that the dictionary is not full and that the word is
// not present yet.
func (d *encoderDict) insert(c code, b byte) code {
	x := code(len(d.nodes))
	d.nodes = append(d.nodes, node{})
	n := &d.nodes[c]
	if n.child == 0 {
		n.b, n.child = b, x
		return x
	}
	n.many = true
	key := uint32(c)<<8 | uint32(b)
	mask := uint32(len(d.slots) - 1)
	i := d.hash(key)
	for d.slots[i].epoch == d.epoch {
		i = (i + 1) & mask
	}
	d.slots[i] = slot{key: key, c: x, epoch: d.epoch}
	return x
}
