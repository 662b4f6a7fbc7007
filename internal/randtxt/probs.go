// SPDX-FileCopyrightText: © 2014 Ulrich Kunitz
//
// SPDX-License-Identifier: BSD-3-Clause

// Package randtxt generates pseudo English text. The words follow a Zipf
// distribution over a small vocabulary, which makes the text compressible in
// a way similar to natural language.
package randtxt

import (
	"math/rand"
	"sort"
)

type prob struct {
	s string
	p float64
}

type probs []prob

func (s probs) SearchProb(p float64) int {
	return sort.Search(len(s), func(k int) bool { return s[k].p >= p })
}

type byProb struct {
	probs
}

func (s byProb) Len() int           { return len(s.probs) }
func (s byProb) Swap(i, j int)      { s.probs[i], s.probs[j] = s.probs[j], s.probs[i] }
func (s byProb) Less(i, j int) bool { return s.probs[i].p < s.probs[j].p }

// cdf computes the cumulative distribution function for the n weights
// provided by p.
func cdf(n int, p func(i int) prob) probs {
	prs := make(probs, n)
	sum := 0.0
	for i := range prs {
		pr := p(i)
		sum += pr.p
		prs[i] = pr
	}
	q := 1.0 / sum
	x := 0.0
	for i, pr := range prs {
		x += pr.p * q
		if x > 1.0 {
			x = 1.0
		}
		prs[i].p = x
	}
	prs[n-1].p = 1.0
	if !sort.IsSorted(byProb{prs}) {
		panic("cdf not sorted")
	}
	return prs
}

// vocabulary is ordered by decreasing frequency.
var vocabulary = []string{
	"the", "of", "and", "to", "a", "in", "is", "that", "for", "it",
	"as", "was", "with", "be", "by", "on", "not", "he", "this", "are",
	"or", "his", "from", "at", "which", "but", "have", "an", "had",
	"they", "you", "were", "their", "one", "all", "we", "can", "her",
	"has", "there", "been", "if", "more", "when", "will", "would", "who",
	"so", "no", "code", "table", "stream", "width", "dictionary", "clear",
	"byte", "reader", "writer", "compression", "image", "file", "data",
	"river", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
}

// wcdf is the Zipf distribution of the vocabulary.
var wcdf = cdf(len(vocabulary), func(i int) prob {
	return prob{vocabulary[i], 1.0 / float64(i+1)}
})

// wordsPerSentence is the mean number of words in a sentence.
const wordsPerSentence = 12

// Reader produces an endless stream of pseudo English sentences.
type Reader struct {
	rnd     *rand.Rand
	buf     []byte
	inWords int
}

// NewReader creates a new reader. The same source produces the same text.
func NewReader(src rand.Source) *Reader {
	return &Reader{rnd: rand.New(src)}
}

func (r *Reader) word() string {
	return wcdf[wcdf.SearchProb(r.rnd.Float64())].s
}

// fill appends the next word with its separator to the buffer.
func (r *Reader) fill() {
	w := r.word()
	if r.inWords == 0 {
		r.buf = append(r.buf, w[0]-'a'+'A')
		r.buf = append(r.buf, w[1:]...)
	} else {
		r.buf = append(r.buf, w...)
	}
	r.inWords++
	if r.rnd.Intn(wordsPerSentence) == 0 {
		r.inWords = 0
		if r.rnd.Intn(4) == 0 {
			r.buf = append(r.buf, ".\n"...)
		} else {
			r.buf = append(r.buf, ". "...)
		}
		return
	}
	r.buf = append(r.buf, ' ')
}

// Read fills p completely. It never returns an error.
func (r *Reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.buf) == 0 {
			r.fill()
		}
		k := copy(p[n:], r.buf)
		n += k
		r.buf = r.buf[:copy(r.buf, r.buf[k:])]
	}
	return n, nil
}
