// Package tuning provides helpers to measure the compression of file corpora
// with the LZW flavors.
package tuning

import (
	"bytes"
	"io"
	"io/fs"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/lz"
	"github.com/ulikunitz/lzw"
)

type File struct {
	Name string
	Data []byte
}

func Files(corpus fs.FS) (files []File, err error) {
	err = fs.WalkDir(corpus, ".",
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() {
				return nil
			}
			data, err := fs.ReadFile(corpus, path)
			if err != nil {
				return err
			}
			files = append(files, File{Name: path, Data: data})
			return nil
		})
	return files, err
}

func Size(files []File) int64 {
	n := int64(0)
	for _, f := range files {
		n += int64(len(f.Data))
	}
	return n
}

type countWriter struct {
	n int64
}

func (w *countWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	w.n += int64(n)
	return n, nil
}

// LZWCompress returns the total size of the code streams for the files.
func LZWCompress(files []File, cfg lzw.WriterConfig) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		w, err := lzw.NewWriterConfig(cw, cfg)
		if err != nil {
			return compressedSize, err
		}
		_, err = io.Copy(w, bytes.NewReader(f.Data))
		if err != nil {
			return compressedSize, err
		}
		if err = w.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.n
	}
	return compressedSize, nil
}

// FlateCompress returns the total size of the deflate streams for the files.
func FlateCompress(files []File, level int) (compressedSize int64, err error) {
	for _, f := range files {
		cw := &countWriter{}
		w, err := flate.NewWriter(cw, level)
		if err != nil {
			return compressedSize, err
		}
		if _, err = w.Write(f.Data); err != nil {
			return compressedSize, err
		}
		if err = w.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.n
	}
	return compressedSize, nil
}

// ZstdCompress returns the total size of the zstd frames for the files.
func ZstdCompress(files []File, level zstd.EncoderLevel) (compressedSize int64, err error) {
	cw := &countWriter{}
	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(level))
	if err != nil {
		return 0, err
	}
	for _, f := range files {
		cw.n = 0
		enc.Reset(cw)
		if _, err = enc.Write(f.Data); err != nil {
			return compressedSize, err
		}
		if err = enc.Close(); err != nil {
			return compressedSize, err
		}
		compressedSize += cw.n
	}
	return compressedSize, nil
}

// SeqStats counts the output of an LZ77 sequencer.
type SeqStats struct {
	Sequences int64
	Literals  int64
	MatchLen  int64
}

// SeqConfig is satisfied by the pointers to the sequencer configurations of
// the lz package, for instance *lz.HSConfig and *lz.DHSConfig.
type SeqConfig interface {
	lz.Configurator
	ApplyDefaults()
	Verify() error
}

// LZSequences parses the files with an LZ77 sequencer and counts the
// sequences produced. It provides a baseline for the LZW compression ratios.
func LZSequences(files []File, cfg SeqConfig) (stats SeqStats, err error) {
	cfg.ApplyDefaults()
	if err = cfg.Verify(); err != nil {
		return stats, err
	}
	iseq, err := cfg.NewInputSequencer()
	if err != nil {
		return stats, err
	}
	seq := lz.Wrap(nil, iseq)
	var blk lz.Block
	for _, f := range files {
		seq.Reset(bytes.NewReader(f.Data))
		for {
			_, err = seq.Sequence(&blk, 0)
			if err != nil {
				if err == io.EOF {
					break
				}
				return stats, err
			}
			stats.Sequences += int64(len(blk.Sequences))
			stats.Literals += int64(len(blk.Literals))
			for _, s := range blk.Sequences {
				stats.MatchLen += int64(s.MatchLen)
			}
		}
	}
	return stats, nil
}
