// Command tune reports the compression ratios and speeds of the LZW flavors
// for the Silesia corpus. The number of LZ77 sequences found by a sequencer
// of the lz package and the sizes produced by deflate and zstd are reported as
// baselines.
package main

import (
	"fmt"
	"log"
	"math"
	"testing"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/kr/pretty"
	"github.com/ulikunitz/lz"
	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/internal/tuning"
)

// result describes the measurement for one flavor.
type result struct {
	Flavor   string
	Ratio    float64
	MBPerSec float64
}

// mbPerSec returns the Megabytes (1 000 000 bytes) per seconds that are
// processed.
func mbPerSec(r testing.BenchmarkResult) float64 {
	if v, ok := r.Extra["MB/s"]; ok {
		return v
	}
	if r.Bytes <= 0 || r.T <= 0 || r.N <= 0 {
		return 0
	}
	return (float64(r.Bytes) * float64(r.N) / 1e6) / r.T.Seconds()
}

func ratio(r testing.BenchmarkResult) float64 {
	if x, ok := r.Extra["c/u"]; ok {
		return x
	}
	return math.NaN()
}

// flavors returns the flavors measured. All GIF literal widths smaller than 8
// cannot compress arbitrary bytes and are left out.
func flavors() []lzw.Flavor {
	fl := []lzw.Flavor{lzw.GIF(8), lzw.TIFF()}
	for w := 9; w <= 16; w++ {
		fl = append(fl, lzw.FixedWidth(w, lzw.LSB))
	}
	return fl
}

// lzWindow is the window size of the LZ77 sequencers. The LZW dictionary
// covers at most 4096 codes, so the sequencers are limited in a similar way.
const lzWindow = 4096

func main() {
	log.SetPrefix("tune: ")
	log.SetFlags(0)
	testing.Init()

	var results []result
	for _, f := range flavors() {
		r := testing.Benchmark(
			writerBenchmark(lzw.WriterConfig{Flavor: f}))
		fmt.Printf("%s\t%s\n", f, r)
		results = append(results, result{
			Flavor:   f.String(),
			Ratio:    ratio(r),
			MBPerSec: mbPerSec(r),
		})
	}

	fmt.Printf("\n\n### Result ###\n\n")
	pretty.Println(results)

	files := silesiaFiles()
	configs := []tuning.SeqConfig{
		&lz.HSConfig{WindowSize: lzWindow, InputLen: 3, HashBits: 15},
		&lz.DHSConfig{WindowSize: lzWindow},
		&lz.BHSConfig{WindowSize: lzWindow, InputLen: 3, HashBits: 15},
	}
	fmt.Printf("\n\n### LZ77 baseline (window 4096) ###\n\n")
	for _, cfg := range configs {
		stats, err := tuning.LZSequences(files, cfg)
		if err != nil {
			log.Fatalf("LZSequences error %s", err)
		}
		pretty.Println(cfg)
		fmt.Printf("%# v\n", pretty.Formatter(stats))
	}

	size := tuning.Size(files)
	fmt.Printf("\n\n### Other codecs ###\n\n")
	n, err := tuning.FlateCompress(files, flate.BestCompression)
	if err != nil {
		log.Fatalf("FlateCompress error %s", err)
	}
	fmt.Printf("flate:9\t%.3f\n", float64(n)/float64(size))
	n, err = tuning.ZstdCompress(files, zstd.SpeedDefault)
	if err != nil {
		log.Fatalf("ZstdCompress error %s", err)
	}
	fmt.Printf("zstd\t%.3f\n", float64(n)/float64(size))
}
