// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lzwgo compresses and decompresses raw LZW code streams in the GIF,
// TIFF and fixed width flavors.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/ogier/pflag"
	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/xlog"
)

const usageStr = `Usage: lzwgo [OPTION]... [FILE]...
Compress or uncompress FILEs as raw LZW code streams (by default, compress
FILES in place).

  -c, --stdout       write to standard output and don't delete input files
  -d, --decompress   force decompression
  -f, --force        force overwrite of output file
  -F, --flavor=SPEC  code stream flavor: gif, gif:<2..8>, tiff,
                     fixed:<9..16>[,lsb|,msb]; default is tiff
  -h, --help         give this help
  -k, --keep         keep (don't delete) input files
  -q, --quiet        suppress all warnings
  -v, --verbose      verbose mode
  -z, --compress     force compression

With no file, or when FILE is -, read standard input.
`

func usage(w io.Writer) {
	fmt.Fprint(w, usageStr)
}

// options stores the command line options of lzwgo.
type options struct {
	stdout     bool
	decompress bool
	force      bool
	keep       bool
	flavor     lzw.Flavor
}

// logger is used for all warnings and debug messages.
var logger xlog.Logger

func main() {
	// setup logger
	cmdName := filepath.Base(os.Args[0])
	log.SetPrefix(fmt.Sprintf("%s: ", cmdName))
	log.SetFlags(0)
	logger = log.New(os.Stderr, fmt.Sprintf("%s: ", cmdName), 0)

	// initialize flags
	pflag.CommandLine = pflag.NewFlagSet(cmdName, pflag.ExitOnError)
	pflag.SetInterspersed(true)
	pflag.Usage = func() { usage(os.Stderr); os.Exit(1) }
	var (
		help       = pflag.BoolP("help", "h", false, "")
		stdout     = pflag.BoolP("stdout", "c", false, "")
		decompress = pflag.BoolP("decompress", "d", false, "")
		compress   = pflag.BoolP("compress", "z", false, "")
		force      = pflag.BoolP("force", "f", false, "")
		keep       = pflag.BoolP("keep", "k", false, "")
		quiet      = pflag.BoolP("quiet", "q", false, "")
		verbose    = pflag.BoolP("verbose", "v", false, "")
		flavorSpec = pflag.StringP("flavor", "F", "tiff", "")
	)
	pflag.Parse()

	if *help {
		usage(os.Stdout)
		os.Exit(0)
	}
	switch {
	case *quiet:
		xlog.CurrentLevel = xlog.Silent
	case *verbose:
		xlog.CurrentLevel = xlog.Debugging
	}
	if *compress && *decompress {
		log.Fatal("options -z and -d exclude each other")
	}
	flavor, err := lzw.ParseFlavor(*flavorSpec)
	if err != nil {
		log.Fatal(err)
	}
	opts := &options{
		stdout:     *stdout,
		decompress: *decompress,
		force:      *force,
		keep:       *keep,
		flavor:     flavor,
	}

	args := pflag.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}
	xlog.Debugf(logger, "flavor %s", opts.flavor)

	exit := 0
	for _, path := range args {
		if !processFile(path, opts) {
			exit = 1
		}
	}
	os.Exit(exit)
}
