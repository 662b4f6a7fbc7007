// Copyright 2014-2025 Ulrich Kunitz. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/ulikunitz/lzw"
	"github.com/ulikunitz/lzw/xlog"
)

type packer interface {
	outputPaths(path string) (outputPath, tmpPath string, err error)
	pack(w io.Writer, r io.Reader, opts *options) (n int64, err error)
}

const lzwSuffix = ".lzw"

type lzwPacker struct{}

func (p lzwPacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if path == "" {
		err = errors.New("path is empty")
		return
	}
	if strings.HasSuffix(path, lzwSuffix) {
		err = fmt.Errorf("path %s has suffix %s -- ignored",
			path, lzwSuffix)
		return
	}
	out = path + lzwSuffix
	tmp = out + ".pack"
	return
}

func (p lzwPacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	bw := bufio.NewWriter(w)
	cfg := lzw.WriterConfig{Flavor: opts.flavor, Logger: logger}
	lw, err := lzw.NewWriterConfig(bw, cfg)
	if err != nil {
		return
	}
	n, err = io.Copy(lw, r)
	if err != nil {
		return
	}
	if err = lw.Close(); err != nil {
		return
	}
	err = bw.Flush()
	return
}

type lzwUnpacker struct{}

func (u lzwUnpacker) outputPaths(path string) (out, tmp string, err error) {
	if path == "-" {
		return "-", "-", nil
	}
	if !strings.HasSuffix(path, lzwSuffix) {
		err = fmt.Errorf("path %s has no suffix %s",
			path, lzwSuffix)
		return
	}
	base := filepath.Base(path)
	if base == lzwSuffix {
		err = fmt.Errorf(
			"path %s has only suffix %s as filename",
			path, lzwSuffix)
		return
	}
	out = path[:len(path)-len(lzwSuffix)]
	tmp = out + ".unpack"
	return
}

// pack actually unpacks.
func (u lzwUnpacker) pack(w io.Writer, r io.Reader, opts *options) (n int64, err error) {
	cfg := lzw.ReaderConfig{Flavor: opts.flavor, Logger: logger}
	lr, err := lzw.NewReaderConfig(bufio.NewReader(r), cfg)
	if err != nil {
		return
	}
	return io.Copy(w, lr)
}

// signalHandler removes the temporary file if the program is terminated by
// a signal. The returned quit channel must be closed to terminate the
// handler go routine.
func signalHandler(tmpPath string) chan<- struct{} {
	quit := make(chan struct{})
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, termsigs...)
	go func() {
		select {
		case <-quit:
			signal.Stop(sigch)
			return
		case <-sigch:
			if tmpPath != "-" {
				os.Remove(tmpPath)
			}
			os.Exit(7)
		}
	}()
	return quit
}

// errNotRegular is reported for directories, devices and symbolic links.
var errNotRegular = errors.New("not a regular file")

// openInput opens the file to compress or decompress. The path "-" selects
// standard input. Only regular files are accepted.
func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, &os.PathError{Op: "open", Path: path, Err: errNotRegular}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// The path may have been replaced after the Lstat call.
	if fi, err = f.Stat(); err != nil {
		f.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &os.PathError{Op: "open", Path: path, Err: errNotRegular}
	}
	return f, nil
}

// createOutput creates the temporary output file. The path "-" selects
// standard output.
func createOutput(tmpPath string, force bool) (*os.File, error) {
	if tmpPath == "-" {
		return os.Stdout, nil
	}
	if force {
		os.Remove(tmpPath)
	}
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0666)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, &os.PathError{Op: "create", Path: tmpPath,
			Err: errNotRegular}
	}
	return f, nil
}

// closeFile closes f unless it is standard input or output. The close error
// is stored in *err if no other error has been recorded.
func closeFile(f *os.File, err *error) {
	if f == os.Stdin || f == os.Stdout {
		return
	}
	if cerr := f.Close(); *err == nil {
		*err = cerr
	}
}

func packFile(pck packer, path, tmpPath string, opts *options) (err error) {
	r, err := openInput(path)
	if err != nil {
		return err
	}
	defer closeFile(r, &err)
	w, err := createOutput(tmpPath, opts.force)
	if err != nil {
		return err
	}
	defer closeFile(w, &err)

	n, err := pck.pack(w, r, opts)
	xlog.Debugf(logger, "%s: %d bytes processed", path, n)
	return err
}

// userPathError represents a path error presentable to a user. In
// difference to os.PathError it removes the information of the
// operation returning the error.
type userPathError struct {
	Path string
	Err  error
}

// Error provides the error string for the path error.
func (e *userPathError) Error() string {
	return e.Path + ": " + e.Err.Error()
}

// userError removes the operation from a path error. The information that
// lstat failed is not relevant for users of lzwgo.
func userError(err error) error {
	var pe *os.PathError
	if !errors.As(err, &pe) {
		return err
	}
	return &userPathError{Path: pe.Path, Err: pe.Err}
}

// processFile compresses or decompresses a single file. It reports whether
// the operation has been successful.
func processFile(path string, opts *options) bool {
	var pck packer
	if opts.decompress {
		pck = lzwUnpacker{}
	} else {
		pck = lzwPacker{}
	}
	outputPath, tmpPath, err := pck.outputPaths(path)
	if err != nil {
		xlog.Warn(logger, userError(err))
		return false
	}
	if opts.stdout {
		outputPath, tmpPath = "-", "-"
	}
	if outputPath != "-" {
		_, err = os.Lstat(outputPath)
		if err == nil && !opts.force {
			xlog.Warnf(logger, "file %s exists", outputPath)
			return false
		}
	}
	defer func() {
		if tmpPath != "-" {
			os.Remove(tmpPath)
		}
	}()
	quit := signalHandler(tmpPath)
	defer close(quit)

	if err = packFile(pck, path, tmpPath, opts); err != nil {
		xlog.Warn(logger, userError(err))
		return false
	}
	if tmpPath != "-" && outputPath != "-" {
		if err = os.Rename(tmpPath, outputPath); err != nil {
			xlog.Warn(logger, userError(err))
			return false
		}
	}
	if !opts.keep && !opts.stdout && path != "-" {
		if err = os.Remove(path); err != nil {
			xlog.Warn(logger, userError(err))
			return false
		}
	}
	return true
}
