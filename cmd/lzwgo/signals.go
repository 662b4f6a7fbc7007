//go:build !windows

package main

import (
	"os"
	"syscall"
)

// termsigs contains a list of signals indicating termination of the
// program. The temporary output file is removed if one of them is received.
var termsigs = []os.Signal{
	syscall.SIGHUP,
	syscall.SIGINT,
	syscall.SIGQUIT,
	syscall.SIGPIPE,
	syscall.SIGTERM,
	syscall.SIGUSR1,
	syscall.SIGUSR2,
	syscall.SIGXCPU,
	syscall.SIGXFSZ,
}
