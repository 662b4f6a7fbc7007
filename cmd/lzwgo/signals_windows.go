package main

import "os"

var termsigs = []os.Signal{os.Interrupt}
