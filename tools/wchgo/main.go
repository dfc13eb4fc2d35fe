package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/clktmr/ch32v/tools/bin"
)

const usageString = `wchgo is a tool for development of CH32V firmware.

Usage:

	%s <command> [arguments]

The commands are:

	bin      convert elf to flat binaries, flash and run them
`

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), usageString, os.Args[0])
	flag.PrintDefaults()
}

func main() {
	log.Default().SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	switch flag.Arg(0) {
	case "bin":
		bin.Main(flag.Args())
	default:
		fmt.Fprintf(flag.CommandLine.Output(), "unknown command: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(1)
	}
}
