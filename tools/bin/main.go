// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bin converts ELF files to flat binaries for the flash of CH32V
// microcontrollers and optionally runs them.
package bin

import (
	"bufio"
	"debug/elf"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/aymanbagabas/go-pty"
	"github.com/buildkite/shellwords"
	"github.com/mattn/go-tty"
)

const usageString = `ELF to flat binary converter.

Usage: %s [flags] <elffile>

The run command gets the path of the binary in place of {bin}, or appended if
it doesn't contain {bin}. Its output, or the
output of the tty device if given, is scanned for test results. The exit code
is 1 if a test failed or the program panicked.

`

var (
	flags = flag.NewFlagSet("bin", flag.ExitOnError)

	infile  string
	outfile = flags.String("o", "", "Output file (default <elffile> with .bin suffix)")
	run     = flags.String("run", os.Getenv("WCHGO_RUN"), "Flash and run the binary with command, defaults to $WCHGO_RUN")
	device  = flags.String("tty", "", "Read the program output from the serial device instead")
)

func usage() {
	fmt.Fprintf(flags.Output(), usageString, "bin")
	flags.PrintDefaults()
}

func Main(args []string) {
	flags.Usage = usage
	flags.Parse(args[1:])

	if flags.NArg() == 1 {
		infile = flags.Arg(0)
	} else {
		flags.Usage()
		os.Exit(1)
	}

	if *outfile == "" {
		name, _ := strings.CutSuffix(infile, ".elf")
		*outfile = name + ".bin"
	}

	elffile, err := elf.Open(infile)
	if err != nil {
		log.Fatalln(err)
	}
	defer elffile.Close()

	data, addr, err := objcopy(elffile)
	if err != nil {
		log.Fatalln("objcopy:", err)
	}
	if addr != elffile.Entry {
		log.Printf("objcopy: binary starts at %#x, entry is %#x", addr, elffile.Entry)
	}

	err = os.WriteFile(*outfile, data, 0644)
	if err != nil {
		log.Fatalln(err)
	}

	if *run != "" {
		os.Exit(runBinary(*run, *outfile, *device))
	}
}

// runBinary executes cmdline in a pseudo terminal, so flashing tools which
// only print their progress to terminals behave the same as when run
// interactively. Returns the exit code.
func runBinary(cmdline, binpath, ttypath string) int {
	args, err := shellwords.Split(cmdline)
	if err != nil {
		log.Fatalln("run:", err)
	}
	if len(args) == 0 {
		log.Fatalln("run: empty command")
	}
	args = expandBin(args, binpath)

	p, err := pty.New()
	if err != nil {
		log.Fatalln("open pty:", err)
	}
	defer p.Close()

	cmd := p.Command(args[0], args[1:]...)
	err = cmd.Start()
	if err != nil {
		log.Fatalln("start command:", err)
	}

	var output io.ReadCloser = p
	if ttypath != "" {
		dev, err := tty.OpenDevice(ttypath)
		if err != nil {
			log.Fatalln("open tty:", err)
		}
		restore := dev.MustRaw()
		defer restore()

		go io.Copy(os.Stdout, p)
		output = dev.Input()
	}

	sigintr := make(chan os.Signal, 1)
	signal.Notify(sigintr, os.Interrupt)
	stop := func() {
		err := processGroupKill(cmd.Process)
		if err != nil {
			log.Println(err)
		}
	}
	go func() {
		<-sigintr
		stop()
		os.Exit(130)
	}()

	code := scan(output, log.Default().Writer(), func() {
		// give panic() time to print the stacktrace
		time.Sleep(500 * time.Millisecond)
		output.Close()
		stop()
	})
	cmd.Wait()
	return code
}

// expandBin replaces {bin} in args with binpath, or appends binpath if there
// is none.
func expandBin(args []string, binpath string) []string {
	expanded := false
	for i, arg := range args {
		if strings.Contains(arg, "{bin}") {
			args[i] = strings.ReplaceAll(arg, "{bin}", binpath)
			expanded = true
		}
	}
	if !expanded {
		args = append(args, binpath)
	}
	return args
}

// scan copies the lines read from r to w until r is closed. Once the result
// of a test run is seen, done is called in a new goroutine. Returns 1 if the
// tests failed.
func scan(r io.Reader, w io.Writer, done func()) int {
	scanner := bufio.NewScanner(r)
	exiting := false
	code := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		fmt.Fprintln(w, line)
		if exiting {
			continue
		}
		switch classify(line) {
		case failed:
			code = 1
			fallthrough
		case passed:
			exiting = true
			go done()
		}
	}
	return code
}

type result int

const (
	running result = iota
	passed
	failed
)

func classify(line string) result {
	switch {
	case strings.HasPrefix(line, "fatal error:"),
		strings.HasPrefix(line, "panic:"),
		strings.HasPrefix(line, "Unhandled "),
		line == "FAIL":
		return failed
	case line == "PASS":
		return passed
	}
	return running
}
