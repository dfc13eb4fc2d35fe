//go:build ignore

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"log"
	"os"
	"text/template"
)

// The register addresses must match the constants in csr.go.
var registers = []register{
	{"MSTATUS", 0x300, true},
	{"MISA", 0x301, false},
	{"MIE", 0x304, true},
	{"MTVEC", 0x305, true},
	{"MSCRATCH", 0x340, true},
	{"MEPC", 0x341, true},
	{"MCAUSE", 0x342, true},
	{"MTVAL", 0x343, true},
	{"MIP", 0x344, true},
	{"MCYCLE", 0xb00, true},
	{"MINSTRET", 0xb02, true},
	{"MCYCLEH", 0xb80, true},
	{"MINSTRETH", 0xb82, true},
	{"MVENDORID", 0xf11, false},
	{"MARCHID", 0xf12, false},
	{"MIMPID", 0xf13, false},
	{"MHARTID", 0xf14, false},
	{"DEBUGCR", 0x7c0, true},
	{"INTSYSCR", 0x804, true},
}

type register struct {
	Name     string
	Addr     uint32
	Writable bool
}

var goTemplate = `// Code generated by mkcsr.go; DO NOT EDIT.

//go:build tinygo

package csr

import "device/riscv"

// Load returns the value of r. Loading a register the core doesn't implement
// raises an illegal instruction exception.
func (r Register) Load() uint32 {
	switch r {
{{- range . }}
	case {{ .Name }}:
		return uint32(riscv.CSR({{ .Name }}).Get())
{{- end }}
	}
	illegal()
	return 0
}

// Store writes v to r. Storing to a register that is read-only or not
// implemented raises an illegal instruction exception.
func (r Register) Store(v uint32) {
	switch r {
{{- range . }}{{ if .Writable }}
	case {{ .Name }}:
		riscv.CSR({{ .Name }}).Set(uintptr(v))
{{- end }}{{ end }}
	default:
		illegal()
	}
}

func illegal() {
	riscv.Asm("unimp")
}
`

func generate(name, text string) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		log.Fatalln(err)
	}

	source := bytes.NewBuffer(nil)
	err = tmpl.Execute(source, registers)
	if err != nil {
		log.Fatalln(err)
	}

	out, err := format.Source(source.Bytes())
	if err != nil {
		log.Fatalln(err)
	}
	err = os.WriteFile(name, out, 0644)
	if err != nil {
		log.Fatalln(err)
	}
}

func main() {
	log.Default().SetFlags(log.Lshortfile)
	if len(os.Args) != 1 {
		fmt.Printf("Usage: %v\n", os.Args[0])
		os.Exit(1)
	}

	generate("csr_gen.go", goTemplate)
}
