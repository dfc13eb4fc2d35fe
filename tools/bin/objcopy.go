// Copyright 2024 The Embedded Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bin

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"os"

	"golang.org/x/exp/slices"
)

type section struct {
	name string
	addr uint64
	data []byte
}

// objcopy returns the content of all allocated sections with initial data,
// laid out by their load address, and the address of the first byte.
func objcopy(f *elf.File) ([]byte, uint64, error) {
	var sections []section
	for _, s := range f.Sections {
		if s.Type != elf.SHT_PROGBITS || s.Flags&elf.SHF_ALLOC == 0 {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, 0, err
		}
		sections = append(sections, section{s.Name, loadAddr(f, s), data})
	}
	return flatten(sections)
}

// loadAddr returns the address a section is stored at in flash. Initialized
// data is copied to RAM at startup, so it's virtual and load address differ.
func loadAddr(f *elf.File, s *elf.Section) uint64 {
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD || p.Filesz == 0 {
			continue
		}
		if s.Offset >= p.Off && s.Offset < p.Off+p.Filesz {
			return p.Paddr + s.Offset - p.Off
		}
	}
	return s.Addr
}

const padByte = 0xff // erased flash

func flatten(sections []section) ([]byte, uint64, error) {
	if len(sections) == 0 {
		return nil, 0, errors.New("no sections to copy")
	}
	slices.SortFunc(sections, func(a, b section) int {
		switch {
		case a.addr < b.addr:
			return -1
		case a.addr > b.addr:
			return 1
		}
		return 0
	})

	start := sections[0].addr
	var buf bytes.Buffer
	for i, s := range sections {
		pos := start + uint64(buf.Len())
		if s.addr < pos {
			return nil, 0, fmt.Errorf("section %s overlaps %s", s.name, sections[i-1].name)
		}
		if gap := int(s.addr - pos); gap > 0 {
			if gap > 0x10000 {
				fmt.Fprintf(os.Stderr, "objcopy: %d bytes padding before section '%s'\n", gap, s.name)
			}
			buf.Write(bytes.Repeat([]byte{padByte}, gap))
		}
		buf.Write(s.data)
	}
	return buf.Bytes(), start, nil
}
