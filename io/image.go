package io

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadMem reads a .mem image: one hex byte per line, optional
// "#" or "//" comments and blank lines. The first byte lands at
// address zero.
func LoadMem(r io.Reader) (image []uint8, err error) {
	scanner := bufio.NewScanner(r)
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if at := strings.Index(line, "#"); at >= 0 {
			line = line[:at]
		}
		if at := strings.Index(line, "//"); at >= 0 {
			line = line[:at]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		value, perr := strconv.ParseUint(line, 16, 8)
		if perr != nil {
			err = errors.Join(ErrImageByte, fmt.Errorf("line %d: %q", lineno, line))
			return
		}

		image = append(image, uint8(value))
	}

	err = scanner.Err()

	return
}

// LoadHex reads Intel HEX records into a full-size image, returning
// the highest address written. Only data (00) and end-of-file (01)
// records are understood, which is all the assembler toolchain emits.
func LoadHex(r io.Reader) (image []uint8, top uint16, err error) {
	image = make([]uint8, MemorySize)

	scanner := bufio.NewScanner(r)
	lineno := 0

	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, ":") {
			continue
		}

		var record []byte
		record, err = hexRecord(line)
		if err != nil {
			err = errors.Join(err, fmt.Errorf("line %d", lineno))
			return
		}

		count := int(record[0])
		addr := uint16(record[1])<<8 | uint16(record[2])
		kind := record[3]

		if len(record) != count+5 {
			err = errors.Join(ErrHexRecord, fmt.Errorf("line %d", lineno))
			return
		}

		switch kind {
		case 0x00:
			for n, value := range record[4 : 4+count] {
				at := addr + uint16(n)
				if int(at) >= MemorySize {
					err = ErrImageOverflow
					return
				}
				image[at] = value
				if at > top {
					top = at
				}
			}
		case 0x01:
			return
		}
	}

	err = scanner.Err()

	return
}

// hexRecord decodes one ":..." line into bytes and verifies the
// two's-complement checksum.
func hexRecord(line string) (record []byte, err error) {
	digits := line[1:]
	if len(digits) < 10 || len(digits)%2 != 0 {
		err = ErrHexRecord
		return
	}

	record = make([]byte, len(digits)/2)
	var sum uint8
	for n := range record {
		value, perr := strconv.ParseUint(digits[n*2:n*2+2], 16, 8)
		if perr != nil {
			record = nil
			err = ErrHexRecord
			return
		}
		record[n] = uint8(value)
		sum += uint8(value)
	}

	if sum != 0 {
		record = nil
		err = ErrHexChecksum
	}

	return
}
