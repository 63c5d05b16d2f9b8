// Package mem implements the fixed-capacity, byte-addressable memory arena
// backing the dictionary area; the parameter and return stacks are not
// kept in it. Unlike a growable
// heap, an Arena is sized once at construction and never resized; addresses
// past its end are reported as errors rather than silently extending it.
package mem

import (
	"encoding/binary"
	"fmt"
)

// CellSize is the width in bytes of one machine Cell.
const CellSize = 8

// BoundsError indicates an access past the end of an Arena.
type BoundsError struct {
	Addr uint
	Size uint
	Op   string
}

func (e BoundsError) Error() string {
	return fmt.Sprintf("%s @%d exceeds arena size %d", e.Op, e.Addr, e.Size)
}

// Arena is a preallocated, zero-filled span of bytes addressed by byte
// offset. Cell-granular loads and stores use little-endian byte order
// via encoding/binary so that the same bit pattern round-trips through
// Cell and byte views of the same address.
type Arena struct {
	bytes []byte
}

// NewArena preallocates an Arena of the given size in bytes.
func NewArena(size uint) *Arena {
	return &Arena{bytes: make([]byte, size)}
}

// Size returns the Arena's fixed capacity in bytes.
func (a *Arena) Size() uint { return uint(len(a.bytes)) }

// Byte loads a single byte at addr.
func (a *Arena) Byte(addr uint) (byte, error) {
	if addr >= uint(len(a.bytes)) {
		return 0, BoundsError{addr, a.Size(), "byte load"}
	}
	return a.bytes[addr], nil
}

// SetByte stores a single byte at addr.
func (a *Arena) SetByte(addr uint, v byte) error {
	if addr >= uint(len(a.bytes)) {
		return BoundsError{addr, a.Size(), "byte store"}
	}
	a.bytes[addr] = v
	return nil
}

// Cell loads a cell-width signed integer at addr.
func (a *Arena) Cell(addr uint) (int64, error) {
	if addr+CellSize > uint(len(a.bytes)) {
		return 0, BoundsError{addr, a.Size(), "cell load"}
	}
	return int64(binary.LittleEndian.Uint64(a.bytes[addr:])), nil
}

// SetCell stores a cell-width signed integer at addr.
func (a *Arena) SetCell(addr uint, v int64) error {
	if addr+CellSize > uint(len(a.bytes)) {
		return BoundsError{addr, a.Size(), "cell store"}
	}
	binary.LittleEndian.PutUint64(a.bytes[addr:], uint64(v))
	return nil
}

// Bytes returns a read-only view of count bytes starting at addr, for bulk
// operations like name comparison and TELL.
func (a *Arena) Bytes(addr, count uint) ([]byte, error) {
	if addr+count > uint(len(a.bytes)) {
		return nil, BoundsError{addr, a.Size(), "bytes load"}
	}
	return a.bytes[addr : addr+count], nil
}

// Fill sets count bytes starting at addr to v.
func (a *Arena) Fill(addr, count uint, v byte) error {
	if addr+count > uint(len(a.bytes)) {
		return BoundsError{addr, a.Size(), "fill"}
	}
	buf := a.bytes[addr : addr+count]
	for i := range buf {
		buf[i] = v
	}
	return nil
}

// Copy copies count bytes from src to dst, as CMOVE does; the ranges may
// overlap only in the forward direction (dst <= src), matching the host
// semantics of a forward byte-copy-and-increment loop.
func (a *Arena) Copy(dst, src, count uint) error {
	if dst+count > uint(len(a.bytes)) {
		return BoundsError{dst, a.Size(), "copy dst"}
	}
	if src+count > uint(len(a.bytes)) {
		return BoundsError{src, a.Size(), "copy src"}
	}
	copy(a.bytes[dst:dst+count], a.bytes[src:src+count])
	return nil
}
