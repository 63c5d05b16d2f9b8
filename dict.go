package main

// Dictionary entry layout (spec.md section 3):
//
//	link            1 cell   address of previous entry's link field, or 0
//	flags+length    1 byte   high bits IMMEDIATE/HIDDEN, low 6 bits name length
//	name            N bytes  ASCII name
//	NUL             1 byte   terminator (not used by search)
//	padding         0..7     pads header to a cell boundary
//	code field      1 cell   primitive id
//	parameter field 0+ cells

// createHeader allocates a new entry at HERE for name, linking it onto
// LATEST, and returns the link-field address. The code field is left
// unwritten; callers (bootstrap, and `:`, CREATE and the other defining
// words in outer.go) write it next. The new entry is left HIDDEN so that `:` can build its body before
// exposing it to FIND, matching spec.md section 4.3's description of `:`.
func (vm *VM) createHeader(name string) Cell {
	if len(name) > int(lengthMask) {
		name = name[:lengthMask]
	}
	addr := vm.here
	vm.storeCell(addr, vm.latest)
	vm.latest = addr

	flagsLen := byte(len(name))&lengthMask | hiddenBit
	vm.storeByte(addr+CellSize, flagsLen)

	nameAt := addr + CellSize + 1
	for i := 0; i < len(name); i++ {
		vm.storeByte(nameAt+Cell(i), name[i])
	}
	nulAt := nameAt + Cell(len(name))
	vm.storeByte(nulAt, 0)

	end := nulAt + 1
	padded := alignUp(end, CellSize)
	for a := end; a < padded; a++ {
		vm.storeByte(a, 0)
	}
	vm.here = padded
	return addr
}

// comma stores v at HERE and advances HERE by one cell, i.e. `,`.
func (vm *VM) comma(v Cell) {
	vm.storeCell(vm.here, v)
	vm.here += CellSize
}

// cComma stores b at HERE and advances HERE by one byte, i.e. `C,`.
func (vm *VM) cComma(b byte) {
	vm.storeByte(vm.here, b)
	vm.here++
}

func (vm *VM) flagsAddr(link Cell) Cell { return link + CellSize }

func (vm *VM) flags(link Cell) byte { return vm.loadByte(vm.flagsAddr(link)) }

func (vm *VM) nameLen(link Cell) int { return int(vm.flags(link) & lengthMask) }

func (vm *VM) isHidden(link Cell) bool { return vm.flags(link)&hiddenBit != 0 }

func (vm *VM) isImmediate(link Cell) bool { return vm.flags(link)&immediateBit != 0 }

// toCFA converts a link-field address to the code-field address, skipping
// the length byte, name, NUL terminator, and padding to the next cell
// boundary. Returns 0 when given 0.
func (vm *VM) toCFA(link Cell) Cell {
	if link == 0 {
		return 0
	}
	end := link + CellSize + 1 + Cell(vm.nameLen(link)) + 1
	return alignUp(end, CellSize)
}

// toDFA returns the first parameter cell of link's entry. Returns 0 when
// given 0.
func (vm *VM) toDFA(link Cell) Cell {
	cfa := vm.toCFA(link)
	if cfa == 0 {
		return 0
	}
	return cfa + CellSize
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}

func (vm *VM) nameEquals(at Cell, n int, name []byte) bool {
	if n != len(name) {
		return false
	}
	for i := 0; i < n; i++ {
		c := vm.loadByte(at + Cell(i))
		w := name[i]
		if vm.caseSensitive {
			if c != w {
				return false
			}
		} else if upper(c) != upper(w) {
			return false
		}
	}
	return true
}

// find walks the link chain from LATEST looking for name, skipping HIDDEN
// entries, newest first (spec.md section 4.2: "this is the redefinition
// semantics"). Returns the link-field address, or 0 if not found.
func (vm *VM) find(name []byte) Cell {
	for link := vm.latest; link != 0; link = vm.loadCell(link) {
		if vm.isHidden(link) {
			continue
		}
		if vm.nameEquals(link+CellSize+1, vm.nameLen(link), name) {
			return link
		}
	}
	return 0
}

// setImmediate XORs the IMMEDIATE bit of link's flags byte.
func (vm *VM) setImmediate(link Cell) {
	at := vm.flagsAddr(link)
	vm.storeByte(at, vm.loadByte(at)^immediateBit)
}

// setHidden XORs the HIDDEN bit of link's flags byte.
func (vm *VM) setHidden(link Cell) {
	at := vm.flagsAddr(link)
	vm.storeByte(at, vm.loadByte(at)^hiddenBit)
}

// wordName returns the ASCII name stored in link's entry.
func (vm *VM) wordName(link Cell) string {
	n := vm.nameLen(link)
	return string(vm.loadBytes(link+CellSize+1, Cell(n)))
}
