package main

// Memory and dictionary-building primitives (spec.md section 4.4).
//
// primMinusStoreBug deliberately implements `-!` as addition, not
// subtraction: original_source's dictionary.c defines it that way (a typo
// that shipped and was never fixed), and spec.md section 9 directs
// preserving it rather than "correcting" it.

func primStore(vm *VM) {
	addr := vm.pop()
	v := vm.pop()
	vm.storeCell(addr, v)
}

func primFetch(vm *VM) {
	addr := vm.pop()
	vm.push(vm.loadCell(addr))
}

func primPlusStore(vm *VM) {
	addr := vm.pop()
	v := vm.pop()
	vm.storeCell(addr, vm.loadCell(addr)+v)
}

func primMinusStoreBug(vm *VM) {
	addr := vm.pop()
	v := vm.pop()
	vm.storeCell(addr, vm.loadCell(addr)+v)
}

func primCStore(vm *VM) {
	addr := vm.pop()
	v := vm.pop()
	vm.storeByte(addr, byte(v))
}

func primCFetch(vm *VM) {
	addr := vm.pop()
	vm.push(Cell(vm.loadByte(addr)))
}

// C@C!: ( source dest -- source+1 dest+1 )
func primCFetchCStore(vm *VM) {
	dst := vm.pop()
	src := vm.pop()
	vm.storeByte(dst, vm.loadByte(src))
	vm.push(src + 1)
	vm.push(dst + 1)
}

func primCMove(vm *VM) {
	n := vm.pop()
	dst := vm.pop()
	src := vm.pop()
	if n < 0 {
		vm.fault("CMOVE", errNegativeCount)
	}
	if err := vm.mem.Copy(uint(dst), uint(src), uint(n)); err != nil {
		vm.fault("CMOVE", err)
	}
}

func primFill(vm *VM) {
	b := vm.pop()
	n := vm.pop()
	addr := vm.pop()
	if n < 0 {
		vm.fault("FILL", errNegativeCount)
	}
	if err := vm.mem.Fill(uint(addr), uint(n), byte(b)); err != nil {
		vm.fault("FILL", err)
	}
}

func primErase(vm *VM) {
	n := vm.pop()
	addr := vm.pop()
	if n < 0 {
		vm.fault("ERASE", errNegativeCount)
	}
	if err := vm.mem.Fill(uint(addr), uint(n), 0); err != nil {
		vm.fault("ERASE", err)
	}
}

func primComma(vm *VM) { vm.comma(vm.pop()) }

func primCComma(vm *VM) { vm.cComma(byte(vm.pop())) }

func primAllot(vm *VM) {
	n := vm.pop()
	vm.here += n
}
