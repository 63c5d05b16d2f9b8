package main

// Arithmetic primitives (spec.md section 4.4). Division and modulus
// truncate toward zero, matching both Go's native / and % on signed
// integers and original_source's C semantics (spec.md section 9's open
// question, resolved in SPEC_FULL.md).

func primIncr(vm *VM) { vm.push(vm.pop() + 1) }
func primDecr(vm *VM) { vm.push(vm.pop() - 1) }

func primCellIncr(vm *VM) { vm.push(vm.pop() + CellSize) }
func primCellDecr(vm *VM) { vm.push(vm.pop() - CellSize) }

func primAdd(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	vm.push(a + b)
}

func primSub(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	vm.push(a - b)
}

func primMul(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	vm.push(a * b)
}

func primDiv(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	if b == 0 {
		vm.fault("/", errDivideByZero)
	}
	vm.push(a / b)
}

func primMod(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	if b == 0 {
		vm.fault("MOD", errDivideByZero)
	}
	vm.push(a % b)
}

func primNegate(vm *VM) { vm.push(-vm.pop()) }

func primDivMod(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	if b == 0 {
		vm.fault("/MOD", errDivideByZero)
	}
	vm.push(a % b)
	vm.push(a / b)
}
