package main

// Stack manipulation primitives (spec.md section 4.4). Each operates on
// the parameter stack via vm.push/vm.pop unless named otherwise.

func primDrop(vm *VM) { vm.pop() }

func primSwap(vm *VM) {
	a := vm.pop()
	b := vm.pop()
	vm.push(a)
	vm.push(b)
}

func primDup(vm *VM) {
	a := vm.pop()
	vm.push(a)
	vm.push(a)
}

func primOver(vm *VM) {
	a := vm.pop()
	b := vm.pop()
	vm.push(b)
	vm.push(a)
	vm.push(b)
}

// ROT: (n1 n2 n3 -- n3 n1 n2)
func primRot(vm *VM) {
	c := vm.pop()
	b := vm.pop()
	a := vm.pop()
	vm.push(c)
	vm.push(a)
	vm.push(b)
}

// -ROT: (n1 n2 n3 -- n2 n3 n1)
func primNRot(vm *VM) {
	c := vm.pop()
	b := vm.pop()
	a := vm.pop()
	vm.push(b)
	vm.push(c)
	vm.push(a)
}

func prim2Drop(vm *VM) {
	vm.pop()
	vm.pop()
}

func prim2Dup(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	vm.push(a)
	vm.push(b)
	vm.push(a)
	vm.push(b)
}

func prim2Swap(vm *VM) {
	d := vm.pop()
	c := vm.pop()
	b := vm.pop()
	a := vm.pop()
	vm.push(c)
	vm.push(d)
	vm.push(a)
	vm.push(b)
}

func primQDup(vm *VM) {
	a := vm.pop()
	vm.push(a)
	if a != FalseCell {
		vm.push(a)
	}
}

// primPick pops an index n and pushes a copy of the cell n positions below
// the (now-shrunk) top, per spec.md's "PICK indexes from the stack as it
// stands after popping n" convention.
func primPick(vm *VM) {
	n := vm.pop()
	v, err := vm.data.Pick(int(n))
	if err != nil {
		vm.fault("PICK", err)
	}
	vm.push(v)
}

// primStick pops an index n and a value, and overwrites the cell n
// positions below the top with it.
func primStick(vm *VM) {
	n := vm.pop()
	v := vm.pop()
	if err := vm.data.Stick(int(n), v); err != nil {
		vm.fault("STICK", err)
	}
}

// primNTuck pops an index n and a value, and inserts the value at depth n,
// shifting shallower cells up.
func primNTuck(vm *VM) {
	n := vm.pop()
	v := vm.pop()
	if err := vm.data.Insert(int(n), v); err != nil {
		vm.fault("NTUCK", err)
	}
}

func primDSPFetch(vm *VM) { vm.push(vm.data.SP()) }

func primDSPStore(vm *VM) {
	v := vm.pop()
	if err := vm.data.SetSP(v); err != nil {
		vm.fault("DSP!", err)
	}
}
