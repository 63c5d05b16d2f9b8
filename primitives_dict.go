package main

// Dictionary-introspection primitives (spec.md section 4.4), thin
// wrappers over dict.go's link-chain helpers.

func primFind(vm *VM) {
	n := vm.pop()
	addr := vm.pop()
	name := vm.loadBytes(addr, n)
	vm.push(vm.find(name))
}

func primToCFA(vm *VM) { vm.push(vm.toCFA(vm.pop())) }
func primToDFA(vm *VM) { vm.push(vm.toDFA(vm.pop())) }

func primImmediateToggle(vm *VM) { vm.setImmediate(vm.pop()) }
func primHiddenToggle(vm *VM)    { vm.setHidden(vm.pop()) }

// primHide is HIDE: toggle the HIDDEN bit of the most recently defined
// entry, spec.md section 4.3's escape hatch for recursive definitions.
func primHide(vm *VM) {
	if vm.latest != 0 {
		vm.setHidden(vm.latest)
	}
}
