package main

// Return-stack primitives (spec.md section 4.4). These let colon
// definitions stash loop counters and indices across nested calls, same
// as in the reference implementation.

func primToR(vm *VM)   { vm.pushr(vm.pop()) }
func primFromR(vm *VM) { vm.push(vm.popr()) }

func primRSPFetch(vm *VM) { vm.push(vm.ret.SP()) }

func primRSPStore(vm *VM) {
	v := vm.pop()
	if err := vm.ret.SetSP(v); err != nil {
		vm.fault("RSP!", err)
	}
}

func primRDrop(vm *VM) { vm.popr() }
