package main

// Comparison and bitwise primitives (spec.md section 4.4). Results use
// the canonical boolean encoding: 0 for false, all-ones for true.

func primEq(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(boolCell(a == b)) }
func primNe(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(boolCell(a != b)) }
func primLt(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(boolCell(a < b)) }
func primGt(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(boolCell(a > b)) }
func primLe(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(boolCell(a <= b)) }
func primGe(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(boolCell(a >= b)) }

func primZEq(vm *VM) { vm.push(boolCell(vm.pop() == 0)) }
func primZNe(vm *VM) { vm.push(boolCell(vm.pop() != 0)) }
func primZLt(vm *VM) { vm.push(boolCell(vm.pop() < 0)) }
func primZGt(vm *VM) { vm.push(boolCell(vm.pop() > 0)) }
func primZLe(vm *VM) { vm.push(boolCell(vm.pop() <= 0)) }
func primZGe(vm *VM) { vm.push(boolCell(vm.pop() >= 0)) }

func primAnd(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(a & b) }
func primOr(vm *VM)  { b := vm.pop(); a := vm.pop(); vm.push(a | b) }
func primXor(vm *VM) { b := vm.pop(); a := vm.pop(); vm.push(a ^ b) }

func primInvert(vm *VM) { vm.push(^vm.pop()) }
