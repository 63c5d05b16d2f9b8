package main

// primDOCOL is the code field of every colon-composite word (spec.md
// section 4.1): push the return address, then redirect IP into the word's
// own parameter field, one cell past its code field.
func primDOCOL(vm *VM) {
	vm.pushr(vm.ip)
	vm.ip = vm.w + CellSize
}

// primDODOES backs words built by `<BUILDS ... DOES>` (spec.md section
// 4.2): push the return address, push the address of the word's own data
// area (two cells past the code field: one for the code field itself, one
// for the DOES>-behavior pointer that follows it), then redirect IP to the
// behavior code addressed by the cell right after the code field.
func primDODOES(vm *VM) {
	vm.pushr(vm.ip)
	vm.push(vm.w + 2*CellSize)
	vm.ip = vm.loadCell(vm.w + CellSize)
}

// primConstant is CONSTANT's code field: push the single value cell stored
// in the parameter field and return, without touching the return stack.
func primConstant(vm *VM) {
	vm.push(vm.loadCell(vm.w + CellSize))
}

// primVariable is VARIABLE's code field: push the address of the
// parameter field itself, i.e. the variable's storage cell.
func primVariable(vm *VM) {
	vm.push(vm.w + CellSize)
}

// primStringConstant backs a word defined to push a fixed string, mirroring
// LITSTRING's layout: a length cell followed by that many bytes, stored in
// the parameter field.
func primStringConstant(vm *VM) {
	addr := vm.w + CellSize
	n := vm.loadCell(addr)
	vm.push(addr + CellSize)
	vm.push(n)
}

// primExit pops the return stack into IP (spec.md section 4.1's ";
// implementation): this is the only way a DOCOL/DODOES invocation ever
// unwinds.
func primExit(vm *VM) {
	vm.ip = vm.popr()
}

// primBranch performs an unconditional relative jump: the cell at IP holds
// a byte offset to add to the address of that very offset cell, so IP
// ends up pointing at the branch target.
func primBranch(vm *VM) {
	off := vm.loadCell(vm.ip)
	vm.ip += off
}

// primZeroBranch pops a flag and branches like primBranch only if it is
// false (zero); otherwise it just skips the inline offset cell.
func primZeroBranch(vm *VM) {
	flag := vm.pop()
	if flag == FalseCell {
		off := vm.loadCell(vm.ip)
		vm.ip += off
	} else {
		vm.ip += CellSize
	}
}

// primLit pushes the cell immediately following it in the threaded code
// and steps past it, i.e. LIT.
func primLit(vm *VM) {
	vm.push(vm.loadCell(vm.ip))
	vm.ip += CellSize
}

// primLitString is LIT's string counterpart: a length cell followed by
// that many raw bytes, padded to the next cell boundary so the thread
// resumes aligned. Pushes the address of the bytes, then the length.
func primLitString(vm *VM) {
	n := vm.loadCell(vm.ip)
	vm.ip += CellSize
	addr := vm.ip
	vm.ip = alignUp(vm.ip+n, CellSize)
	vm.push(addr)
	vm.push(n)
}

// primExecute pops an XT and dispatches it exactly once, the same way the
// threaded interpreter would if that XT had appeared inline. INTERPRET
// does not go through it: it runs looked-up words with vm.execute.
func primExecute(vm *VM) {
	xt := vm.pop()
	vm.invoke(xt)
}

// primTick implements `'` as spec.md's interactive tradition has it:
// parse the next space-delimited word from the input and push its XT, or
// fault if it isn't defined.
func primTick(vm *VM) {
	name := vm.readWord()
	link := vm.find(name)
	if link == 0 {
		vm.fault("'", wordNotFoundError{string(name)})
	}
	vm.push(vm.toCFA(link))
}

// primIPFetch pushes the current instruction pointer, chiefly useful for
// tracing and for the `.S`-adjacent debugging words.
func primIPFetch(vm *VM) {
	vm.push(vm.ip)
}

// primHalt is HALT / BYE: a clean, deliberate stop with no error cause.
func primHalt(vm *VM) {
	vm.halt(nil)
}

// primLeftBracket (`[`) switches to interpret state; it is IMMEDIATE so it
// takes effect even while compiling.
func primLeftBracket(vm *VM) {
	vm.state = FalseCell
}

// primRightBracket (`]`) switches to compile state.
func primRightBracket(vm *VM) {
	vm.state = TrueCell
}
