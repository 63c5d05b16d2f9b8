package main

import "fmt"

// wordBufAddr is the reserved dictionary-area address of the WORD/TELL
// scratch buffer, kept at the very bottom of the arena so its contents
// are addressable by other primitives (FIND, NUMBERIN, TELL) the same
// way a word's own parameter field is. The dictionary proper starts just
// past it; see New's HERE initialization in api.go.
const wordBufAddr Cell = 0

// readWord skips leading whitespace on the current input and collects the
// following run of non-whitespace bytes into vm.wordBuf, mirroring
// spec.md section 4.3's WORD. End-of-file on the base input frame halts
// the VM cleanly, the same as typing BYE.
func (vm *VM) readWord() []byte {
	var r rune
	var err error
	for {
		r, err = vm.src.ReadRune()
		if err != nil {
			vm.halt(nil)
		}
		if r == '\\' {
			vm.skipLine()
			continue
		}
		if !isSpace(byte(r)) {
			break
		}
	}
	vm.wordLen = 0
	for {
		if vm.wordLen < len(vm.wordBuf)-1 {
			vm.wordBuf[vm.wordLen] = byte(r)
			vm.wordLen++
		} else {
			vm.logf("?", "WORD overflow, truncating at %d bytes", len(vm.wordBuf)-1)
		}
		r, err = vm.src.ReadRune()
		if err != nil || isSpace(byte(r)) {
			break
		}
	}
	return vm.wordBuf[:vm.wordLen]
}

func (vm *VM) skipLine() {
	for {
		r, err := vm.src.ReadRune()
		if err != nil || r == '\n' {
			return
		}
	}
}

// primWord is WORD: read the next token and push its (addr, len) as a
// counted string living in the dictionary area's reserved scratch buffer.
func primWord(vm *VM) {
	w := vm.readWord()
	for i, b := range w {
		vm.storeByte(wordBufAddr+Cell(i), b)
	}
	vm.push(wordBufAddr)
	vm.push(Cell(len(w)))
}

// parseIntIn converts bs as a signed integer in the given base, returning
// the value and the count of trailing bytes that could not be converted
// (0 means the whole token parsed).
func parseIntIn(bs []byte, base Cell) (Cell, int) {
	neg := false
	i := 0
	if i < len(bs) && (bs[i] == '-' || bs[i] == '+') {
		neg = bs[i] == '-'
		i++
	}
	start := i
	var val Cell
	for ; i < len(bs); i++ {
		d := digitValue(bs[i], base)
		if d < 0 {
			break
		}
		val = val*base + d
	}
	if i == start {
		return 0, len(bs) // no digits at all
	}
	if neg {
		val = -val
	}
	return val, len(bs) - i
}

// primNumber is NUMBER: attempt to convert the word most recently read by
// WORD into an integer in the current BASE, pushing the value and a
// success flag.
func primNumber(vm *VM) {
	val, unconverted := parseIntIn(vm.wordBuf[:vm.wordLen], vm.baseVal())
	vm.push(val)
	vm.push(boolCell(unconverted == 0 && vm.wordLen > 0))
}

// interpretOne performs a single WORD/FIND/compile-or-execute step of the
// outer interpreter (spec.md section 4.3): the heart of both INTERPRET
// and QUIT's driving loop.
func (vm *VM) interpretOne() {
	word := vm.readWord()
	if len(word) == 0 {
		return
	}
	name := make([]byte, len(word))
	copy(name, word)

	if link := vm.find(name); link != 0 {
		xt := vm.toCFA(link)
		if vm.state != FalseCell && !vm.isImmediate(link) {
			vm.comma(xt)
		} else {
			vm.execute(xt)
		}
		return
	}

	base := vm.baseVal()
	if base < 1 || base > 36 {
		vm.fault("INTERPRET", fmt.Errorf("invalid BASE %d", int64(base)))
	}
	val, unconverted := parseIntIn(name, base)
	if unconverted != 0 {
		vm.fault("INTERPRET", wordNotFoundError{string(name)})
	}
	if vm.state != FalseCell {
		vm.comma(vm.litXT)
		vm.comma(val)
	} else {
		vm.push(val)
	}
}

// primInterpret is INTERPRET exposed as an ordinary word, for definitions
// that want to re-enter the outer interpreter explicitly.
func primInterpret(vm *VM) { vm.interpretOne() }

// primQuit is QUIT: reset the return stack and loop interpretOne forever,
// recovering a faultError once per iteration so a runtime fault (bad
// BASE, stack range error, divide by zero, undefined word) returns
// control to the prompt instead of terminating the process. haltError and
// any other panic propagate to Run's top-level recover.
func primQuit(vm *VM) {
	_ = vm.ret.SetSP(0)
	for {
		vm.quitStep()
	}
}

func (vm *VM) quitStep() {
	defer func() {
		if r := recover(); r != nil {
			if fe, ok := r.(faultError); ok {
				vm.logf("!", "%v", fe)
				fmt.Fprintf(vm.out, "\n%v ?\n", fe)
				if vm.out != nil {
					_ = vm.out.Flush()
				}
				return
			}
			panic(r)
		}
	}()
	if vm.state == FalseCell {
		fmt.Fprint(vm.out, vm.prompt)
	} else {
		fmt.Fprint(vm.out, vm.compilePrompt)
	}
	_ = vm.out.Flush()
	vm.interpretOne()
}

// primColon is `:`: read the new word's name, create its (initially
// hidden) header, write DOCOL as its code field, and enter compile state.
func primColon(vm *VM) {
	name := vm.readWord()
	vm.createHeader(string(name))
	vm.comma(Cell(pDOCOL))
	vm.state = TrueCell
}

// primSemi is `;`, IMMEDIATE: compile a call to EXIT, reveal the
// definition by clearing HIDDEN, and return to interpret state.
func primSemi(vm *VM) {
	vm.comma(vm.exitXT)
	vm.setHidden(vm.latest)
	vm.state = FalseCell
}

// primCreate is CREATE: like `:` it builds a new header, but it is never
// hidden and its code field defaults to the plain "push my data address"
// behavior (spec.md section 4.2) so that it can be used standalone. It
// reserves no IFA cell: a DOES> run after CREATE overwrites the first
// cell allotted after the code field.
func primCreate(vm *VM) {
	name := vm.readWord()
	vm.createHeader(string(name))
	vm.setHidden(vm.latest) // createHeader leaves HIDDEN set; CREATE must not hide.
	vm.comma(Cell(pVariable))
}

// primVariableDefine is VARIABLE: read the next word's name, create a
// header for it with the variable codeword, and allot one parameter cell
// initialized to 0 -- spec.md section 3's "for a variable, the code field
// is the variable primitive and the parameter cell holds the address of a
// separately allocated cell" collapses here to the cell itself, since the
// arena already gives every word's parameter field its own address.
func primVariableDefine(vm *VM) {
	name := vm.readWord()
	vm.createHeader(string(name))
	vm.setHidden(vm.latest) // createHeader leaves HIDDEN set; VARIABLE must not hide.
	vm.comma(Cell(pVariable))
	vm.comma(0)
}

// primConstantDefine is CONSTANT ( n -- ): read the next word's name,
// create a header for it with the constant codeword, and store n as its
// one parameter cell (spec.md section 3).
func primConstantDefine(vm *VM) {
	v := vm.pop()
	name := vm.readWord()
	vm.createHeader(string(name))
	vm.setHidden(vm.latest)
	vm.comma(Cell(pConstant))
	vm.comma(v)
}

// <BUILDS and DOES> implement the defining-word pattern documented in
// original_source/src/native.h's DODOES diagram: <BUILDS builds an
// ordinary header, reserving its first parameter cell as the as-yet-unset
// IFA; DOES>, compiled IMMEDIATE inside the defining word, patches LATEST's
// codeword to DODOES and its IFA cell to the address of the code that
// follows DOES> in the defining word's own body, then exits the defining
// word's invocation -- so "the code after DOES>" only ever runs later, via
// DODOES, when a word the defining word created is itself executed.

// primBuilds is `<BUILDS`: identical to CREATE, but it also reserves the
// IFA cell DOES> will later fill in.
func primBuilds(vm *VM) {
	name := vm.readWord()
	vm.createHeader(string(name))
	vm.setHidden(vm.latest)
	vm.comma(Cell(pVariable))
	vm.comma(0) // IFA placeholder, patched by a later DOES>
}

// primDoes is `DOES>`, IMMEDIATE: compile a call to the runtime hook that
// performs the LATEST-patching described above.
func primDoes(vm *VM) {
	vm.comma(vm.doesHookXT)
}

// primDoesHook is the runtime half of DOES>. By the time it runs, vm.ip has
// already been advanced past its own XT cell by next(), so it now points at
// the first cell of "the code after DOES>" -- exactly the address DODOES
// must later jump to.
func primDoesHook(vm *VM) {
	target := vm.ip
	cfa := vm.toCFA(vm.latest)
	vm.storeCell(cfa, Cell(pDODOES))
	vm.storeCell(cfa+CellSize, target)
	primExit(vm)
}

// primChar pushes the ASCII value of the first byte of the next word.
func primChar(vm *VM) {
	w := vm.readWord()
	if len(w) == 0 {
		vm.fault("CHAR", wordNotFoundError{""})
	}
	vm.push(Cell(w[0]))
}

// primBackslash is `\`, IMMEDIATE: discard the remainder of the current
// line as a comment.
func primBackslash(vm *VM) { vm.skipLine() }

// primWords lists every visible (non-HIDDEN) dictionary entry, newest
// first, separated by spaces.
func primWords(vm *VM) {
	for link := vm.latest; link != 0; link = vm.loadCell(link) {
		if vm.isHidden(link) {
			continue
		}
		fmt.Fprintf(vm.out, "%s ", vm.wordName(link))
	}
	fmt.Fprintln(vm.out)
}

// primDotS prints the parameter stack non-destructively, bottom to top.
func primDotS(vm *VM) {
	fmt.Fprint(vm.out, "<")
	for _, c := range vm.data.Snapshot() {
		fmt.Fprintf(vm.out, " %d", int64(c))
	}
	fmt.Fprint(vm.out, " > ")
}

// IF/ELSE/THEN are IMMEDIATE compile-time words built directly on
// 0BRANCH/BRANCH, the classical Forth technique of using the parameter
// stack itself (at compile time, before any of this code has run) to
// remember the address of the offset cell that needs patching once the
// matching ELSE or THEN is seen.

func primIf(vm *VM) {
	vm.comma(vm.zeroBranchXT)
	vm.push(vm.here)
	vm.comma(0)
}

func primElse(vm *VM) {
	vm.comma(vm.branchXT)
	elseOffset := vm.here
	vm.comma(0)

	ifOffset := vm.pop()
	vm.storeCell(ifOffset, vm.here-ifOffset)
	vm.push(elseOffset)
}

func primThen(vm *VM) {
	offset := vm.pop()
	vm.storeCell(offset, vm.here-offset)
}

// primStringLit is `S"`: compile a literal string, read up to the closing
// quote, using LITSTRING's layout (a length cell then the raw bytes,
// padded to a cell boundary so the thread resumes aligned). Only valid
// while compiling a definition.
func primStringLit(vm *VM) {
	if vm.state == FalseCell {
		vm.fault(`S"`, errNotCompiling)
	}
	var bs []byte
	for {
		r, err := vm.src.ReadRune()
		if err != nil {
			vm.halt(nil)
		}
		if r == '"' {
			break
		}
		bs = append(bs, byte(r))
	}
	vm.comma(vm.litStringXT)
	vm.comma(Cell(len(bs)))
	for _, b := range bs {
		vm.cComma(b)
	}
	for vm.here%CellSize != 0 {
		vm.cComma(0)
	}
}
