package main

import (
	"fmt"
	"io"
	"time"

	"github.com/GentleHumour/tomoko/internal/runeio"
)

// I/O primitives (spec.md section 4.4 and section 6). EMIT/TELL/`.` write
// through vm.out, a flushio.WriteFlusher, the same abstraction
// jcorbin/gothird uses. QUIT flushes vm.out before it reads each word, so
// output appears before the interpreter waits for input, while output
// made within one word is not flushed character by character.

// primEmit writes one character, routed through runeio.WriteANSIRune so
// that C1 control codes pushed by Forth code (cursor movement, etc.) come
// out in their classic 7-bit escape form rather than raw UTF-8.
func primEmit(vm *VM) {
	c := vm.pop()
	if _, err := runeio.WriteANSIRune(vm.out, rune(c)); err != nil {
		vm.halt(err)
	}
}

func primTell(vm *VM) {
	n := vm.pop()
	addr := vm.pop()
	bs := vm.loadBytes(addr, n)
	if _, err := vm.out.Write(bs); err != nil {
		vm.halt(err)
	}
}

// primDot is `.`: print the top of stack in decimal, always, regardless
// of BASE. This is a deliberately preserved quirk of original_source's
// dictionary.c (spec.md section 9), not a bug worth fixing.
func primDot(vm *VM) {
	v := vm.pop()
	fmt.Fprintf(vm.out, "%d ", int64(v))
}

// primKey reads one rune from the current input source frame and pushes
// its codepoint; on end-of-file of the base frame it halts cleanly.
func primKey(vm *VM) {
	r, err := vm.src.ReadRune()
	if err == io.EOF {
		vm.halt(nil)
	} else if err != nil {
		vm.fault("KEY", err)
	}
	vm.push(Cell(r))
}

// primWSQuery pops a character cell and pushes whether it is ASCII
// whitespace, the predicate WORD uses to delimit tokens.
func primWSQuery(vm *VM) {
	c := vm.pop()
	vm.push(boolCell(isSpace(byte(c))))
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// digitValue returns the numeric value of an ASCII digit/letter in the
// given base, or -1 if it is not a valid digit in that base.
func digitValue(c byte, base Cell) Cell {
	var v Cell
	switch {
	case c >= '0' && c <= '9':
		v = Cell(c - '0')
	case c >= 'a' && c <= 'z':
		v = Cell(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		v = Cell(c-'A') + 10
	default:
		return -1
	}
	if v >= base {
		return -1
	}
	return v
}

// primToNumberIn pops a character cell and pushes its digit value in the
// current BASE, or -1 if it is not a valid digit.
func primToNumberIn(vm *VM) {
	c := vm.pop()
	vm.push(digitValue(byte(c), vm.baseVal()))
}

// primNumberIn is NUMBERIN: parses the string at addr/n as a (possibly
// negative) integer in the current BASE. It pushes the parsed value and
// the count of trailing characters that could not be converted, the same
// convention as original_source's NUMBERIN: a full, successful parse
// leaves 0 on top.
func primNumberIn(vm *VM) {
	n := vm.pop()
	addr := vm.pop()
	bs := vm.loadBytes(addr, n)

	neg := false
	i := 0
	if i < len(bs) && (bs[i] == '-' || bs[i] == '+') {
		neg = bs[i] == '-'
		i++
	}
	var val Cell
	for ; i < len(bs); i++ {
		d := digitValue(bs[i], vm.baseVal())
		if d < 0 {
			break
		}
		val = val*vm.baseVal() + d
	}
	if neg {
		val = -val
	}
	vm.push(val)
	vm.push(Cell(len(bs) - i))
}

// primSource is SOURCE: pop a filename (addr/n), open it, and push it as
// a new input frame. A file that cannot be opened, or a frame past the
// source stack's maximum depth, raises a fatalError: Run returns it
// instead of QUIT regaining control.
func primSource(vm *VM) {
	n := vm.pop()
	addr := vm.pop()
	name := string(vm.loadBytes(addr, n))
	f, err := vm.openSource(name)
	if err != nil {
		_ = vm.out.Flush()
		panic(fatalError{fmt.Errorf("SOURCE: %w", err)})
	}
	if err := vm.src.Push(f, name, f); err != nil {
		_ = f.Close()
		_ = vm.out.Flush()
		panic(fatalError{fmt.Errorf("SOURCE %s: %w", name, err)})
	}
}

// primEndSource is ENDSOURCE: pop the current (non-base) input frame.
func primEndSource(vm *VM) {
	if vm.src.Depth() <= 1 {
		vm.fault("ENDSOURCE", errNoSourceToEnd)
	}
	if err := vm.src.Pop(); err != nil {
		vm.fault("ENDSOURCE", err)
	}
}

// primInit is INIT: reset both stacks and return to interpret state,
// without reloading the dictionary -- an ABORT, in traditional terms.
func primInit(vm *VM) {
	_ = vm.data.SetSP(0)
	_ = vm.ret.SetSP(0)
	vm.state = FalseCell
}

func primMSleep(vm *VM) {
	n := vm.pop()
	if n > 0 {
		time.Sleep(time.Duration(n) * time.Millisecond)
	}
}

func primSyscall0(vm *VM) { vm.push(vm.doSyscall(0, [3]Cell{})) }
func primSyscall1(vm *VM) {
	a := vm.pop()
	n := vm.pop()
	vm.push(vm.doSyscall(int(n), [3]Cell{a}))
}
func primSyscall2(vm *VM) {
	b := vm.pop()
	a := vm.pop()
	n := vm.pop()
	vm.push(vm.doSyscall(int(n), [3]Cell{a, b}))
}
func primSyscall3(vm *VM) {
	c := vm.pop()
	b := vm.pop()
	a := vm.pop()
	n := vm.pop()
	vm.push(vm.doSyscall(int(n), [3]Cell{a, b, c}))
}

func (vm *VM) doSyscall(n int, args [3]Cell) Cell {
	if vm.syscall == nil {
		vm.fault("SYSCALL", errNoSyscallHandler)
	}
	return vm.syscall(vm, n, args)
}
