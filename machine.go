package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/GentleHumour/tomoko/internal/flushio"
	"github.com/GentleHumour/tomoko/internal/logio"
	"github.com/GentleHumour/tomoko/internal/mem"
	"github.com/GentleHumour/tomoko/internal/source"
)

// DefaultDictionarySize is spec.md's "~8KiB" dictionary area.
const DefaultDictionarySize = 8192

// DefaultParamStackSize and DefaultReturnStackSize are spec.md's
// conventional stack capacities.
const (
	DefaultParamStackSize  = 64
	DefaultReturnStackSize = 32
)

const wordBufSize = 32 // 31 bytes of content plus a NUL, per spec.md section 6

// flag bits of a dictionary entry's flags+length byte (original_source's
// dictionary.h: IMMEDIATE_BIT, HIDDEN_BIT, LENGTH_BITS).
const (
	immediateBit byte = 0x80
	hiddenBit    byte = 0x40
	lengthMask   byte = 0x3F
)

// VM holds every piece of process-wide mutable state named by spec.md
// section 5: the two stacks, IP, W, HERE, LATEST, STATE, BASE,
// CASE-SENSITIVE, the word buffer, and the input source stack. There is
// exactly one VM per process and no locking, because the whole core is
// single-threaded and cooperative.
type VM struct {
	mem *mem.Arena

	ip Cell // instruction pointer
	w  Cell // working register: XT of the word currently dispatching

	here   Cell // next free cell in the dictionary area
	latest Cell // link-field address of the most recently defined entry

	state         Cell // 0 interpreting, non-zero compiling
	caseSensitive bool

	// BASE's numeric radix lives in the dictionary area itself (it is an
	// ordinary VARIABLE, spec.md section 4.3), so Forth code can read and
	// store it with @ and ! like any other variable. baseAddr is the
	// address of that cell; initialBase seeds it during bootstrap.
	baseAddr    Cell
	initialBase Cell

	data *Stack
	ret  *Stack

	wordBuf [wordBufSize]byte
	wordLen int

	prompt        string
	compilePrompt string

	src *source.Stack

	out     flushio.WriteFlusher
	closers []io.Closer

	logfn     func(mess string, args ...interface{})
	markWidth int

	prims      [numPrims]func(*VM)
	primNames  [numPrims]string
	primLookup map[string]primID

	// Cached XTs of structural words the Go-side compiler (INTERPRET, `;`)
	// needs to emit inline, resolved once during bootstrap.
	litXT        Cell
	litStringXT  Cell
	branchXT     Cell
	zeroBranchXT Cell
	exitXT       Cell
	doesHookXT   Cell

	syscall func(vm *VM, n int, args [3]Cell) Cell
}

// logf writes a trace line if a log function has been configured (via
// WithLogf), in the style of jcorbin/gothird's logging.logf: marks are
// left-padded to a stable width so trace columns line up.
func (vm *VM) logf(mark, mess string, args ...interface{}) {
	if vm.logfn == nil {
		return
	}
	if n := vm.markWidth - len(mark); n > 0 {
		mark = strings.Repeat(" ", n) + mark
	} else if n < 0 {
		vm.markWidth = len(mark)
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	vm.logfn("%v %v", mark, mess)
}

func newLogf(l *logio.Logger, level string) func(mess string, args ...interface{}) {
	return l.Leveledf(level)
}

// --- memory access -------------------------------------------------------

func (vm *VM) loadCell(addr Cell) Cell {
	v, err := vm.mem.Cell(uint(addr))
	if err != nil {
		vm.halt(err)
	}
	return Cell(v)
}

func (vm *VM) storeCell(addr, v Cell) {
	if err := vm.mem.SetCell(uint(addr), int64(v)); err != nil {
		vm.halt(err)
	}
}

func (vm *VM) loadByte(addr Cell) byte {
	b, err := vm.mem.Byte(uint(addr))
	if err != nil {
		vm.halt(err)
	}
	return b
}

func (vm *VM) storeByte(addr Cell, b byte) {
	if err := vm.mem.SetByte(uint(addr), b); err != nil {
		vm.halt(err)
	}
}

// baseVal returns the current numeric conversion radix (BASE), stored as
// an ordinary VARIABLE cell in the dictionary area rather than a plain Go
// field, so that "16 BASE !" works the same way any other variable store
// does.
func (vm *VM) baseVal() Cell { return vm.loadCell(vm.baseAddr) }

func (vm *VM) loadBytes(addr, n Cell) []byte {
	bs, err := vm.mem.Bytes(uint(addr), uint(n))
	if err != nil {
		vm.halt(err)
	}
	return bs
}

// --- stacks ----------------------------------------------------------

func (vm *VM) push(v Cell) {
	if err := vm.data.Push(v); err != nil {
		vm.halt(err)
	}
}

func (vm *VM) pop() Cell {
	v, err := vm.data.Pop()
	if err != nil {
		vm.halt(err)
	}
	return v
}

func (vm *VM) pushr(v Cell) {
	if err := vm.ret.Push(v); err != nil {
		vm.halt(err)
	}
}

func (vm *VM) popr() Cell {
	v, err := vm.ret.Pop()
	if err != nil {
		vm.halt(err)
	}
	return v
}

// --- inner interpreter -----------------------------------------------

// next performs exactly one step of the threaded dispatch loop (spec.md
// section 4.1): load the cell at IP into W, advance IP, invoke the host
// primitive named by W's code field.
func (vm *VM) next() {
	vm.w = vm.loadCell(vm.ip)
	vm.ip += CellSize
	code := vm.loadCell(vm.w)
	if code < 0 || int(code) >= len(vm.prims) {
		vm.halt(fmt.Errorf("code field @%d holds invalid primitive id %d", vm.w, code))
	}
	vm.prims[code](vm)
}

// invoke dispatches xt exactly once, the way next() does, but without
// reading XT from a threaded instruction stream -- EXECUTE and the outer
// interpreter use this to run a resolved word directly.
func (vm *VM) invoke(xt Cell) {
	vm.w = xt
	code := vm.loadCell(xt)
	if code < 0 || int(code) >= len(vm.prims) {
		vm.halt(fmt.Errorf("code field @%d holds invalid primitive id %d", xt, code))
	}
	vm.prims[code](vm)
}

// execute runs xt to completion: if xt is a native primitive, invoke
// returns immediately. If xt is a colon-composite (code field DOCOL) or a
// DOES>-behavior word (DODOES), invoke only pushes a return address and
// redirects IP into the word's threaded body; execute then keeps stepping
// the inner interpreter until the return stack unwinds back to the depth
// it had on entry, i.e. until the matching EXIT has run.
func (vm *VM) execute(xt Cell) {
	base := vm.ret.Depth()
	vm.invoke(xt)
	for vm.ret.Depth() > base {
		vm.next()
	}
}
