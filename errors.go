package main

import "fmt"

// haltError wraps the error (possibly nil) that caused the dispatch loop to
// stop. HALT/BYE, end of the base input and main.go's SYSCALL exit halt
// with a nil cause; stack underflow/overflow, out-of-range memory accesses
// and output write errors wrap a non-nil cause. Runtime faults use
// faultError instead, and SOURCE failures fatalError.
// Primitives never return errors mid-dispatch (spec.md section 7's
// propagation policy): a stop is raised by panicking with haltError and
// recovered once at the Run boundary, in the manner of
// jcorbin/gothird's halt/haltif/vmHaltError.
type haltError struct{ error }

func (e haltError) Error() string {
	if e.error != nil {
		return fmt.Sprintf("halted: %v", e.error)
	}
	return "halted"
}
func (e haltError) Unwrap() error { return e.error }

// fatalError marks a resource-layer fault (spec.md section 7's "Resource
// errors"): SOURCE failing to open its file or exceeding the source
// stack's depth. It terminates the process with a diagnostic rather than
// just returning control to QUIT. An unset $HOME is checked, and reported
// as fatal, by main.go before any VM is built.
type fatalError struct{ error }

func (e fatalError) Error() string { return e.error.Error() }
func (e fatalError) Unwrap() error { return e.error }

// halt raises err as the VM's stopping condition. Apart from SOURCE's
// fatalError, it is the only way the dispatch loop (vm.next/vm.execute)
// ever stops other than returning normally from QUIT's infinite loop --
// which it does not, by design
// (spec.md 4.1: "the only clean termination is HALT").
func (vm *VM) halt(err error) {
	if vm.out != nil {
		_ = vm.out.Flush()
	}
	vm.logf("#", "halt: %v", err)
	panic(haltError{err})
}

// fault is a convenience for reporting a runtime arithmetic/range error
// (spec.md section 7): invalid BASE, negative PICK/STICK/NTUCK index,
// division by zero. These return control to QUIT rather than terminate
// the process: fault panics with a faultError, which QUIT's per-step
// recover reports (a trace line plus a "... ?" line on the output) before
// it goes on with the next word -- callers use it in
// places where spec.md requires "report the condition and return control
// to QUIT without mutating state beyond what was necessary to detect the
// fault."
type faultError struct {
	Op  string
	Err error
}

func (e faultError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e faultError) Unwrap() error { return e.Err }

func (vm *VM) fault(op string, err error) {
	panic(faultError{op, err})
}

// errDivideByZero is the fault cause for / MOD /MOD with a zero divisor.
var errDivideByZero = fmt.Errorf("divide by zero")

// wordNotFoundError is the fault cause for ' (tick) and FIND-dependent
// compiling words that fail to locate a name.
type wordNotFoundError struct{ Name string }

func (e wordNotFoundError) Error() string { return fmt.Sprintf("word not found: %q", e.Name) }

// errNegativeCount is the fault cause for CMOVE/FILL/ERASE given a
// negative count, which the arena's bounds checking would otherwise
// silently accept as a huge unsigned value.
var errNegativeCount = fmt.Errorf("negative count")

// errNoSourceToEnd is the fault cause for ENDSOURCE at the base input frame.
var errNoSourceToEnd = fmt.Errorf("no nested SOURCE to end")

// errNoSyscallHandler is the fault cause for SYSCALLn when the host
// process never registered a handler via WithSyscall.
var errNoSyscallHandler = fmt.Errorf("no syscall handler registered")

// errNotCompiling is the fault cause for S" used outside a definition.
var errNotCompiling = fmt.Errorf(`S" is only valid while compiling`)
