package main

import (
	"io"

	"github.com/GentleHumour/tomoko/internal/flushio"
	"github.com/GentleHumour/tomoko/internal/logio"
	"github.com/GentleHumour/tomoko/internal/mem"
	"github.com/GentleHumour/tomoko/internal/source"
)

// Option configures a VM at construction time, in the style of
// jcorbin/gothird's api.go functional options.
type Option func(*VM) error

// WithInput sets the base (interactive) input source, named for
// diagnostics.
func WithInput(r io.Reader, name string) Option {
	return func(vm *VM) error {
		vm.src = source.NewStack(r, name, source.DefaultMaxDepth)
		return nil
	}
}

// WithOutput sets the VM's output writer, wrapping it in a WriteFlusher if
// it is not already one.
func WithOutput(w io.Writer) Option {
	return func(vm *VM) error {
		vm.out = flushio.NewWriteFlusher(w)
		return nil
	}
}

// WithLogf routes trace output through a logio.Logger at the given level.
func WithLogf(l *logio.Logger, level string) Option {
	return func(vm *VM) error {
		vm.logfn = newLogf(l, level)
		return nil
	}
}

// WithDictionarySize overrides DefaultDictionarySize.
func WithDictionarySize(n uint) Option {
	return func(vm *VM) error {
		vm.mem = mem.NewArena(n)
		return nil
	}
}

// WithStackSizes overrides the default parameter/return stack capacities.
func WithStackSizes(paramSize, returnSize int) Option {
	return func(vm *VM) error {
		vm.data = NewStack("parameter stack", paramSize)
		vm.ret = NewStack("return stack", returnSize)
		return nil
	}
}

// WithBase sets the initial numeric conversion radix (default 10).
func WithBase(base Cell) Option {
	return func(vm *VM) error {
		vm.initialBase = base
		return nil
	}
}

// WithCaseSensitive controls whether dictionary lookups are case
// sensitive (default false, matching original_source's upcasing FIND).
func WithCaseSensitive(on bool) Option {
	return func(vm *VM) error {
		vm.caseSensitive = on
		return nil
	}
}

// WithPrompts overrides the interactive and compiling prompts.
func WithPrompts(interpret, compiling string) Option {
	return func(vm *VM) error {
		vm.prompt = interpret
		vm.compilePrompt = compiling
		return nil
	}
}

// WithSyscall registers the handler SYSCALL0..3 dispatch into, letting the
// host program expose a handful of operating-system primitives without
// growing the core catalogue (spec.md section 4.4's SYSCALLn entries).
func WithSyscall(fn func(vm *VM, n int, args [3]Cell) Cell) Option {
	return func(vm *VM) error {
		vm.syscall = fn
		return nil
	}
}
