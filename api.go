package main

import (
	"fmt"

	"github.com/GentleHumour/tomoko/internal/panicerr"
)

// New constructs a VM, applying DefaultDictionarySize and the default
// stack sizes before opts, then bootstrapping the primitive catalogue
// into the dictionary. WithInput and WithOutput are required; every other
// option has a workable default.
func New(opts ...Option) (*VM, error) {
	vm := &VM{
		initialBase:   10,
		caseSensitive: false,
	}

	all := append([]Option{
		WithDictionarySize(DefaultDictionarySize),
		WithStackSizes(DefaultParamStackSize, DefaultReturnStackSize),
	}, opts...)
	for _, opt := range all {
		if err := opt(vm); err != nil {
			return nil, err
		}
	}
	if vm.src == nil {
		return nil, fmt.Errorf("tomoko: no input source configured (use WithInput)")
	}
	if vm.out == nil {
		return nil, fmt.Errorf("tomoko: no output configured (use WithOutput)")
	}

	vm.here = alignUp(Cell(wordBufSize), CellSize)
	vm.latest = 0
	vm.bootstrap()
	return vm, nil
}

// Run drives the VM to completion: it enters QUIT and does not return
// until HALT/BYE is executed, the base input runs out, or a fatal
// resource error occurs. A clean stop (HALT with no cause, or end of
// input) returns nil. panicerr.Recover is the outermost safety net,
// converting any panic this package's own haltError/fatalError handling
// doesn't expect into a plain error instead of crashing the host process,
// in the manner of jcorbin/gothird's api.Run.
func (vm *VM) Run() error {
	return panicerr.Recover("tomoko", vm.run)
}

func (vm *VM) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case haltError:
				err = e.error
			case fatalError:
				err = e
			default:
				panic(r)
			}
		}
	}()
	link := vm.find([]byte("QUIT"))
	vm.invoke(vm.toCFA(link))
	return nil
}
