package main

import "os"

// openSource opens a file named by SOURCE. Factored out so tests can
// substitute an in-memory filesystem by wrapping VM construction; for now
// it is a thin wrapper over os.Open, matching jcorbin/gothird's direct use
// of the host filesystem for its own script-loading.
func (vm *VM) openSource(name string) (*os.File, error) {
	return os.Open(name)
}
