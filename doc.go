/*
Package main implements tomoko, an interactive stack-based language
interpreter in the tradition of classical indirect-threaded Forth systems
(as described by JonesForth). Users type source text at a prompt; the
interpreter tokenises it word by word, either executes each word
immediately or compiles its execution token into the definition under
construction, and supports defining new words in terms of primitive
(host-implemented) words and previously defined colon-composites.

The abstract machine has two stacks, an instruction pointer IP, a working
register W, and a dictionary area that is a contiguous, append-only span
of memory searched by name. Dictionary entries may be marked IMMEDIATE
(run even while compiling) or HIDDEN (excluded from search, used while a
definition is under construction).

See machine.go for the registers and dispatch loop, dict.go for the
dictionary layout and search, bootstrap.go for how the primitive catalogue
is registered, and outer.go for the read-lookup-compile-or-execute loop
that drives the REPL.
*/
package main
