package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/GentleHumour/tomoko/internal/logio"
)

func main() {
	traceLevel := flag.String("trace", "", "log trace level (empty disables tracing)")
	dictSize := flag.Uint("dict-size", DefaultDictionarySize, "dictionary area size in bytes")
	base := flag.Int64("base", 10, "initial numeric base")
	caseSensitive := flag.Bool("case-sensitive", false, "make dictionary lookups case sensitive")
	flag.Parse()

	log := new(logio.Logger)
	log.SetOutput(nopWriteCloser{os.Stderr})
	defer func() { os.Exit(log.ExitCode()) }()

	home, ok := os.LookupEnv("HOME")
	if !ok || home == "" {
		log.Errorf("$HOME is not set")
		return
	}

	opts := []Option{
		WithOutput(os.Stdout),
		WithDictionarySize(*dictSize),
		WithBase(Cell(*base)),
		WithCaseSensitive(*caseSensitive),
		WithSyscall(hostSyscall),
	}
	if *traceLevel != "" {
		opts = append(opts, WithLogf(log, *traceLevel))
	}

	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	if interactive {
		opts = append(opts, WithPrompts("> ", "...> "))
	}

	pr, pw := io.Pipe()
	opts = append(opts, WithInput(pr, "tomoko"))

	vm, err := New(opts...)
	if err != nil {
		log.Errorf("%v", err)
		return
	}

	var g errgroup.Group
	g.Go(func() error {
		defer pw.Close()
		if f, ferr := os.Open(filepath.Join(home, ".tomoko")); ferr == nil {
			_, cerr := io.Copy(pw, f)
			f.Close()
			if cerr != nil {
				return pkgerrors.Wrap(cerr, "loading ~/.tomoko")
			}
		} else if !os.IsNotExist(ferr) {
			return pkgerrors.Wrap(ferr, "opening ~/.tomoko")
		}
		_, cerr := io.Copy(pw, os.Stdin)
		if cerr != nil && !errors.Is(cerr, io.ErrClosedPipe) {
			return pkgerrors.Wrap(cerr, "reading stdin")
		}
		return nil
	})

	runErr := vm.Run()
	_ = pw.CloseWithError(io.ErrClosedPipe)
	if gerr := g.Wait(); gerr != nil {
		log.ErrorIf(gerr)
	}
	if runErr != nil {
		log.Errorf("%v", runErr)
		return
	}
	fmt.Fprintln(os.Stdout)
}

// hostSyscall backs SYSCALL0..3 with a tiny, deliberately narrow set of
// operating-system operations -- just enough for bootstrap Forth code to
// query the process environment, matching original_source's SYSCALLn
// stubs without exposing the whole host.
func hostSyscall(vm *VM, n int, args [3]Cell) Cell {
	switch n {
	case 0: // ARGC
		return Cell(len(os.Args))
	case 1: // EXIT: halts cleanly; the argument is not used
		vm.halt(nil)
		return 0
	default:
		return -1
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
