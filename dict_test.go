package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GentleHumour/tomoko/internal/mem"
)

func newTestVM(t *testing.T) *VM {
	t.Helper()
	vm := &VM{
		mem:  mem.NewArena(DefaultDictionarySize),
		data: NewStack("parameter stack", 16),
		ret:  NewStack("return stack", 16),
	}
	vm.here = alignUp(Cell(wordBufSize), CellSize)
	vm.latest = 0
	return vm
}

func TestCreateHeaderStartsHidden(t *testing.T) {
	vm := newTestVM(t)
	link := vm.createHeader("FOO")
	require.True(t, vm.isHidden(link))
	require.Equal(t, "FOO", vm.wordName(link))
}

func TestFindSkipsHiddenAndPrefersNewest(t *testing.T) {
	vm := newTestVM(t)

	first := vm.createHeader("DUP")
	vm.comma(Cell(pDrop))
	vm.setHidden(first) // reveal it

	second := vm.createHeader("DUP")
	vm.comma(Cell(pDup))
	vm.setHidden(second) // reveal it

	found := vm.find([]byte("DUP"))
	require.Equal(t, second, found, "redefinition must shadow the earlier entry")

	vm.setHidden(second) // hide it again
	found = vm.find([]byte("DUP"))
	require.Equal(t, first, found, "hidden entries must be skipped")
}

func TestFindCaseInsensitiveByDefault(t *testing.T) {
	vm := newTestVM(t)
	link := vm.createHeader("SWAP")
	vm.setHidden(link)

	require.Equal(t, link, vm.find([]byte("swap")))
	require.Equal(t, link, vm.find([]byte("Swap")))
}

func TestFindCaseSensitive(t *testing.T) {
	vm := newTestVM(t)
	vm.caseSensitive = true
	link := vm.createHeader("SWAP")
	vm.setHidden(link)

	require.Equal(t, link, vm.find([]byte("SWAP")))
	require.EqualValues(t, 0, vm.find([]byte("swap")))
}

func TestImmediateToggle(t *testing.T) {
	vm := newTestVM(t)
	link := vm.createHeader("X")
	require.False(t, vm.isImmediate(link))
	vm.setImmediate(link)
	require.True(t, vm.isImmediate(link))
	vm.setImmediate(link)
	require.False(t, vm.isImmediate(link))
}

func TestCFADFAAddressing(t *testing.T) {
	vm := newTestVM(t)
	link := vm.createHeader("X")
	cfa := vm.toCFA(link)
	vm.comma(Cell(pDOCOL))
	vm.comma(42) // one parameter cell

	require.Equal(t, int64(pDOCOL), int64(vm.loadCell(cfa)))
	dfa := vm.toDFA(link)
	require.EqualValues(t, 42, vm.loadCell(dfa))
}
