package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func bootstrappedTestVM(t *testing.T) *VM {
	t.Helper()
	vm := newTestVM(t)
	vm.bootstrap()
	return vm
}

func (vm *VM) defineComposite(t *testing.T, name string, words ...string) Cell {
	t.Helper()
	link := vm.createHeader(name)
	vm.comma(Cell(pDOCOL))
	for _, w := range words {
		xt := vm.toCFA(vm.find([]byte(w)))
		require.NotZero(t, xt, "word %q must already be defined", w)
		vm.comma(xt)
	}
	vm.comma(vm.exitXT)
	vm.setHidden(link)
	return link
}

func TestExecuteColonComposite(t *testing.T) {
	vm := bootstrappedTestVM(t)
	square := vm.defineComposite(t, "SQUARE", "DUP", "*")

	vm.push(7)
	vm.execute(vm.toCFA(square))
	require.EqualValues(t, 1, vm.data.Depth())
	v, err := vm.data.Pop()
	require.NoError(t, err)
	require.EqualValues(t, 49, v)
}

func TestExecuteWithInlineLiteral(t *testing.T) {
	vm := bootstrappedTestVM(t)
	link := vm.createHeader("ADD10")
	vm.comma(Cell(pDOCOL))
	vm.comma(vm.litXT)
	vm.comma(10)
	vm.comma(vm.toCFA(vm.find([]byte("+"))))
	vm.comma(vm.exitXT)
	vm.setHidden(link)

	vm.push(5)
	vm.execute(vm.toCFA(link))
	v := vm.pop()
	require.EqualValues(t, 15, v)
}

func TestZeroBranchSkipsOnTrue(t *testing.T) {
	vm := bootstrappedTestVM(t)
	// : TEST ( flag -- n ) 0BRANCH <else> LIT 1 BRANCH <end> <else> LIT 2 <end> EXIT
	link := vm.createHeader("TEST")
	vm.comma(Cell(pDOCOL))

	zbr := vm.toCFA(vm.find([]byte("0BRANCH")))
	brn := vm.toCFA(vm.find([]byte("BRANCH")))
	lit := vm.litXT

	zbrCell := vm.here
	vm.comma(zbr)
	offCell := vm.here
	vm.comma(0) // patched below

	vm.comma(lit)
	vm.comma(1)
	brCell := vm.here
	vm.comma(brn)
	brOffCell := vm.here
	vm.comma(0)

	elseStart := vm.here
	vm.comma(lit)
	vm.comma(2)

	end := vm.here
	vm.comma(vm.exitXT)
	vm.setHidden(link)

	vm.storeCell(offCell, elseStart-offCell)
	vm.storeCell(brOffCell, end-brOffCell)
	_ = zbrCell
	_ = brCell

	vm.push(TrueCell)
	vm.execute(vm.toCFA(link))
	require.EqualValues(t, 1, vm.pop())

	vm.push(FalseCell)
	vm.execute(vm.toCFA(link))
	require.EqualValues(t, 2, vm.pop())
}

func TestDivisionTruncatesTowardZero(t *testing.T) {
	vm := bootstrappedTestVM(t)
	vm.push(-7)
	vm.push(2)
	primDiv(vm)
	require.EqualValues(t, -3, vm.pop())

	vm.push(-7)
	vm.push(2)
	primMod(vm)
	require.EqualValues(t, -1, vm.pop())
}

func TestMinusStoreBugIsAddition(t *testing.T) {
	vm := bootstrappedTestVM(t)
	addr := vm.here
	vm.comma(100)
	vm.push(5)
	vm.push(addr)
	primMinusStoreBug(vm)
	require.EqualValues(t, 105, vm.loadCell(addr))
}

func TestDivideByZeroFaults(t *testing.T) {
	vm := bootstrappedTestVM(t)
	vm.push(1)
	vm.push(0)
	require.Panics(t, func() { primDiv(vm) })
}

func TestRotAndNRot(t *testing.T) {
	vm := bootstrappedTestVM(t)

	vm.push(1)
	vm.push(2)
	vm.push(3)
	primRot(vm) // (1 2 3 -- 3 1 2)
	require.EqualValues(t, 2, vm.pop())
	require.EqualValues(t, 1, vm.pop())
	require.EqualValues(t, 3, vm.pop())

	vm.push(1)
	vm.push(2)
	vm.push(3)
	primNRot(vm) // (1 2 3 -- 2 3 1)
	require.EqualValues(t, 1, vm.pop())
	require.EqualValues(t, 3, vm.pop())
	require.EqualValues(t, 2, vm.pop())
}

func TestCFetchCStoreAdvancesBothCursors(t *testing.T) {
	vm := bootstrappedTestVM(t)
	src := vm.here
	vm.cComma('X')
	dst := vm.here
	vm.cComma(0)

	vm.push(src)
	vm.push(dst)
	primCFetchCStore(vm) // ( source dest -- source+1 dest+1 )
	require.EqualValues(t, dst+1, vm.pop())
	require.EqualValues(t, src+1, vm.pop())
	require.Equal(t, byte('X'), vm.loadByte(dst))
}
