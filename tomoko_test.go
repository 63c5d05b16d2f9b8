package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runScript feeds src through a fresh VM and returns everything written to
// its output. main.go prints one more newline after Run returns; tests
// invoke Run() directly, so that extra newline is absent here.
func runScript(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	vm, err := New(
		WithInput(strings.NewReader(src), "test"),
		WithOutput(&out),
	)
	require.NoError(t, err)
	err = vm.Run()
	require.NoError(t, err)
	return out.String()
}

func TestArithmeticAndDot(t *testing.T) {
	out := runScript(t, "2 3 + . BYE")
	require.Equal(t, "5 ", out)
}

func TestDefineAndCallWord(t *testing.T) {
	out := runScript(t, ": SQUARE DUP * ; 7 SQUARE . BYE")
	require.Equal(t, "49 ", out)
}

func TestHexBaseAlwaysPrintsDecimal(t *testing.T) {
	out := runScript(t, "16 BASE ! FF . BYE")
	require.Equal(t, "255 ", out)
}

func TestVariableStoreFetch(t *testing.T) {
	out := runScript(t, "VARIABLE X 42 X ! X @ . BYE")
	require.Equal(t, "42 ", out)
}

func TestUndefinedWordFaultsWithoutHalting(t *testing.T) {
	out := runScript(t, "BOGUSWORD 1 2 + . BYE")
	require.Contains(t, out, "?")
	require.Contains(t, out, "3 ")
}

func TestEmptyStackAfterDefinition(t *testing.T) {
	var out bytes.Buffer
	vm, err := New(
		WithInput(strings.NewReader(": SQUARE DUP * ; 7 SQUARE . BYE"), "test"),
		WithOutput(&out),
	)
	require.NoError(t, err)
	require.NoError(t, vm.Run())
	require.Equal(t, 0, vm.data.Depth())
}

func TestIfElseThen(t *testing.T) {
	out := runScript(t, ": SIGN DUP 0< IF DROP -1 ELSE 0> IF 1 ELSE 0 THEN THEN ; -5 SIGN . 0 SIGN . 5 SIGN . BYE")
	require.Equal(t, "-1 0 1 ", out)
}

func TestStringLiteralAndTell(t *testing.T) {
	out := runScript(t, `: GREET S" hi" TELL ; GREET BYE`)
	require.Equal(t, "hi", out)
}

func TestConstantDefinesReadOnlyValue(t *testing.T) {
	out := runScript(t, "42 CONSTANT ANSWER ANSWER . BYE")
	require.Equal(t, "42 ", out)
}

func TestDoesDefinesRuntimeBehavior(t *testing.T) {
	out := runScript(t, ": CONST2 <BUILDS , DOES> @ ; 5 CONST2 FIVE FIVE . BYE")
	require.Equal(t, "5 ", out)
}

func TestWordsListsVisibleEntries(t *testing.T) {
	out := runScript(t, "WORDS BYE")
	require.Contains(t, out, "QUIT")
	require.Contains(t, out, "DUP")
	require.NotContains(t, out, "DOCOL")
}
