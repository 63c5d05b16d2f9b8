package main

// bootstrap.go registers every host primitive into the dictionary,
// building vm.prims/primNames/primLookup and the cached structural XTs
// INTERPRET and `;` need to compile inline. This is the Go-side
// equivalent of original_source's DEF_CODE table: there is no bootstrap
// Forth source to interpret, every primitive arrives as a native Go
// function with a hand-built header (spec.md section 4.4's catalogue).

type primDef struct {
	name      string
	id        primID
	fn        func(*VM)
	immediate bool
}

var primTable = []primDef{
	// Control.
	{"EXIT", pExit, primExit, false},
	{"BRANCH", pBranch, primBranch, false},
	{"0BRANCH", pZeroBranch, primZeroBranch, false},
	{"LIT", pLit, primLit, false},
	{"LITSTRING", pLitString, primLitString, false},
	{"EXECUTE", pExecute, primExecute, false},
	{"'", pTick, primTick, false},
	{"IP@", pIPFetch, primIPFetch, false},
	{"BYE", pHalt, primHalt, false},
	{"HALT", pHalt, primHalt, false},
	{"[", pLeftBracket, primLeftBracket, true},
	{"]", pRightBracket, primRightBracket, false},

	// Stack.
	{"DROP", pDrop, primDrop, false},
	{"SWAP", pSwap, primSwap, false},
	{"DUP", pDup, primDup, false},
	{"OVER", pOver, primOver, false},
	{"ROT", pRot, primRot, false},
	{"-ROT", pNRot, primNRot, false},
	{"2DROP", p2Drop, prim2Drop, false},
	{"2DUP", p2Dup, prim2Dup, false},
	{"2SWAP", p2Swap, prim2Swap, false},
	{"?DUP", pQDup, primQDup, false},
	{"PICK", pPick, primPick, false},
	{"STICK", pStick, primStick, false},
	{"NTUCK", pNTuck, primNTuck, false},
	{"DSP@", pDSPFetch, primDSPFetch, false},
	{"DSP!", pDSPStore, primDSPStore, false},

	// Return stack.
	{">R", pToR, primToR, false},
	{"R>", pFromR, primFromR, false},
	{"RSP@", pRSPFetch, primRSPFetch, false},
	{"RSP!", pRSPStore, primRSPStore, false},
	{"RDROP", pRDrop, primRDrop, false},

	// Arithmetic.
	{"1+", pIncr, primIncr, false},
	{"1-", pDecr, primDecr, false},
	{"CELL+", pCellIncr, primCellIncr, false},
	{"CELL-", pCellDecr, primCellDecr, false},
	{"+", pAdd, primAdd, false},
	{"-", pSub, primSub, false},
	{"*", pMul, primMul, false},
	{"/", pDiv, primDiv, false},
	{"MOD", pMod, primMod, false},
	{"NEGATE", pNegate, primNegate, false},
	{"/MOD", pDivMod, primDivMod, false},

	// Comparison.
	{"=", pEq, primEq, false},
	{"<>", pNe, primNe, false},
	{"<", pLt, primLt, false},
	{">", pGt, primGt, false},
	{"<=", pLe, primLe, false},
	{">=", pGe, primGe, false},
	{"0=", pZEq, primZEq, false},
	{"0<>", pZNe, primZNe, false},
	{"0<", pZLt, primZLt, false},
	{"0>", pZGt, primZGt, false},
	{"0<=", pZLe, primZLe, false},
	{"0>=", pZGe, primZGe, false},

	// Bitwise.
	{"AND", pAnd, primAnd, false},
	{"OR", pOr, primOr, false},
	{"XOR", pXor, primXor, false},
	{"INVERT", pInvert, primInvert, false},

	// Memory.
	{"!", pStore, primStore, false},
	{"@", pFetch, primFetch, false},
	{"+!", pPlusStore, primPlusStore, false},
	{"-!", pMinusStore, primMinusStoreBug, false},
	{"C!", pCStore, primCStore, false},
	{"C@", pCFetch, primCFetch, false},
	{"C@C!", pCFetchCStore, primCFetchCStore, false},
	{"CMOVE", pCMove, primCMove, false},
	{"FILL", pFill, primFill, false},
	{"ERASE", pErase, primErase, false},
	{",", pComma, primComma, false},
	{"C,", pCComma, primCComma, false},
	{"ALLOT", pAllot, primAllot, false},

	// Dictionary.
	{"FIND", pFind, primFind, false},
	{">CFA", pToCFA, primToCFA, false},
	{">DFA", pToDFA, primToDFA, false},
	{"IMMEDIATE", pImmediateToggle, primImmediateToggle, true},
	{"HIDDEN", pHiddenToggle, primHiddenToggle, false},
	{"HIDE", pHide, primHide, false},

	// Outer interpreter.
	{"WORD", pWord, primWord, false},
	{"NUMBER", pNumber, primNumber, false},
	{"INTERPRET", pInterpret, primInterpret, false},
	{"QUIT", pQuit, primQuit, false},
	{":", pColon, primColon, false},
	{";", pSemi, primSemi, true},
	{"CREATE", pCreate, primCreate, false},
	{"VARIABLE", pVariableDefine, primVariableDefine, false},
	{"CONSTANT", pConstantDefine, primConstantDefine, false},
	{"<BUILDS", pBuilds, primBuilds, false},
	{"DOES>", pDoes, primDoes, true},
	{"(DOES>)", pDoesHook, primDoesHook, false},
	{"CHAR", pChar, primChar, false},
	{"\\", pBackslash, primBackslash, true},
	{"WORDS", pWords, primWords, false},
	{".S", pDotS, primDotS, false},
	{"IF", pIf, primIf, true},
	{"ELSE", pElse, primElse, true},
	{"THEN", pThen, primThen, true},
	{`S"`, pStringLit, primStringLit, true},

	// I/O.
	{"EMIT", pEmit, primEmit, false},
	{"TELL", pTell, primTell, false},
	{".", pDot, primDot, false},
	{"KEY", pKey, primKey, false},
	{"WS?", pWSQuery, primWSQuery, false},
	{">NUMBERIN", pToNumberIn, primToNumberIn, false},
	{"NUMBERIN", pNumberIn, primNumberIn, false},
	{"SOURCE", pSource, primSource, false},
	{"ENDSOURCE", pEndSource, primEndSource, false},
	{"INIT", pInit, primInit, false},
	{"MSLEEP", pMSleep, primMSleep, false},
	{"SYSCALL0", pSyscall0, primSyscall0, false},
	{"SYSCALL1", pSyscall1, primSyscall1, false},
	{"SYSCALL2", pSyscall2, primSyscall2, false},
	{"SYSCALL3", pSyscall3, primSyscall3, false},
}

// bootstrap walks primTable, wiring every primitive into vm.prims and
// hand-building its dictionary header. Structural codewords (DOCOL,
// DODOES, CONSTANT, VARIABLE, STRING-CONSTANT) are wired into vm.prims
// directly, without dictionary entries of their own, since they are only
// ever referenced as raw code-field values, never looked up by name.
func (vm *VM) bootstrap() {
	vm.prims[pDOCOL] = primDOCOL
	vm.prims[pDODOES] = primDODOES
	vm.prims[pConstant] = primConstant
	vm.prims[pVariable] = primVariable
	vm.prims[pStringConstant] = primStringConstant

	vm.primLookup = make(map[string]primID, len(primTable))
	for _, def := range primTable {
		vm.prims[def.id] = def.fn
		vm.primNames[def.id] = def.name
		vm.primLookup[def.name] = def.id

		link := vm.createHeader(def.name)
		vm.setHidden(link) // createHeader leaves HIDDEN set; primitives are visible.
		vm.comma(Cell(def.id))
		if def.immediate {
			vm.setImmediate(link)
		}
	}

	baseLink := vm.createHeader("BASE")
	vm.comma(Cell(pVariable))
	vm.baseAddr = vm.here
	initialBase := vm.initialBase
	if initialBase == 0 {
		initialBase = 10
	}
	vm.comma(initialBase)
	vm.setHidden(baseLink)

	vm.litXT = vm.toCFA(vm.find([]byte("LIT")))
	vm.litStringXT = vm.toCFA(vm.find([]byte("LITSTRING")))
	vm.branchXT = vm.toCFA(vm.find([]byte("BRANCH")))
	vm.zeroBranchXT = vm.toCFA(vm.find([]byte("0BRANCH")))
	vm.exitXT = vm.toCFA(vm.find([]byte("EXIT")))
	vm.doesHookXT = vm.toCFA(vm.find([]byte("(DOES>)")))
}
