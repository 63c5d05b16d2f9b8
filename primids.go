package main

// primID indexes vm.prims, the fixed table of host-implemented operations.
// A dictionary entry's code field cell holds one of these, and the inner
// interpreter dispatches on it directly (spec.md section 9's guidance:
// represent execution tokens as abstract handles -- here, a dictionary
// offset for the XT plus a small table index for the code field -- rather
// than raw machine addresses).
type primID Cell

const (
	// Structural codewords (spec.md section 4.1/4.2).
	pDOCOL primID = iota
	pDODOES
	pConstant
	pVariable
	pStringConstant

	// Control (spec.md section 4.4).
	pExit
	pBranch
	pZeroBranch
	pLit
	pLitString
	pExecute
	pTick
	pIPFetch
	pHalt
	pLeftBracket
	pRightBracket

	// Stack.
	pDrop
	pSwap
	pDup
	pOver
	pRot
	pNRot
	p2Drop
	p2Dup
	p2Swap
	pQDup
	pPick
	pStick
	pNTuck
	pDSPFetch
	pDSPStore

	// Return stack.
	pToR
	pFromR
	pRSPFetch
	pRSPStore
	pRDrop

	// Arithmetic.
	pIncr
	pDecr
	pCellIncr
	pCellDecr
	pAdd
	pSub
	pMul
	pDiv
	pMod
	pNegate
	pDivMod

	// Comparison.
	pEq
	pNe
	pLt
	pGt
	pLe
	pGe
	pZEq
	pZNe
	pZLt
	pZGt
	pZLe
	pZGe

	// Bitwise.
	pAnd
	pOr
	pXor
	pInvert

	// Memory.
	pStore
	pFetch
	pPlusStore
	pMinusStore
	pCStore
	pCFetch
	pCFetchCStore
	pCMove
	pFill
	pErase
	pComma
	pCComma
	pAllot

	// Dictionary.
	pFind
	pToCFA
	pToDFA
	pImmediateToggle
	pHiddenToggle
	pHide

	// Outer interpreter.
	pWord
	pNumber
	pInterpret
	pQuit
	pColon
	pSemi
	pCreate
	pChar
	pBackslash
	pWords
	pDotS
	pIf
	pElse
	pThen
	pStringLit
	pVariableDefine
	pConstantDefine
	pBuilds
	pDoes
	pDoesHook

	// I/O.
	pEmit
	pTell
	pDot
	pKey
	pWSQuery
	pToNumberIn
	pNumberIn
	pSource
	pEndSource
	pInit
	pMSleep
	pSyscall0
	pSyscall1
	pSyscall2
	pSyscall3

	numPrims
)
