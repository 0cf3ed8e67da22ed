package core

// Invariant-violation messages. These are reserved for states the pipeline
// stages above are supposed to make unreachable; reaching one here means an
// earlier stage's contract was violated, not an ordinary rejection, so the
// parser panics rather than returning an EraseError.
const (
	msgSplitDetectorAssetCount   = "Invariant violated: splitSwapDetector expects exactly 2 active assets"
	msgSplitDetectorSignMismatch = "Invariant violated: splitSwapDetector expects one positive and one negative delta"
	msgNonCoreToNonCore          = "NON_CORE_TO_NON_CORE_REACHED_DIRECTION"
	msgInvalidEntryExitSign      = "INVALID_ENTRY_EXIT_SIGN"
)
