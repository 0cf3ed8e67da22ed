package core

// SignValidation is the result of the delta-sign validator.
type SignValidation struct {
	Valid         bool
	Reason        string
	PositiveCount int
	NegativeCount int
}

// validateSigns requires at least one negative and one positive delta among
// the two active assets. It does not mutate its inputs.
func validateSigns(entry, exit AssetDelta) SignValidation {
	neg, pos := 0, 0
	for _, a := range []AssetDelta{entry, exit} {
		switch {
		case a.Delta.Sign() < 0:
			neg++
		case a.Delta.Sign() > 0:
			pos++
		}
	}
	if neg == 0 {
		return SignValidation{Valid: false, Reason: "no_negative_deltas", PositiveCount: pos, NegativeCount: neg}
	}
	if pos == 0 {
		return SignValidation{Valid: false, Reason: "no_positive_deltas", PositiveCount: pos, NegativeCount: neg}
	}
	return SignValidation{Valid: true, PositiveCount: pos, NegativeCount: neg}
}
