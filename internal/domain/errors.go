package domain

import "errors"

// Sentinel errors for the three failure kinds the pipeline distinguishes.
// SourceUnavailable and Parse are fatal for a run; Imputation is a data
// condition (an interval with zero samples anywhere) that only becomes fatal
// when the series has no present values to fall back on.
var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrParse             = errors.New("parse error")
	ErrImputation        = errors.New("imputation error")
)
