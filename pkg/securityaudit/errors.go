package securityaudit

import "errors"

var (
	ErrProbesFailed = errors.New("security probes failed")
	ErrRunCanceled  = errors.New("security audit canceled")
	ErrUnknownField = errors.New("unknown field")
)
