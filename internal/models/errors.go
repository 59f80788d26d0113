package awards

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrNotEligible    = errors.New("conditions not met")
	ErrAlreadyClaimed = errors.New("level already claimed")
	ErrInvalidAudit   = errors.New("invalid audit action")
	ErrSerialTaken    = errors.New("serial number already issued")
)
